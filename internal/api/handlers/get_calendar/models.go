package get_calendar

import (
	"strings"

	"github.com/m04kA/StayFinder-BookingService/internal/domain"
	getCalendar "github.com/m04kA/StayFinder-BookingService/internal/usecase/get_calendar"
	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	PropertyID    string             `json:"propertyId"`
	Field         string             `json:"field"`
	Month         string             `json:"month"`     // "2024-06"
	WeekStart     string             `json:"weekStart"` // "sunday"
	LeadingBlanks int                `json:"leadingBlanks"`
	Selectable    int                `json:"selectableCount"`
	Today         types.CalendarDate `json:"today"`
	MinDate       types.CalendarDate `json:"minDate"`
	Value         types.CalendarDate `json:"value"`
	Days          []DayCell          `json:"days"`
}

// DayCell ячейка дня в сетке месяца
type DayCell struct {
	Date     types.CalendarDate `json:"date"`
	Label    string             `json:"label"`
	Disabled bool               `json:"disabled"`
	Selected bool               `json:"selected"`
	Today    bool               `json:"today"`
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(propertyID, month, field, value, checkIn string) *getCalendar.Request {
	return &getCalendar.Request{
		PropertyID: propertyID,
		Month:      month,
		Field:      getCalendar.Field(field),
		Value:      value,
		CheckIn:    checkIn,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]DayCell, len(resp.Month.Days))
	for i, c := range resp.Month.Days {
		days[i] = DayCell{
			Date:     c.Date,
			Label:    c.Label,
			Disabled: c.Disabled,
			Selected: c.Selected,
			Today:    c.Today,
		}
	}

	return &CalendarResponse{
		PropertyID:    resp.PropertyID,
		Field:         string(resp.Field),
		Month:         resp.Month.Month.Time(nil).Format(domain.MonthFormat),
		WeekStart:     strings.ToLower(resp.Month.WeekStart.String()),
		LeadingBlanks: resp.Month.LeadingBlanks,
		Selectable:    resp.Month.SelectableCount(),
		Today:         resp.Today,
		MinDate:       resp.MinDate,
		Value:         resp.Value,
		Days:          days,
	}
}
