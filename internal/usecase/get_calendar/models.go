package get_calendar

import (
	"github.com/m04kA/StayFinder-BookingService/internal/picker"
	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

// Field поле формы, для которого строится календарь
type Field string

const (
	FieldCheckIn  Field = "checkin"
	FieldCheckOut Field = "checkout"
)

// Request модель запроса сетки месяца
type Request struct {
	PropertyID string
	Month      string // YYYY-MM, пусто = месяц значения или текущий
	Field      Field  // пусто = checkin
	Value      string // текущее значение поля
	CheckIn    string // выбранный заезд, задает минимальную дату выезда
}

// Response модель ответа с сеткой месяца
type Response struct {
	PropertyID string
	Field      Field
	Today      types.CalendarDate
	MinDate    types.CalendarDate
	Value      types.CalendarDate
	Month      picker.Month
}
