package get_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/StayFinder-BookingService/internal/availability"
	"github.com/m04kA/StayFinder-BookingService/internal/bookingform"
	calendarRepo "github.com/m04kA/StayFinder-BookingService/internal/infra/storage/calendar"
	stayClient "github.com/m04kA/StayFinder-BookingService/internal/integrations/stayapi"
	"github.com/m04kA/StayFinder-BookingService/internal/picker"
)

// UseCase use case для построения сетки месяца календаря бронирования
type UseCase struct {
	properties   PropertyProvider
	engine       *availability.Engine
	location     *time.Location
	weekStart    time.Weekday
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	properties PropertyProvider,
	engine *availability.Engine,
	location *time.Location,
	weekStart time.Weekday,
	logger Logger,
) *UseCase {
	return &UseCase{
		properties:   properties,
		engine:       engine,
		location:     location,
		weekStart:    weekStart,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case построения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: property=%s, field=%s, month=%s, value=%s, checkIn=%s",
		req.PropertyID, req.Field, req.Month, req.Value, req.CheckIn)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	month, err := parseMonth(req.Month)
	if err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект размещения
	property, err := uc.properties.GetProperty(ctx, req.PropertyID)
	if err != nil {
		switch {
		case errors.Is(err, stayClient.ErrPropertyNotFound), errors.Is(err, calendarRepo.ErrPropertyNotFound):
			uc.logger.Warn("GetCalendar: property=%s not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		case errors.Is(err, stayClient.ErrServiceUnavailable), errors.Is(err, calendarRepo.ErrExecQuery):
			uc.logger.Error("GetCalendar: property source unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
		default:
			uc.logger.Error("GetCalendar: failed to get property=%s: %v", req.PropertyID, err)
			return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
		}
	}

	// 3. Форма задает минимальную дату выезда по выбранному заезду
	form := bookingform.New(bookingform.Config{
		Engine:    uc.engine,
		Clock:     uc.timeProvider,
		Location:  uc.location,
		WeekStart: uc.weekStart,
	}, property)

	var p *picker.Picker
	if req.Field == FieldCheckOut {
		form.SetCheckIn(req.CheckIn)
		form.SetCheckOut(req.Value)
		p = form.CheckOutPicker()
	} else {
		value := req.Value
		if value == "" {
			value = req.CheckIn
		}
		form.SetCheckIn(value)
		p = form.CheckInPicker()
	}

	// 4. Месяц из запроса, иначе месяц значения или текущий
	if month.IsZero() {
		month = p.DisplayedMonth()
		if p.Value().IsValid() {
			month = p.Value().FirstOfMonth()
		}
	}

	view := p.MonthView(month)

	uc.logger.Info("GetCalendar: property=%s, field=%s, month=%s, selectable=%d",
		property.ID, req.Field, view.Month, view.SelectableCount())

	return &Response{
		PropertyID: property.ID,
		Field:      req.Field,
		Today:      p.Today(),
		MinDate:    p.MinDate(),
		Value:      p.Value(),
		Month:      view,
	}, nil
}
