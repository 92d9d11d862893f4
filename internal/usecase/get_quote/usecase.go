package get_quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/StayFinder-BookingService/internal/availability"
	"github.com/m04kA/StayFinder-BookingService/internal/bookingform"
	"github.com/m04kA/StayFinder-BookingService/internal/domain"
	calendarRepo "github.com/m04kA/StayFinder-BookingService/internal/infra/storage/calendar"
	stayClient "github.com/m04kA/StayFinder-BookingService/internal/integrations/stayapi"
)

// UseCase use case для расчета доступности и стоимости проживания
type UseCase struct {
	properties   PropertyProvider
	engine       *availability.Engine
	location     *time.Location
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	properties PropertyProvider,
	engine *availability.Engine,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		properties:   properties,
		engine:       engine,
		location:     location,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case расчета стоимости.
// Неполный или недоступный диапазон - не ошибка: он отражается в Available, CanSubmit и Reason.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetQuote: property=%s, checkIn=%s, checkOut=%s, guests=%d",
		req.PropertyID, req.CheckIn, req.CheckOut, req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект размещения
	property, err := uc.properties.GetProperty(ctx, req.PropertyID)
	if err != nil {
		switch {
		case errors.Is(err, stayClient.ErrPropertyNotFound), errors.Is(err, calendarRepo.ErrPropertyNotFound):
			uc.logger.Warn("GetQuote: property=%s not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		case errors.Is(err, stayClient.ErrServiceUnavailable), errors.Is(err, calendarRepo.ErrExecQuery):
			uc.logger.Error("GetQuote: property source unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
		default:
			uc.logger.Error("GetQuote: failed to get property=%s: %v", req.PropertyID, err)
			return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
		}
	}

	// 3. Заполняем форму так же, как это делает гость
	form := bookingform.New(bookingform.Config{
		Engine:   uc.engine,
		Clock:    uc.timeProvider,
		Location: uc.location,
	}, property)

	guests := req.Guests
	if guests == 0 {
		guests = domain.MinGuests
	}

	form.SetCheckIn(req.CheckIn)
	form.SetCheckOut(req.CheckOut)
	form.SetGuests(guests)

	// 4. Вердикт и причина, по которой отправка невозможна
	snapshot := form.Snapshot()
	reason := reasonFor(form.Validate())

	uc.metrics.RecordQuote(snapshot.Available)

	currency := property.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	uc.logger.Info("GetQuote: property=%s, nights=%d, total=%.2f, available=%t, reason=%s",
		property.ID, snapshot.Quote.Nights, snapshot.Quote.TotalAmount, snapshot.Available, reason)

	return &Response{
		PropertyID:    property.ID,
		CheckIn:       snapshot.CheckIn,
		CheckOut:      snapshot.CheckOut,
		Guests:        snapshot.Guests,
		Nights:        snapshot.Quote.Nights,
		PricePerNight: property.PricePerNight,
		TotalAmount:   snapshot.Quote.TotalAmount,
		Currency:      currency,
		Available:     snapshot.Available,
		CanSubmit:     snapshot.CanSubmit && reason == "",
		Reason:        reason,
		MinCheckout:   snapshot.MinCheckout,
		Conflict:      snapshot.Conflict,
	}, nil
}
