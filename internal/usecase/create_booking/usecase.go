package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/StayFinder-BookingService/internal/availability"
	"github.com/m04kA/StayFinder-BookingService/internal/bookingform"
	calendarRepo "github.com/m04kA/StayFinder-BookingService/internal/infra/storage/calendar"
	stayClient "github.com/m04kA/StayFinder-BookingService/internal/integrations/stayapi"
)

// UseCase use case для создания бронирования
type UseCase struct {
	properties   PropertyProvider
	creator      BookingCreator
	cache        CacheInvalidator
	engine       *availability.Engine
	location     *time.Location
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. cache может быть nil.
func NewUseCase(
	properties PropertyProvider,
	creator BookingCreator,
	cache CacheInvalidator,
	engine *availability.Engine,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		properties:   properties,
		creator:      creator,
		cache:        cache,
		engine:       engine,
		location:     location,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Все проверки формы повторяются на сервере; запрос к API не повторяется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: property=%s, checkIn=%s, checkOut=%s, guests=%d",
		req.PropertyID, req.CheckIn, req.CheckOut, req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.RecordBookingSubmission(resultInvalid)
		return nil, err
	}

	// 2. Получаем объект размещения с актуальными блокировками
	property, err := uc.properties.GetProperty(ctx, req.PropertyID)
	if err != nil {
		switch {
		case errors.Is(err, stayClient.ErrPropertyNotFound), errors.Is(err, calendarRepo.ErrPropertyNotFound):
			uc.logger.Warn("CreateBooking: property=%s not found", req.PropertyID)
			uc.metrics.RecordBookingSubmission(resultInvalid)
			return nil, ErrPropertyNotFound
		case errors.Is(err, stayClient.ErrServiceUnavailable), errors.Is(err, calendarRepo.ErrExecQuery):
			uc.logger.Error("CreateBooking: property source unavailable: %v", err)
			uc.metrics.RecordBookingSubmission(resultUnavailable)
			return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
		default:
			uc.logger.Error("CreateBooking: failed to get property=%s: %v", req.PropertyID, err)
			uc.metrics.RecordBookingSubmission(resultFailed)
			return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
		}
	}

	// 3. Восстанавливаем форму
	form := bookingform.New(bookingform.Config{
		Engine:   uc.engine,
		Clock:    uc.timeProvider,
		Location: uc.location,
	}, property)
	form.SetCheckIn(req.CheckIn)
	form.SetCheckOut(req.CheckOut)
	form.SetGuests(req.Guests)

	// 4. Повторная проверка (защита от устаревшего состояния UI)
	if err := form.Validate(); err != nil {
		uc.logger.Warn("CreateBooking: form validation failed: property=%s: %v", req.PropertyID, err)
		if errors.Is(err, bookingform.ErrDatesUnavailable) {
			uc.metrics.RecordBookingSubmission(resultConflict)
		} else {
			uc.metrics.RecordBookingSubmission(resultInvalid)
		}
		return nil, mapFormError(err)
	}

	// 5. Передаем бронирование во внешний API (без повторов)
	booking, err := form.Submit(ctx, uc.creator)
	if err != nil {
		return nil, uc.mapSubmitError(req, err)
	}

	// 6. Сбрасываем кэш, чтобы следующий расчет учел новое бронирование
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, property.ID); err != nil {
			uc.logger.Warn("CreateBooking: failed to invalidate cache for property=%s: %v", property.ID, err)
		}
	}

	uc.metrics.RecordBookingSubmission(resultCreated)
	uc.logger.Info("CreateBooking: booking id=%s created for property=%s, nights=%d, total=%.2f",
		booking.ID, property.ID, booking.Nights, booking.TotalPrice)

	return &Response{
		ID:         booking.ID,
		PropertyID: booking.PropertyID,
		GuestID:    booking.GuestID,
		CheckIn:    booking.CheckIn,
		CheckOut:   booking.CheckOut,
		Guests:     booking.Guests,
		Nights:     booking.Nights,
		TotalPrice: booking.TotalPrice,
		Currency:   booking.Currency,
		Status:     string(booking.Status),
		CreatedAt:  booking.CreatedAt,
	}, nil
}

func (uc *UseCase) mapSubmitError(req *Request, err error) error {
	switch {
	case errors.Is(err, stayClient.ErrDatesUnavailable):
		uc.logger.Warn("CreateBooking: API reports dates taken for property=%s: %v", req.PropertyID, err)
		uc.metrics.RecordBookingSubmission(resultConflict)
		return fmt.Errorf("%w: %v", ErrDatesUnavailable, err)
	case errors.Is(err, stayClient.ErrRejected):
		uc.logger.Warn("CreateBooking: API rejected booking for property=%s: %v", req.PropertyID, err)
		uc.metrics.RecordBookingSubmission(resultRejected)
		return fmt.Errorf("%w: %v", ErrRejected, err)
	case errors.Is(err, stayClient.ErrUnauthorized):
		uc.logger.Warn("CreateBooking: API refused guest token for property=%s", req.PropertyID)
		uc.metrics.RecordBookingSubmission(resultRejected)
		return ErrUnauthorized
	case errors.Is(err, stayClient.ErrPropertyNotFound):
		uc.logger.Warn("CreateBooking: API does not know property=%s", req.PropertyID)
		uc.metrics.RecordBookingSubmission(resultRejected)
		return ErrPropertyNotFound
	case errors.Is(err, stayClient.ErrServiceUnavailable):
		uc.logger.Error("CreateBooking: booking API unavailable: %v", err)
		uc.metrics.RecordBookingSubmission(resultUnavailable)
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	default:
		uc.logger.Error("CreateBooking: failed to create booking for property=%s: %v", req.PropertyID, err)
		uc.metrics.RecordBookingSubmission(resultFailed)
		return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}
}
