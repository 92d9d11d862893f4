package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/StayFinder-BookingService/internal/domain"
	"github.com/m04kA/StayFinder-BookingService/internal/integrations/stayapi"
	"github.com/m04kA/StayFinder-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями гостя
type Service struct {
	gateway BookingGateway
	cache   CacheInvalidator
	logger  Logger
}

// NewService создает новый экземпляр сервиса бронирований. cache может быть nil.
func NewService(
	gateway BookingGateway,
	cache CacheInvalidator,
	logger Logger,
) *Service {
	return &Service{
		gateway: gateway,
		cache:   cache,
		logger:  logger,
	}
}

// GetByID получает бронирование по ID.
// Гость видит только свои бронирования, это проверяет StayFinder API по токену.
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	if strings.TrimSpace(id) == "" || len(id) > domain.MaxBookingIDLength {
		return nil, fmt.Errorf("%w: booking id", ErrInvalidInput)
	}

	booking, err := s.gateway.GetBooking(ctx, id)
	if err != nil {
		return nil, s.mapGatewayError("GetByID", id, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s, status=%s", id, booking.Status)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование гостя.
// Отменить можно только ожидающее или подтвержденное бронирование.
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", bookingID)

	if strings.TrimSpace(bookingID) == "" || len(bookingID) > domain.MaxBookingIDLength {
		return nil, fmt.Errorf("%w: booking id", ErrInvalidInput)
	}
	if len(req.CancellationReason) > domain.MaxMessageLength {
		return nil, fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	// Получаем бронирование
	booking, err := s.gateway.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, s.mapGatewayError("Cancel", bookingID, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	// Отменяем бронирование
	cancelled, err := s.gateway.CancelBooking(ctx, bookingID, req.CancellationReason)
	if err != nil {
		if errors.Is(err, stayapi.ErrRejected) || errors.Is(err, stayapi.ErrDatesUnavailable) {
			s.logger.Warn("Cancel: API refused to cancel booking id=%s: %v", bookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrCannotCancel, err)
		}
		return nil, s.mapGatewayError("Cancel", bookingID, err)
	}

	// API мог ответить без тела
	if cancelled == nil {
		cancelled = booking
		cancelled.Status = domain.StatusCancelled
	}
	if cancelled.PropertyID == "" {
		cancelled.PropertyID = booking.PropertyID
	}

	// Даты освободились, сбрасываем кэш объекта
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, cancelled.PropertyID); err != nil {
			s.logger.Warn("Cancel: failed to invalidate cache for property=%s: %v", cancelled.PropertyID, err)
		}
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s, property=%s", bookingID, cancelled.PropertyID)
	return models.FromDomainBooking(cancelled), nil
}

// mapGatewayError переводит ошибки клиента API в ошибки сервиса
func (s *Service) mapGatewayError(op, bookingID string, err error) error {
	switch {
	case errors.Is(err, stayapi.ErrBookingNotFound):
		s.logger.Warn("%s: booking id=%s not found", op, bookingID)
		return ErrBookingNotFound
	case errors.Is(err, stayapi.ErrUnauthorized):
		s.logger.Warn("%s: access denied to booking id=%s", op, bookingID)
		return fmt.Errorf("%w: %v", ErrAccessDenied, err)
	case errors.Is(err, stayapi.ErrServiceUnavailable):
		s.logger.Error("%s: booking API unavailable: %v", op, err)
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	default:
		s.logger.Error("%s: gateway error for booking id=%s: %v", op, bookingID, err)
		return fmt.Errorf("%w: %s - gateway error: %v", ErrInternal, op, err)
	}
}
