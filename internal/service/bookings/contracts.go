package bookings

import (
	"context"

	"github.com/m04kA/StayFinder-BookingService/internal/domain"
)

// BookingGateway внешний API бронирований.
// Токен гостя передается через контекст, права доступа проверяет API.
type BookingGateway interface {
	GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID, reason string) (*domain.Booking, error)
}

// CacheInvalidator сбрасывает закэшированный объект, чтобы освобожденные даты стали видны
type CacheInvalidator interface {
	Invalidate(ctx context.Context, propertyID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
