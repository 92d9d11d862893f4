package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/StayFinder-BookingService/internal/bookingform"
	"github.com/m04kA/StayFinder-BookingService/internal/domain"
)

// PropertyProvider источник объектов размещения
type PropertyProvider interface {
	GetProperty(ctx context.Context, propertyID string) (*domain.Property, error)
}

// BookingCreator внешний API создания бронирований
type BookingCreator interface {
	CreateBooking(ctx context.Context, sub bookingform.Submission) (*domain.Booking, error)
}

// CacheInvalidator сбрасывает закэшированный объект после нового бронирования
type CacheInvalidator interface {
	Invalidate(ctx context.Context, propertyID string) error
}

// Metrics интерфейс для учета попыток бронирования
type Metrics interface {
	RecordBookingSubmission(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
