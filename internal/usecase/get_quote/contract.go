package get_quote

import (
	"context"
	"time"

	"github.com/m04kA/StayFinder-BookingService/internal/domain"
)

// PropertyProvider источник объектов размещения (API, Postgres или кэш поверх них)
type PropertyProvider interface {
	GetProperty(ctx context.Context, propertyID string) (*domain.Property, error)
}

// Metrics интерфейс для учета рассчитанных предложений
type Metrics interface {
	RecordQuote(available bool)
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
