package property

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/StayFinder-BookingService/internal/domain"
)

// Source источник данных об объекте (StayFinder API или read-модель в Postgres)
type Source interface {
	GetProperty(ctx context.Context, propertyID string) (*domain.Property, error)
}

// RedisClient подмножество команд redis, которое использует кэш.
// Реализуется *redis.Client
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
