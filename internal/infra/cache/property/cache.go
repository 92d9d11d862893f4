package property

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/StayFinder-BookingService/internal/domain"
	"github.com/m04kA/StayFinder-BookingService/pkg/metrics"
)

const keyPrefix = "stayfinder:property:"

// Cache read-through кэш объектов размещения поверх Source.
// Ошибки redis не ломают запрос: данные берутся из источника.
type Cache struct {
	client  RedisClient
	source  Source
	ttl     time.Duration
	metrics *metrics.Metrics
	log     Logger
}

// NewCache создает кэш. metrics может быть nil.
func NewCache(client RedisClient, source Source, ttl time.Duration, m *metrics.Metrics, log Logger) *Cache {
	return &Cache{
		client:  client,
		source:  source,
		ttl:     ttl,
		metrics: m,
		log:     log,
	}
}

// GetProperty возвращает объект из кэша, при промахе загружает из источника
func (c *Cache) GetProperty(ctx context.Context, propertyID string) (*domain.Property, error) {
	key := keyPrefix + propertyID

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedProperty
		if err := json.Unmarshal(raw, &cached); err == nil {
			c.metrics.RecordCacheResult("hit")
			return cached.toDomain(), nil
		}
		c.log.Warn("PropertyCache: corrupted entry for property=%s, reloading", propertyID)
		c.metrics.RecordCacheResult("error")
	case errors.Is(err, redis.Nil):
		c.metrics.RecordCacheResult("miss")
	default:
		c.log.Warn("PropertyCache: redis get failed for property=%s: %v", propertyID, err)
		c.metrics.RecordCacheResult("error")
	}

	property, err := c.source.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(fromDomain(property))
	if err != nil {
		c.log.Warn("PropertyCache: failed to encode property=%s: %v", propertyID, err)
		return property, nil
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("PropertyCache: redis set failed for property=%s: %v", propertyID, err)
	}

	return property, nil
}

// Invalidate удаляет объект из кэша, чтобы следующий расчет увидел новое бронирование
func (c *Cache) Invalidate(ctx context.Context, propertyID string) error {
	if err := c.client.Del(ctx, keyPrefix+propertyID).Err(); err != nil {
		return fmt.Errorf("%w: property=%s: %v", ErrInvalidate, propertyID, err)
	}
	return nil
}
