package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ListCache - кэш ответов списковых эндпоинтов, ключ = логический путь ресурса
// ("scenarios:user:<id>", "regions:scenario:<id>"). Инвалидация по ключу после
// каждой мутации. nil-receiver безопасен: без Redis сервис просто работает
// мимо кэша.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewListCache создает кэш поверх существующего Redis-клиента.
func NewListCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ListCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ListCache{
		client: client,
		ttl:    ttl,
		logger: logger.Named("ListCache"),
	}
}

// Get возвращает закэшированный JSON по ключу. Промах - (nil, false).
func (c *ListCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Cache read failed", zap.Error(err), zap.String("key", key))
		}
		return nil, false
	}
	return data, true
}

// Set кладет сериализованный список в кэш. Ошибки только логируются:
// кэш не должен ронять основной путь.
func (c *ListCache) Set(ctx context.Context, key string, data []byte) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("Cache write failed", zap.Error(err), zap.String("key", key))
	}
}

// Invalidate удаляет ключи после мутации соответствующего ресурса.
func (c *ListCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Cache invalidation failed", zap.Error(err), zap.Strings("keys", keys))
	}
}
