package presentation

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/chennai-a11y/prefsync/internal/infrastructure/pubsub"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
)

// RedisCache shares one origin's storage between processes. Values are plain
// Redis strings; change notifications travel over Pub/Sub.
type RedisCache struct {
	client *redis.Client
	bus    *pubsub.RedisStorageEventBus
	origin string
	logger logger.Interface
}

func NewRedisCache(client *redis.Client, origin string, logger logger.Interface) *RedisCache {
	return &RedisCache{
		client: client,
		bus:    pubsub.NewRedisStorageEventBus(client, logger),
		origin: origin,
		logger: logger,
	}
}

func (c *RedisCache) buildKey(key string) string {
	return fmt.Sprintf("prefsync:cache:%s:%s", c.origin, key)
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.buildKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	return data, true, nil
}

// Set stores the value before announcing it, so subscribers re-reading on
// the event see the new value.
func (c *RedisCache) Set(ctx context.Context, source, key string, value []byte) error {
	if err := c.client.Set(ctx, c.buildKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return c.bus.Publish(ctx, c.origin, key, source)
}

func (c *RedisCache) Subscribe(ctx context.Context, subscriber string) (<-chan StorageEvent, error) {
	return c.bus.Subscribe(ctx, c.origin, subscriber)
}
