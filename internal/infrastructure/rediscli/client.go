// Package rediscli opens the Redis connection shared by the store, the rate
// limiter and the tab cache.
package rediscli

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/chennai-a11y/prefsync/internal/shared/config"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
)

// Open connects to Redis and pings it once.
func Open(ctx context.Context, cfg *config.RedisConfig, log logger.Interface) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.GetAddr())

	return client, nil
}
