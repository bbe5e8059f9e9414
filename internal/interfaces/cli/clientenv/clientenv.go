// Package clientenv prepares what the tab and edit commands share: config,
// logger and the settings cache of the configured origin.
package clientenv

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/chennai-a11y/prefsync/internal/infrastructure/config"
	"github.com/chennai-a11y/prefsync/internal/infrastructure/rediscli"
	"github.com/chennai-a11y/prefsync/internal/presentation"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
)

type Env struct {
	Config *config.Config
	Logger logger.Interface
	Cache  presentation.Cache

	redis *redis.Client
}

// Open loads configuration and connects the origin's settings cache. With
// requireRedis unset and Redis disabled, a process-local cache is used and no
// other tab will see the writes.
func Open(ctx context.Context, env string, requireRedis bool) (*Env, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	e := &Env{Config: cfg, Logger: log}

	if !cfg.Redis.Enabled {
		if requireRedis {
			return nil, fmt.Errorf("redis must be enabled to share settings between tabs")
		}
		log.Warnw("redis disabled, settings will not reach other tabs")
		e.Cache = presentation.NewMemoryCache()
		return e, nil
	}

	client, err := rediscli.Open(ctx, &cfg.Redis, log)
	if err != nil {
		return nil, err
	}
	e.redis = client
	e.Cache = presentation.NewRedisCache(client, cfg.Client.Origin, log)
	return e, nil
}

func (e *Env) Close() {
	if e.redis != nil {
		if err := e.redis.Close(); err != nil {
			e.Logger.Errorw("failed to close redis", "error", err)
		}
	}
}
