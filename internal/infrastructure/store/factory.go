package store

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/chennai-a11y/prefsync/internal/domain/preference"
	"github.com/chennai-a11y/prefsync/internal/shared/config"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
)

// Backends carries the connections a driver may need. Unused ones may be nil.
type Backends struct {
	DB    *gorm.DB
	Redis *redis.Client
}

// New selects the store driver named in cfg.
func New(cfg config.StoreConfig, backends Backends, log logger.Interface) (preference.Store, error) {
	switch cfg.Driver {
	case config.StoreDriverMemory, "":
		return NewMemoryStore(), nil
	case config.StoreDriverRedis:
		if backends.Redis == nil {
			return nil, fmt.Errorf("store driver %q requires redis to be enabled", cfg.Driver)
		}
		return NewRedisStore(backends.Redis, cfg.KeyPrefix, log.Named("store.redis")), nil
	case config.StoreDriverDatabase:
		if backends.DB == nil {
			return nil, fmt.Errorf("store driver %q requires a database connection", cfg.Driver)
		}
		return NewGormStore(backends.DB, log.Named("store.database")), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
