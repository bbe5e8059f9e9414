package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	preferenceApp "github.com/chennai-a11y/prefsync/internal/application/preference"
	"github.com/chennai-a11y/prefsync/internal/domain/preference"
	"github.com/chennai-a11y/prefsync/internal/infrastructure/auth"
	"github.com/chennai-a11y/prefsync/internal/infrastructure/config"
	"github.com/chennai-a11y/prefsync/internal/infrastructure/database"
	"github.com/chennai-a11y/prefsync/internal/infrastructure/i18n"
	"github.com/chennai-a11y/prefsync/internal/infrastructure/migration"
	"github.com/chennai-a11y/prefsync/internal/infrastructure/rediscli"
	"github.com/chennai-a11y/prefsync/internal/infrastructure/store"
	"github.com/chennai-a11y/prefsync/internal/interfaces/http/handlers"
	"github.com/chennai-a11y/prefsync/internal/interfaces/http/middleware"
	"github.com/chennai-a11y/prefsync/internal/interfaces/http/routes"
	sharedConfig "github.com/chennai-a11y/prefsync/internal/shared/config"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
)

// Container holds the infrastructure, services and handlers of the server
// and tears them down in Shutdown.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface

	db    *gorm.DB
	redis *redis.Client
	// ownsRedis is set when the container opened redis and must close it.
	ownsRedis bool

	store   preference.Store
	catalog *i18n.Catalog
	service *preferenceApp.ServiceDDD

	preferenceHandler  *handlers.PreferenceHandler
	healthHandler      *handlers.HealthHandler
	identityMiddleware *middleware.IdentityMiddleware
	rateLimiter        *middleware.RateLimiter
}

// NewContainer opens the backends the configuration asks for and wires the
// settings service on top of them.
func NewContainer(cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		c.Shutdown()
		return nil, err
	}
	if err := c.initServices(); err != nil {
		c.Shutdown()
		return nil, err
	}
	return c, nil
}

// NewContainerWithStore wires the server around an existing store, without
// opening any backend connections. The caller keeps ownership of redisClient.
func NewContainerWithStore(cfg *config.Config, st preference.Store, redisClient *redis.Client, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
		store:  st,
	}
	if err := c.initServices(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) initInfrastructure() error {
	if c.cfg.Redis.Enabled {
		client, err := rediscli.Open(context.Background(), &c.cfg.Redis, c.log)
		if err != nil {
			return err
		}
		c.redis = client
		c.ownsRedis = true
	}

	if c.cfg.Store.Driver == sharedConfig.StoreDriverDatabase {
		db, err := database.Open(&c.cfg.Database)
		if err != nil {
			return err
		}
		c.db = db

		migrator, err := migration.NewMigrator(c.cfg.Database.Driver, c.log)
		if err != nil {
			return err
		}
		if err := migrator.Up(db); err != nil {
			return err
		}
	}

	st, err := store.New(c.cfg.Store, store.Backends{DB: c.db, Redis: c.redis}, c.log)
	if err != nil {
		return err
	}
	c.store = st

	c.log.Infow("preference store ready", "driver", c.cfg.Store.Driver)
	return nil
}

func (c *Container) initServices() error {
	catalog, err := i18n.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("failed to load translation catalog: %w", err)
	}
	c.catalog = catalog

	c.service = preferenceApp.NewServiceDDD(c.store, catalog, c.log.Named("preference"))

	sessions := auth.NewSessionService(c.cfg.Session.Secret, c.cfg.Session.ExpHours)
	c.identityMiddleware = middleware.NewIdentityMiddleware(sessions, c.cfg.Session.CookieName, c.log)
	c.preferenceHandler = handlers.NewPreferenceHandler(c.service, c.cfg.Cookie, c.log)
	c.healthHandler = handlers.NewHealthHandler()

	if c.redis != nil && c.cfg.RateLimit.Requests > 0 {
		c.rateLimiter = middleware.NewRateLimiter(c.redis, c.cfg.RateLimit.Requests, c.cfg.RateLimit.Window(), c.log)
	}
	return nil
}

// SetupRoutes registers middleware and every route on the engine.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CustomLogger(c.log))
	c.engine.Use(middleware.SecurityHeaders())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.RequestTimeout(c.cfg.Server.RequestTimeout()))

	c.engine.GET("/health", c.healthHandler.HealthCheck)

	routes.SetupPreferenceRoutes(c.engine, &routes.PreferenceRouteConfig{
		Handler:            c.preferenceHandler,
		IdentityMiddleware: c.identityMiddleware,
		RateLimiter:        c.rateLimiter,
	})

	c.engine.NoRoute(c.healthHandler.NotFound)
}

func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown closes the connections opened by NewContainer.
func (c *Container) Shutdown() {
	if c.db != nil {
		if err := database.Close(c.db); err != nil {
			c.log.Errorw("failed to close database", "error", err)
		}
		c.db = nil
	}
	if c.redis != nil && c.ownsRedis {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis", "error", err)
		}
	}
	c.redis = nil
	c.ownsRedis = false
}
