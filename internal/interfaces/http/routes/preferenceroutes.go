package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chennai-a11y/prefsync/internal/interfaces/http/handlers"
	"github.com/chennai-a11y/prefsync/internal/interfaces/http/middleware"
)

// PreferenceRouteConfig holds the configuration for the /api routes
type PreferenceRouteConfig struct {
	Handler            *handlers.PreferenceHandler
	IdentityMiddleware *middleware.IdentityMiddleware
	// RateLimiter is optional; nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
}

// SetupPreferenceRoutes configures the settings API
func SetupPreferenceRoutes(engine *gin.Engine, config *PreferenceRouteConfig) {
	api := engine.Group("/api")
	if config.RateLimiter != nil {
		api.Use(config.RateLimiter.Limit())
	}
	{
		settings := api.Group("/settings")
		settings.Use(config.IdentityMiddleware.Resolve())
		{
			settings.GET("", config.Handler.GetSettings)
			settings.POST("", config.Handler.SaveSettings)
		}

		api.GET("/translations/:lang", config.Handler.GetTranslations)
		api.POST("/language", config.Handler.SetLanguage)
	}
}
