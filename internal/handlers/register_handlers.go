package handlers

import (
	"github.com/SscSPs/parachain_remit/cmd/docs"
	"github.com/SscSPs/parachain_remit/internal/adapters/realtime"
	portssvc "github.com/SscSPs/parachain_remit/internal/core/ports/services"
	"github.com/SscSPs/parachain_remit/internal/middleware"
	"github.com/SscSPs/parachain_remit/internal/platform/config"
	"github.com/SscSPs/parachain_remit/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteDeps carries the optional collaborators of the HTTP layer. Nil fields
// switch the matching feature off.
type RouteDeps struct {
	Hub          *realtime.Hub
	Limiter      *limiter.Limiter
	LoginLimiter *limiter.Limiter
	Posthog      *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all application routes under /api.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	RegisterValidators()

	api := r.Group("/api")
	api.GET("/health", getHealth)

	if deps.Limiter != nil {
		api.Use(middleware.RateLimit(deps.Limiter))
	}
	api.Use(middleware.OptionalAuthMiddleware(cfg.JWTSecret))
	if deps.Posthog != nil {
		api.Use(middleware.PosthogMiddleware(deps.Posthog))
	}

	var loginLimit gin.HandlerFunc
	if deps.LoginLimiter != nil {
		loginLimit = middleware.RateLimit(deps.LoginLimiter)
	}

	registerAuthRoutes(api, services.User, loginLimit)
	registerUserRoutes(api, services.User)
	registerCurrencyRoutes(api, services.Currency)
	registerExchangeRateRoutes(api, services.ExchangeRate)
	registerQuoteRoutes(api, services.Quote)
	registerTransactionRoutes(api, services.Transaction)
	registerLiquidityRoutes(api, services.Liquidity)
	registerRealtimeRoutes(api, deps.Hub)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
