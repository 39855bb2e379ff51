package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/parachain_remit/internal/adapters/kafka"
	"github.com/SscSPs/parachain_remit/internal/adapters/realtime"
	"github.com/SscSPs/parachain_remit/internal/core/ports/events"
	"github.com/SscSPs/parachain_remit/internal/core/services"
	"github.com/SscSPs/parachain_remit/internal/handlers"
	"github.com/SscSPs/parachain_remit/internal/middleware"
	"github.com/SscSPs/parachain_remit/internal/platform/config"
	"github.com/SscSPs/parachain_remit/internal/repositories/database/pgsql"
	"github.com/SscSPs/parachain_remit/internal/utils"
	"github.com/SscSPs/parachain_remit/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	loginRateLimit  = "5-M"
	shutdownTimeout = 10 * time.Second
)

// @title Parachain Remittance API
// @version 1.0
// @description Demo backend for cross-parachain remittances: quotes, simulated settlement and liquidity pools.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...", slog.String("source", cfg.MigrationsPath))
	applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger)
	if err != nil {
		return err
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	repos := pgsql.NewRepositoryProvider(dbPool)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	hub := realtime.NewHub(logger, cfg.FrontendBaseURL)
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	go hub.Run(hubCtx)

	publishers := events.Publishers{hub, posthogClient}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				logger.Error("Failed to close Kafka publisher", slog.String("error", err.Error()))
			}
		}()
		publishers = append(publishers, kafkaPublisher)
	}

	seed, err := utils.SeedOrRandom(cfg.SettlementSeed)
	if err != nil {
		return err
	}
	settler := services.NewSettler(repos.TransactionRepo,
		services.WithPublisher(publishers),
		services.WithSettlementDelay(cfg.SettlementDelay),
		services.WithSuccessRate(cfg.SettlementSuccessRate),
		services.WithOutcomeSource(services.NewOutcomeSource(seed)),
		services.WithSettlerLogger(logger),
	)
	defer settler.Close()

	if _, err := settler.ResumePending(ctx); err != nil {
		return err
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, settler)

	apiLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}
	loginLimiter, err := middleware.NewMemoryLimiter(loginRateLimit)
	if err != nil {
		return err
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     []string{cfg.FrontendBaseURL},
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouteDeps{
		Hub:          hub,
		Limiter:      apiLimiter,
		LoginLimiter: loginLimiter,
		Posthog:      posthogClient,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	// Pending transactions stay pending in storage and are resumed on the next start.
	settler.Close()
	return nil
}
