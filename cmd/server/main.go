package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/picopay/engine/internal/adapter/http"
	"github.com/picopay/engine/internal/adapter/http/handler"
	postgresRepo "github.com/picopay/engine/internal/adapter/repository/postgres"
	redisRepo "github.com/picopay/engine/internal/adapter/repository/redis"
	"github.com/picopay/engine/internal/infrastructure/config"
	"github.com/picopay/engine/internal/infrastructure/logger"
	"github.com/picopay/engine/internal/infrastructure/metrics"
	"github.com/picopay/engine/internal/infrastructure/postgres"
	"github.com/picopay/engine/internal/infrastructure/redis"
	"github.com/picopay/engine/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Run migrations before accepting traffic
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	chargeRepo := postgresRepo.NewChargeRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	retrier := postgresRepo.NewRetrier(log)
	idGen := postgresRepo.NewULIDGenerator()
	chargeMetrics := metrics.New()

	// Initialize use cases
	accountUC := usecase.NewAccountUseCase(accountRepo, idGen)
	chargeUC := usecase.NewChargeUseCase(
		txManager,
		accountRepo,
		chargeRepo,
		cache,
		retrier,
		idGen,
		chargeMetrics,
		cfg.CacheTTL,
		log,
	)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountUC)
	chargeHandler := handler.NewChargeHandler(chargeUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler: accountHandler,
		ChargeHandler:  chargeHandler,
		HealthHandler:  healthHandler,
		APIKey:         cfg.APIKey,
		Logger:         log,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
