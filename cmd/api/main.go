package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"betmachine/config"
	"betmachine/internal/adapter/feed/oddsapi"
	httpHandler "betmachine/internal/adapter/http/handler"
	pgStorage "betmachine/internal/adapter/storage/postgres"
	redisStorage "betmachine/internal/adapter/storage/redis"
	"betmachine/internal/core/ports"
	"betmachine/internal/service"
	"betmachine/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting BetMachine")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	if err := pgStorage.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database schema")
	}

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	userRepo := pgStorage.NewUserRepo(pool)
	betRepo := pgStorage.NewBetRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	snapshotStore := redisStorage.NewSnapshotStore(rdb, 24*time.Hour)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize external feed
	feed := oddsapi.NewClient(cfg.Odds, nil, log)

	// Initialize business services
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	walletSvc := service.NewWalletService(userRepo, cfg.Betting, log)
	betSvc := service.NewBetService(userRepo, betRepo, transactor, cfg.Betting, rng, log)
	settlementSvc := service.NewSettlementService(userRepo, betRepo, transactor, log)
	eventSvc := service.NewEventService(feed, snapshotStore, cfg.Odds, cfg.Cache, log)

	// Background settlement loop
	reconciler := service.NewReconciler(feed, betRepo, settlementSvc, cfg.Odds, cfg.Reconciler, log)
	reconcilerCtx, stopReconciler := context.WithCancel(ctx)
	defer stopReconciler()
	go reconciler.Run(reconcilerCtx)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		BetSvc:         betSvc,
		EventSvc:       eventSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	stopReconciler()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
