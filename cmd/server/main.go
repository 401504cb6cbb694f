package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"space-age/internal/auth"
	"space-age/internal/middleware"
	"space-age/internal/planet"
	"space-age/internal/server"
	serverHandlers "space-age/internal/server/handlers"
	"space-age/internal/shared/config"
	"space-age/internal/shared/database"
	"space-age/internal/shared/logger"
	"space-age/internal/shared/metrics"
	"space-age/internal/shared/redis"
)

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init()

	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.GlobalConfig
	log := slog.With("component", "main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collector := metrics.NewCollector()

	var store planet.Store
	var pinger serverHandlers.Pinger
	if cfg.Database.Enabled {
		db, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		store = planet.NewRepository(db, slog.Default())
		pinger = db
	}

	rdb, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	var cache planet.CatalogCache
	var redisPing func(ctx context.Context) error
	if rdb != nil {
		cache = planet.NewCache(rdb.Client, cfg.Redis.CacheTTL)
		redisPing = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	planetService := planet.NewService(store, cache, collector, slog.Default())
	if err := planetService.LoadCatalog(ctx); err != nil {
		return fmt.Errorf("failed to load orbital period catalog: %w", err)
	}

	var tokens *auth.TokenManager
	if cfg.Auth.Enabled {
		tokens, err = auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiration)
		if err != nil {
			return err
		}
	}

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}

	health := serverHandlers.NewHealthHandler(pinger, redisPing, func() string {
		return string(planetService.Source())
	})
	mux := server.NewRoutes(health, planetService, collector, metricsPath, tokens).Setup()

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	defer rateLimiter.Stop()

	handler := middleware.NewCORS(cfg.Frontend).Middleware(rateLimiter.Middleware(mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Space age server starting",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
			"catalog", planetService.Source(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
