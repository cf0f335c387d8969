// Package main is the entry point for the Hashlab API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/hashlab/backend/config"
	"github.com/hashlab/backend/internal/infra/dependency"
	"github.com/hashlab/backend/internal/infra/redis"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Hashlab API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize Redis connection; the service degrades gracefully without it
	// (no rate limiting, health reports Redis as disconnected).
	var redisClient *goredis.Client
	redisHealthChecker := func() bool { return false }

	conn, err := redis.NewConnection(&cfg.Redis)
	if err != nil {
		slog.Warn("Redis connection failed, running without rate limiting",
			"error", err,
		)
	} else {
		redisClient = conn.Client()
		redisHealthChecker = conn.HealthCheck
		defer func() {
			if err := conn.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}()
	}

	// Wire dependencies and setup router
	injector := dependency.NewInjector(cfg, redisClient, redisHealthChecker)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
