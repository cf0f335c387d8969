// Package redis provides Redis connection and management functionality.
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/hashlab/backend/config"
)

// Connection wraps the go-redis client.
type Connection struct {
	client *goredis.Client
	cfg    *config.RedisConfig
}

// NewConnection creates a new Redis connection from configuration.
func NewConnection(cfg *config.RedisConfig) (*Connection, error) {
	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := goredis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	slog.Info("Redis connection established", "addr", opts.Addr, "db", opts.DB)

	return &Connection{
		client: client,
		cfg:    cfg,
	}, nil
}

// Client returns the underlying go-redis client.
func (c *Connection) Client() *goredis.Client {
	return c.client
}

// HealthCheck performs a health check on the Redis connection.
func (c *Connection) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := c.client.Ping(ctx).Err(); err != nil {
		slog.Error("Redis health check failed", "error", err)
		return false
	}

	return true
}

// Close closes the Redis connection.
func (c *Connection) Close() error {
	return c.client.Close()
}
