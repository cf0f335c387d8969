// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/hashlab/backend/internal/domain/error"
	"github.com/hashlab/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 10
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
	// keyPrefix namespaces rate limit counters in Redis.
	keyPrefix = "ratelimit:hashing:"
)

// RateLimiter provides IP-based rate limiting backed by Redis counters.
// Hashing endpoints are brute-force targets, so each client IP gets a
// fixed window of attempts tracked with INCR + EXPIRE.
type RateLimiter struct {
	client         *redis.Client
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a new rate limiter with default settings.
func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{
		client:         client,
		maxAttempts:    defaultMaxAttempts,
		windowDuration: defaultWindowDuration,
	}
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
func NewRateLimiterWithConfig(client *redis.Client, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		client:         client,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get client IP
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		// Check rate limit
		if !rl.allow(c.Request.Context(), clientIP) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow checks if a request from the given key should be allowed.
// The limiter fails open: if Redis is unreachable the request proceeds.
func (rl *RateLimiter) allow(ctx context.Context, key string) bool {
	if rl.client == nil {
		return true
	}

	redisKey := keyPrefix + key

	count, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		slog.Warn("Rate limiter unavailable, allowing request", "error", err)
		return true
	}

	// First attempt in a fresh window starts the expiry clock.
	if count == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.windowDuration).Err(); err != nil {
			slog.Warn("Failed to set rate limit window", "error", err)
		}
	}

	return count <= int64(rl.maxAttempts)
}

// Reset clears all rate limiter state (useful for testing).
func (rl *RateLimiter) Reset(ctx context.Context) error {
	if rl.client == nil {
		return nil
	}

	iter := rl.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := rl.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete rate limit key: %w", err)
		}
	}
	return iter.Err()
}
