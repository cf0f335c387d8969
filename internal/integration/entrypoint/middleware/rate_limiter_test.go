package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newTestEngine(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(rl.Middleware())
	engine.POST("/hash", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func doRequest(engine *gin.Engine, ip string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/hash", nil)
	req.RemoteAddr = ip + ":12345"
	engine.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterBlocksAfterMaxAttempts(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	rl := NewRateLimiterWithConfig(client, 3, time.Minute)
	engine := newTestEngine(rl)

	for i := 0; i < 3; i++ {
		if code := doRequest(engine, "192.0.2.1"); code != http.StatusOK {
			t.Fatalf("request %d status = %d, want %d", i+1, code, http.StatusOK)
		}
	}

	if code := doRequest(engine, "192.0.2.1"); code != http.StatusTooManyRequests {
		t.Errorf("request over the limit status = %d, want %d", code, http.StatusTooManyRequests)
	}

	// A different client IP has its own window.
	if code := doRequest(engine, "192.0.2.2"); code != http.StatusOK {
		t.Errorf("other client status = %d, want %d", code, http.StatusOK)
	}

	// Reset clears all counters.
	if err := rl.Reset(context.Background()); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if code := doRequest(engine, "192.0.2.1"); code != http.StatusOK {
		t.Errorf("request after reset status = %d, want %d", code, http.StatusOK)
	}
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	window := time.Minute
	rl := NewRateLimiterWithConfig(client, 1, window)
	engine := newTestEngine(rl)

	if code := doRequest(engine, "192.0.2.1"); code != http.StatusOK {
		t.Fatalf("first request status = %d, want %d", code, http.StatusOK)
	}
	if code := doRequest(engine, "192.0.2.1"); code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want %d", code, http.StatusTooManyRequests)
	}

	mr.FastForward(window + time.Second)

	if code := doRequest(engine, "192.0.2.1"); code != http.StatusOK {
		t.Errorf("request after window expiry status = %d, want %d", code, http.StatusOK)
	}
}

func TestRateLimiterFailsOpenWithoutRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	rl := NewRateLimiterWithConfig(client, 1, time.Minute)
	engine := newTestEngine(rl)

	for i := 0; i < 3; i++ {
		if code := doRequest(engine, "192.0.2.1"); code != http.StatusOK {
			t.Fatalf("request %d status = %d, want fail-open %d", i+1, code, http.StatusOK)
		}
	}
}
