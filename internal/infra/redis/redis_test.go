package redis

import (
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/hashlab/backend/config"
)

func TestNewConnection(t *testing.T) {
	mr := miniredis.RunT(t)

	conn, err := NewConnection(&config.RedisConfig{URL: "redis://" + mr.Addr()})
	if err != nil {
		t.Fatalf("NewConnection() error = %v", err)
	}
	defer conn.Close()

	if !conn.HealthCheck() {
		t.Error("HealthCheck() = false, want true for a reachable server")
	}

	mr.Close()

	if conn.HealthCheck() {
		t.Error("HealthCheck() = true, want false after the server is gone")
	}
}

func TestNewConnectionRejectsBadURL(t *testing.T) {
	if _, err := NewConnection(&config.RedisConfig{URL: "not-a-redis-url"}); err == nil {
		t.Error("NewConnection() with a bad URL succeeded, want an error")
	}
}
