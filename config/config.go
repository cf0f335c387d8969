// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Hashing   HashingConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// HashingConfig holds password hashing configuration.
type HashingConfig struct {
	// BcryptCost is the active bcrypt work factor. Hashes produced with a
	// lower cost are considered deprecated and upgraded on verify.
	BcryptCost int
}

// RateLimitConfig holds rate limiting configuration for hashing endpoints.
type RateLimitConfig struct {
	MaxAttempts    int
	WindowDuration time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Hashing: HashingConfig{
			BcryptCost: getEnvAsInt("BCRYPT_COST", 12),
		},
		RateLimit: RateLimitConfig{
			MaxAttempts:    getEnvAsInt("RATE_LIMIT_MAX_ATTEMPTS", 10),
			WindowDuration: getEnvAsDuration("RATE_LIMIT_WINDOW", 1*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
