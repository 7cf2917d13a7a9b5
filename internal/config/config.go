// Package config loads application configuration from the environment
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	Gemini GeminiConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr string

	// SessionTTL is how long an idle wizard session survives
	SessionTTL time.Duration
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey string
	Model  string
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first if present.
func Load() (*Config, error) {
	// Missing .env is fine; real env vars win either way
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Redis: RedisConfig{
			Addr:       getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			SessionTTL: getEnvAsDurationOrDefault("SESSION_TTL", 24*time.Hour),
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  os.Getenv("GEMINI_MODEL"),
		},
	}

	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
