package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all CLI settings, populated from environment variables.
type Config struct {
	// BaseURL of the DeepskyLog instance to query.
	BaseURL string
	// RequestTimeout bounds each equipment API request.
	RequestTimeout time.Duration

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	timeoutStr := envOrDefault("DSL_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, errors.New("invalid DSL_TIMEOUT")
	}

	cfg := &Config{
		BaseURL:        envOrDefault("DSL_BASE_URL", "https://test.deepskylog.org"),
		RequestTimeout: timeout,
		LogLevel:       envOrDefault("LOG_LEVEL", "info"),
		LogFormat:      envOrDefault("LOG_FORMAT", "text"),
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("DSL_BASE_URL is required")
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, errors.New("LOG_FORMAT must be text or json")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("LOG_LEVEL must be debug, info, warn or error")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
