// Package config provides application configuration management from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration
type Config struct {
	APIPort        string
	APIHost        string
	LogLevel       string
	CatalogSource  string
	CatalogPath    string
	DatabaseURL    string
	RateLimit      float64 // requests per second
	RateLimitBurst int
	CORSOrigins    []string
}

// Load reads and validates configuration from environment variables
func Load() (*Config, error) {
	cfg, err := Read()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read parses the environment without validating it, so callers can
// apply overrides first
func Read() (*Config, error) {
	cfg := &Config{
		APIPort:       getEnv("API_PORT", "8080"),
		APIHost:       getEnv("API_HOST", "0.0.0.0"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CatalogSource: strings.ToLower(getEnv("CATALOG_SOURCE", "file")),
		CatalogPath:   getEnv("CATALOG_PATH", "cocktaildb_dump.json"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "*")),
	}

	var err error
	if cfg.RateLimit, err = getEnvFloat("RATE_LIMIT", 50); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 100); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the catalog source is usable
func (c *Config) Validate() error {
	switch c.CatalogSource {
	case "file", "sqlite":
		if c.CatalogPath == "" {
			return fmt.Errorf("CATALOG_PATH is required for %s source", c.CatalogSource)
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for postgres source")
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE must be file, sqlite or postgres, got %q", c.CatalogSource)
	}

	if c.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT must be positive")
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive")
	}
	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.APIHost, c.APIPort)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
