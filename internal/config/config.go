package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port                int
	LogLevel            string
	LogFormat           string
	Environment         string
	Version             string
	CatalogPath         string
	EventCatalogPath    string
	EventDeadLetterPath string
	MaxRecentEvents     int
	DedupeWindowMS      int
	DedupeHorizonMS     int
	ResolveCacheSize    int
	ResolveCacheTTL     int    // seconds
	APIKey              string // API key for authentication
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "text"),
		Environment:         getEnv("ENVIRONMENT", "dev"),
		Version:             getEnv("VERSION", "dev"),
		CatalogPath:         getEnv("CATALOG_PATH", DefaultCatalogPath),
		EventCatalogPath:    getEnv("EVENT_CATALOG_PATH", DefaultEventCatalogPath),
		EventDeadLetterPath: getEnv("EVENT_DEAD_LETTER_PATH", DefaultEventDeadLetterPath),
		APIKey:              getEnv("API_KEY", ""),
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.MaxRecentEvents, err = getEnvInt("MAX_RECENT_EVENTS", 1000); err != nil {
		return nil, err
	}
	if cfg.DedupeWindowMS, err = getEnvInt("DEDUPE_WINDOW_MS", 500); err != nil {
		return nil, err
	}
	if cfg.DedupeHorizonMS, err = getEnvInt("DEDUPE_HORIZON_MS", 3000); err != nil {
		return nil, err
	}
	if cfg.ResolveCacheSize, err = getEnvInt("RESOLVE_CACHE_SIZE", 512); err != nil {
		return nil, err
	}
	if cfg.ResolveCacheTTL, err = getEnvInt("RESOLVE_CACHE_TTL_SECONDS", 300); err != nil {
		return nil, err
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}
