package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Cache  CacheConfig
	Mirror MirrorConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// CacheConfig holds the local cache configuration
type CacheConfig struct {
	Path string
}

// Supported mirror backends.
const (
	MirrorNone     = "none"
	MirrorPostgres = "postgres"
	MirrorMongo    = "mongo"
)

// MirrorConfig holds the optional remote mirror configuration
type MirrorConfig struct {
	Type     string
	URL      string
	Database string
}

func Load() (*Config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
	}

	// Cache configuration
	config.Cache = CacheConfig{
		Path: getEnv("CACHE_PATH", "attendance.db"),
	}

	// Mirror configuration
	config.Mirror = MirrorConfig{
		Type:     getEnv("MIRROR_TYPE", MirrorNone),
		URL:      getEnv("MIRROR_URL", ""),
		Database: getEnv("MIRROR_DATABASE", "attendance"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Mirror.Type {
	case MirrorNone:
	case MirrorPostgres, MirrorMongo:
		if c.Mirror.URL == "" {
			return fmt.Errorf("MIRROR_URL is required when MIRROR_TYPE is %s", c.Mirror.Type)
		}
	default:
		return fmt.Errorf("invalid MIRROR_TYPE: %s", c.Mirror.Type)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
