package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/joho/godotenv"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Data        DataConfig
	Entitlement EntitlementConfig
	Staleness   StalenessConfig
	CORS        CORSConfig
	Log         LogConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds the preference database configuration
type DatabaseConfig struct {
	Path string
}

// DataConfig selects the analysis document. An empty Path means the bundled one.
type DataConfig struct {
	Path string
}

// EntitlementConfig holds the free-tier limit and the optional keys sealing
// stored preferences.
type EntitlementConfig struct {
	FreeLimit      int
	PreferenceKeys []*fernet.Key
}

// StalenessConfig controls the scheduled staleness check. An empty Schedule
// disables it.
type StalenessConfig struct {
	Schedule   string
	StaleAfter time.Duration
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	freeLimit, err := getEnvInt("FREE_TIER_LIMIT", model.DefaultFreeLimit)
	if err != nil {
		return nil, err
	}
	if freeLimit < 0 {
		return nil, fmt.Errorf("FREE_TIER_LIMIT must not be negative, got %d", freeLimit)
	}

	staleAfter, err := getEnvDuration("STALE_AFTER", 7*24*time.Hour)
	if err != nil {
		return nil, err
	}

	var keys []*fernet.Key
	if raw := getEnv("PREFERENCE_KEY", ""); raw != "" {
		keys, err = fernet.DecodeKeys(strings.Split(raw, ",")...)
		if err != nil {
			return nil, fmt.Errorf("invalid PREFERENCE_KEY: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/etf_tracker.db"),
		},
		Data: DataConfig{
			Path: getEnv("DATA_PATH", ""),
		},
		Entitlement: EntitlementConfig{
			FreeLimit:      freeLimit,
			PreferenceKeys: keys,
		},
		Staleness: StalenessConfig{
			Schedule:   os.Getenv("STALE_CHECK_SCHEDULE"),
			StaleAfter: staleAfter,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost")),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
	if _, set := os.LookupEnv("STALE_CHECK_SCHEDULE"); !set {
		config.Staleness.Schedule = "@daily"
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
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
