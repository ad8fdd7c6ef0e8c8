// Package config loads application configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string

	// Database
	DatabaseURL string
	SQLitePath  string

	// Redis
	RedisURL     string
	PlanCacheTTL time.Duration

	// RabbitMQ
	RabbitMQURL     string
	EventsPublished bool

	// Scoring weights (WSJF coefficients)
	BusinessValueWeight   float64
	TimeCriticalityWeight float64
	RiskReductionWeight   float64

	// Planning
	DefaultCapacity float64
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("CADENCE_SQLITE_PATH", defaultSQLitePath()),

		RedisURL:     getEnv("REDIS_URL", ""),
		PlanCacheTTL: getDurationEnv("CADENCE_PLAN_CACHE_TTL", 15*time.Minute),

		RabbitMQURL:     getEnv("RABBITMQ_URL", ""),
		EventsPublished: getBoolEnv("CADENCE_EVENTS_ENABLED", false),

		BusinessValueWeight:   getFloatEnv("CADENCE_WEIGHT_BUSINESS_VALUE", 1.0),
		TimeCriticalityWeight: getFloatEnv("CADENCE_WEIGHT_TIME_CRITICALITY", 1.0),
		RiskReductionWeight:   getFloatEnv("CADENCE_WEIGHT_RISK_REDUCTION", 1.0),

		DefaultCapacity: getFloatEnv("CADENCE_DEFAULT_CAPACITY", 0),
	}

	return cfg, nil
}

// Default returns a configuration with all defaults and nothing read from
// the environment.
func Default() *Config {
	return &Config{
		AppEnv:                "development",
		LogLevel:              "info",
		SQLitePath:            defaultSQLitePath(),
		PlanCacheTTL:          15 * time.Minute,
		BusinessValueWeight:   1.0,
		TimeCriticalityWeight: 1.0,
		RiskReductionWeight:   1.0,
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".cadence", "cadence.db")
	}
	return filepath.Join(home, ".cadence", "cadence.db")
}
