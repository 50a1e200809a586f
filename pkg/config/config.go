package config

import (
	"os"
	"strconv"
	"time"
)

type AppConfig struct {
	Port        string
	Environment string
	LogLevel    string

	// DatabaseURL selects the postgres adapter; when empty the service
	// falls back to the sqlite file at DatabasePath.
	DatabaseURL    string
	DatabasePath   string
	MigrationsPath string

	// JWTSecret empty means open mode: /me answers with the anonymous
	// placeholder identity instead of requiring a bearer token.
	JWTSecret string

	RateLimitEnabled bool
	RateLimitConfigs map[string]RateLimitConfig
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

func Load() *AppConfig {
	cfg := &AppConfig{
		Port:             getEnv("PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DatabasePath:     getEnv("DATABASE_PATH", "database.db"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", false),
		RateLimitConfigs: defaultRateLimits(),
	}

	defaultMigrations := "db/migrations"

	if cfg.DatabaseURL != "" {
		defaultMigrations = "infra/migrations"
	}

	cfg.MigrationsPath = getEnv("MIGRATIONS_PATH", defaultMigrations)

	return cfg
}

func defaultRateLimits() map[string]RateLimitConfig {
	return map[string]RateLimitConfig{
		"GET /todos":        {Requests: 100, Window: time.Minute},
		"POST /todos":       {Requests: 20, Window: time.Minute},
		"PUT /todos/:id":    {Requests: 20, Window: time.Minute},
		"DELETE /todos/:id": {Requests: 20, Window: time.Minute},
		"default":           {Requests: 60, Window: time.Minute},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)

	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(value)

	if err != nil {
		return fallback
	}

	return parsed
}
