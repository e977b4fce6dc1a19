package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is loaded from environment variables. Empty MongoURI/RedisAddr
// select the in-memory stores, which keeps local development dependency
// free.
type Config struct {
	Port string

	MongoURI    string
	MongoDBName string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionCleanupSchedule string
	SessionMaxAge          time.Duration

	AllowedOrigins []string
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                   getEnvOrDefault("PORT", "8080"),
		MongoURI:               os.Getenv("MONGO_URI"),
		MongoDBName:            getEnvOrDefault("MONGO_DB_NAME", "interview"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		SessionCleanupSchedule: getEnvOrDefault("SESSION_CLEANUP_SCHEDULE", "@every 1h"),
		AllowedOrigins:         []string{getEnvOrDefault("ALLOWED_ORIGIN", "http://localhost:5173")},
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cfg.RedisDB = redisDB

	maxAge, err := time.ParseDuration(getEnvOrDefault("SESSION_MAX_AGE", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_MAX_AGE: %w", err)
	}
	cfg.SessionMaxAge = maxAge

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
