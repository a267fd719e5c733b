// Package config provides configuration for the aibot backend.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the backend configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// External collaborators
	AuthServiceURL   string
	ProfileUpdateURL string
	InferenceURL     string
	InferenceAPIKey  string

	// Timeouts
	AuthTimeout      time.Duration
	InferenceTimeout time.Duration

	// Token cache
	TokenCacheTTL time.Duration

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		HTTPPort:         getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:      getEnv("DATABASE_URL", "file:aibot.db?cache=shared&mode=rwc"),
		AuthServiceURL:   getEnv("AUTH_SERVICE_URL", "http://localhost:8000/api/auth/profile/"),
		ProfileUpdateURL: getEnv("AUTH_PROFILE_UPDATE_URL", "http://localhost:8000/api/auth/profile/update/"),
		InferenceURL:     getEnv("INFERENCE_URL", "http://localhost:8085"),
		InferenceAPIKey:  getEnv("INFERENCE_API_KEY", ""),
		AuthTimeout:      time.Duration(getEnvInt("AUTH_TIMEOUT_MS", 3000)) * time.Millisecond,
		InferenceTimeout: time.Duration(getEnvInt("INFERENCE_TIMEOUT_MS", 120000)) * time.Millisecond,
		TokenCacheTTL:    time.Duration(getEnvInt("TOKEN_CACHE_TTL_SECS", 60)) * time.Second,
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
