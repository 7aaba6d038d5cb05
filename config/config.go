// Package config loads runtime settings from the environment.
package config

import (
	"os"
	"strings"
	"time"

	"randomdog/logutil"
)

// Config holds all application configuration.
type Config struct {
	// Server configuration
	Port    string
	GinMode string

	// Upstream dog API
	DogAPIURL     string
	DogAPITimeout time.Duration

	// Base URL client views use to reach the backend
	BackendURL string

	// Origins allowed to call the API from a browser; empty means any
	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables with defaults.
// Callers load .env beforehand if they want one.
func Load() *Config {
	return &Config{
		Port:          GetEnvOrDefault("PORT", DefaultPort),
		GinMode:       GetEnvOrDefault("GIN_MODE", DefaultGinMode),
		DogAPIURL:     GetEnvOrDefault("DOG_API_URL", DefaultDogAPIURL),
		DogAPITimeout: getEnvDuration("DOG_API_TIMEOUT", 0),
		BackendURL:    strings.TrimRight(GetEnvOrDefault("VITE_BACKEND_URL", DefaultBackendURL), "/"),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
	}
}

// Addr returns the listen address for the API server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		logutil.Warn("invalid duration, using default", logutil.Fields{
			"key":     key,
			"value":   val,
			"default": defaultVal.String(),
		})
		return defaultVal
	}
	return d
}

// getEnvList splits a comma-separated variable, dropping blanks and "*"
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part == "" || part == "*" {
			continue
		}
		out = append(out, part)
	}
	return out
}
