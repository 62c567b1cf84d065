package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the full application configuration, populated from environment
// variables once at process start.
type Config struct {
	App  AppConfig
	Auth AuthConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// AuthConfig carries the credential-signing inputs: secret, token algorithm
// and token lifetime.
type AuthConfig struct {
	Secret             string
	Algorithm          string
	TokenExpireMinutes int
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Personal Library API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Auth: AuthConfig{
			Secret:             getEnv("AUTH_SECRET", "your-secret-key-change-in-production"),
			Algorithm:          getEnv("AUTH_ALGORITHM", "HS256"),
			TokenExpireMinutes: getEnvInt("AUTH_TOKEN_EXPIRE_MINUTES", 30),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations that must never reach production.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Auth.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("AUTH_SECRET must be set in production")
		}
		if os.Getenv("DB_PASSWORD") == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
