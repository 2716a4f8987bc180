// Package config handles application configuration management.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	// LogLevel controls logging verbosity (4=info, 5=debug)
	LogLevel    int
	Environment string
}

// ServerConfig holds HTTP server and CORS configuration.
type ServerConfig struct {
	Address string
	// AllowedOrigins is a comma-separated list of allowed origins for CORS
	AllowedOrigins string
}

// DatabaseConfig holds MySQL database connection parameters.
type DatabaseConfig struct {
	// DSN, when set, is used verbatim (minus enforced options) and
	// takes precedence over the individual fields below.
	DSN            string
	Host           string
	Port           int
	User           string
	Password       string
	Database       string
	MigrationsPath string
	// TLSMode is passed to the driver's tls option. Encrypted transport
	// is required, so the zero value is "true", never "false".
	TLSMode string
}

// AuthConfig holds session configuration.
type AuthConfig struct {
	// SessionSecret must be changed from default in production
	SessionSecret string

	// Cookie configuration
	CookieDomain   string
	CookieSameSite string
}

// Load reads configuration from the environment, with an optional .env file
// for local development.
func Load() (*Config, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("FINBOARD_DB_PORT", "3306"))
	if err != nil {
		return nil, fmt.Errorf("invalid FINBOARD_DB_PORT: %w", err)
	}

	tlsMode := getEnv("FINBOARD_DB_TLS", "true")
	if tlsMode == "false" {
		return nil, fmt.Errorf("FINBOARD_DB_TLS=false is not supported: encrypted transport is required")
	}

	cfg := &Config{
		Server: ServerConfig{
			Address:        getEnv("FINBOARD_SERVER_ADDRESS", ":8080"),
			AllowedOrigins: getEnv("FINBOARD_ALLOWED_ORIGINS", ""),
		},
		Database: DatabaseConfig{
			DSN:            getEnv("FINBOARD_DB_DSN", ""),
			Host:           getEnv("FINBOARD_DB_HOST", "localhost"),
			Port:           port,
			User:           getEnv("FINBOARD_DB_USER", "finboard"),
			Password:       getEnv("FINBOARD_DB_PASSWORD", "finboard"),
			Database:       getEnv("FINBOARD_DB_NAME", "finboard"),
			MigrationsPath: getEnv("FINBOARD_MIGRATIONS_PATH", "migrations"),
			TLSMode:        tlsMode,
		},
		Auth: AuthConfig{
			SessionSecret:  getEnv("FINBOARD_SESSION_SECRET", "your-secret-key-change-in-production"),
			CookieDomain:   getEnv("FINBOARD_COOKIE_DOMAIN", ""),
			CookieSameSite: getEnv("FINBOARD_COOKIE_SAMESITE", "lax"),
		},
		LogLevel:    4, // info level
		Environment: getEnv("FINBOARD_ENV", "development"),
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable key, or defaultValue if unset.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
