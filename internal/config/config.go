package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Auth    AuthConfig
	SMTP    SMTPConfig
	Feed    FeedConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// StorageConfig selects the repository backend. "postgres" is the
// default; "memory" runs the whole content/identity store in process,
// which is useful for local development without a database.
type StorageConfig struct {
	Backend string // postgres, memory
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// AuthConfig carries authentication policy knobs.
// AutoLogin controls whether registration immediately establishes a
// session (the reference variants differ; this is a deployment choice).
type AuthConfig struct {
	AutoLogin bool
}

type SMTPConfig struct {
	Host      string
	Port      string
	Username  string
	Password  string
	From      string
	Recipient string // fixed contact-form recipient
}

// FeedConfig points at the remote JSON source the static blog pages are
// served from. The feed is fetched once at startup.
type FeedConfig struct {
	URL     string
	Timeout time.Duration
}

const placeholderSecret = "your-secret-key-change-in-production"

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Blog API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", "postgres"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", true),
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", placeholderSecret),
			AccessTokenExpiry: getEnvDuration("JWT_ACCESS_EXPIRY", 24*time.Hour),
		},
		Auth: AuthConfig{
			AutoLogin: getEnvBool("AUTH_AUTO_LOGIN", true),
		},
		SMTP: SMTPConfig{
			Host:      getEnv("SMTP_HOST", "localhost"),
			Port:      getEnv("SMTP_PORT", "587"),
			Username:  getEnv("SMTP_USERNAME", ""),
			Password:  getEnv("SMTP_PASSWORD", ""),
			From:      getEnv("SMTP_FROM", "noreply@blog.dev"),
			Recipient: getEnv("CONTACT_RECIPIENT", "owner@blog.dev"),
		},
		Feed: FeedConfig{
			URL:     getEnv("FEED_URL", "https://api.npoint.io/e804a12b698002b4dc64"),
			Timeout: getEnvDuration("FEED_TIMEOUT", 10*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations that must never reach production.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "postgres", "memory":
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}

	if c.App.Environment == "production" {
		if c.JWT.Secret == placeholderSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Storage.Backend == "postgres" && os.Getenv("DB_PASSWORD") == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}

	return nil
}

// Helper functions
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

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
