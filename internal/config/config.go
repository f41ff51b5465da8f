package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/depositodopitty/pit/internal/logger"
)

// Backend selects where the dashboard reads and writes its records.
type Backend string

const (
	BackendRemote   Backend = "remote"
	BackendDatabase Backend = "database"
)

type Config struct {
	Port    string
	APIPort string
	Env     string

	// APIURL is the base URL of the business REST API used when Backend is remote.
	APIURL      string
	Backend     Backend
	DatabaseDSN string

	SessionSecret string
	JWTSecret     string
	HTTPTimeout   time.Duration

	DBDebug    bool
	DBSeed     bool
	Migrations bool

	// Credentials of the administrator created by DB_SEED.
	SeedAdminEmail    string
	SeedAdminPassword string

	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by the caller) > default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		APIPort:       getEnv("API_PORT", "8081"),
		Env:           getEnv("APP_ENV", "development"),
		APIURL:        strings.TrimRight(getEnv("API_URL", "http://localhost:8081"), "/"),
		Backend:       Backend(strings.ToLower(getEnv("BACKEND", string(BackendRemote)))),
		DatabaseDSN:   getEnv("DATABASE_DSN", "file:pit.db"),
		SessionSecret: getEnv("SESSION_SECRET", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		DBDebug:       ParseBool("DB_DEBUG", false),
		DBSeed:        ParseBool("DB_SEED", false),
		Migrations:    ParseBool("MIGRATIONS", false),

		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@depositodopitty.com.br"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin123"),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", time.RFC3339),
		LogOutput:     getEnv("LOG_OUTPUT", "stdout"),
	}
	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("config validation failed: HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "dev-session-secret"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-jwt-secret"
	}
	return cfg, nil
}

// Production reports whether APP_ENV names a production deployment.
func (c *Config) Production() bool {
	return c.Env == "production" || c.Env == "prod"
}

func (c *Config) validate() error {
	var errs []error
	switch c.Backend {
	case BackendRemote:
		if c.APIURL == "" {
			errs = append(errs, errors.New("API_URL is required when BACKEND=remote"))
		}
	case BackendDatabase:
		if c.DatabaseDSN == "" {
			errs = append(errs, errors.New("DATABASE_DSN is required when BACKEND=database"))
		}
	default:
		errs = append(errs, fmt.Errorf("BACKEND must be remote or database, got %q", c.Backend))
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, errors.New("HTTP_TIMEOUT must be positive"))
	}
	if c.Production() {
		if c.SessionSecret == "" {
			errs = append(errs, errors.New("SESSION_SECRET is required in production"))
		}
		if c.JWTSecret == "" {
			errs = append(errs, errors.New("JWT_SECRET is required in production"))
		}
	}
	return errors.Join(errs...)
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return def
		}
		return b
	}
	return def
}
