// Package config loads and validates environment variables at startup.
// Fail-fast: a malformed value stops the process with an error.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultPostgresDSN = "host=localhost user=postgres password=password dbname=recruitment port=5432 sslmode=disable"
	defaultSQLitePath  = "recruitment.db"
)

// Config holds all runtime configuration for the API.
type Config struct {
	Port string

	DBDriver    string
	DatabaseURL string

	// The marker's account, created on startup if missing.
	AdminName     string
	AdminPassword string

	SessionTTL  time.Duration
	CORSOrigins []string

	LogLevel string
	Debug    bool

	SeedDefaults bool
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	// .env is optional outside local dev
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		DBDriver:      strings.ToLower(getenv("DB_DRIVER", DriverPostgres)),
		AdminName:     getenv("ADMIN_NAME", "Admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		LogLevel:      strings.ToLower(getenv("LOG_LEVEL", "info")),
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		cfg.DatabaseURL = getenv("DATABASE_URL", defaultPostgresDSN)
	case DriverSQLite:
		cfg.DatabaseURL = getenv("DATABASE_URL", defaultSQLitePath)
	default:
		return nil, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, cfg.DBDriver)
	}

	ttl, err := time.ParseDuration(getenv("SESSION_TTL", "12h"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be a positive duration, got %q", os.Getenv("SESSION_TTL"))
	}
	cfg.SessionTTL = ttl

	if cfg.Debug, err = getbool("DEBUG", false); err != nil {
		return nil, err
	}
	if cfg.SeedDefaults, err = getbool("SEED_DEFAULTS", true); err != nil {
		return nil, err
	}

	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", cfg.LogLevel)
	}

	// Local development gets the well-known marker login; anything else must set one.
	if cfg.AdminPassword == "" {
		if !cfg.Debug {
			return nil, fmt.Errorf("ADMIN_PASSWORD must be set unless DEBUG is on")
		}
		cfg.AdminPassword = "Admin"
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
	return v, nil
}
