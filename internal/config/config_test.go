package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "DB_DRIVER", "DATABASE_URL", "ADMIN_NAME", "ADMIN_PASSWORD",
		"SESSION_TTL", "CORS_ORIGINS", "LOG_LEVEL", "DEBUG", "SEED_DEFAULTS",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, defaultPostgresDSN, cfg.DatabaseURL)
	assert.Equal(t, "Admin", cfg.AdminName)
	assert.Equal(t, "s3cret", cfg.AdminPassword)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.CORSOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Debug)
	assert.True(t, cfg.SeedDefaults)
}

func TestFromEnv_AdminPassword(t *testing.T) {
	clearEnv(t)
	_, err := FromEnv()
	assert.ErrorContains(t, err, "ADMIN_PASSWORD")

	t.Setenv("DEBUG", "true")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "Admin", cfg.AdminName)
	assert.Equal(t, "Admin", cfg.AdminPassword)
}

func TestFromEnv_SQLite(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("DB_DRIVER", "SQLite")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, defaultSQLitePath, cfg.DatabaseURL)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/recruit")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("DEBUG", "true")
	t.Setenv("SEED_DEFAULTS", "0")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres://u:p@db/recruit", cfg.DatabaseURL)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.SeedDefaults)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"unknown driver", "DB_DRIVER", "mysql"},
		{"bad ttl", "SESSION_TTL", "forever"},
		{"negative ttl", "SESSION_TTL", "-1h"},
		{"bad bool", "DEBUG", "maybe"},
		{"bad level", "LOG_LEVEL", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("ADMIN_PASSWORD", "s3cret")
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
