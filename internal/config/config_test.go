package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "http://localhost:3001", cfg.DataStore.URL)
	assert.Equal(t, time.Duration(0), cfg.DataStore.Timeout)
	assert.Equal(t, 3001, cfg.DataStore.Port)
	assert.Equal(t, BackendMemory, cfg.DataStore.Backend)
	assert.Equal(t, report.KeepOrphans, cfg.Report.OrphanPolicy)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, time.Duration(0), cfg.App.RefreshInterval)
	assert.Equal(t, Version, cfg.App.Version)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DATASTORE_URL", "http://datastore:3001/")
	t.Setenv("DATASTORE_TIMEOUT", "5s")
	t.Setenv("DATASTORE_BACKEND", BackendPostgres)
	t.Setenv("REFRESH_INTERVAL", "1m")
	t.Setenv("REPORT_ORPHAN_POLICY", "drop")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_VERSION", "v2.3.1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "http://datastore:3001", cfg.DataStore.URL)
	assert.Equal(t, 5*time.Second, cfg.DataStore.Timeout)
	assert.Equal(t, BackendPostgres, cfg.DataStore.Backend)
	assert.Equal(t, time.Minute, cfg.App.RefreshInterval)
	assert.Equal(t, report.DropOrphans, cfg.Report.OrphanPolicy)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "v2.3.1", cfg.App.Version)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port", "APP_PORT", "eighty"},
		{"timeout", "DATASTORE_TIMEOUT", "soon"},
		{"backend", "DATASTORE_BACKEND", "redis"},
		{"url", "DATASTORE_URL", "localhost"},
		{"policy", "REPORT_ORPHAN_POLICY", "merge"},
		{"refresh", "REFRESH_INTERVAL", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5432, User: "postgres", Password: "p@ss", Name: "hris_console", SSLMode: "disable",
	}}

	assert.Equal(t, "postgres://postgres:p%40ss@db:5432/hris_console?sslmode=disable", cfg.DatabaseURL())
}
