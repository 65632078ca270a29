package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/domain/report"
	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	App       AppConfig
	DataStore DataStoreConfig
	Database  DatabaseConfig
	Report    ReportConfig
	CORS      CORSConfig
}

// AppConfig holds application configuration
// Version is stamped at build time with
// -ldflags "-X github.com/cmlabs-hris/hris-console/internal/config.Version=v1.2.0".
var Version = "dev"

type AppConfig struct {
	Port     int
	Version  string
	Env      string
	LogLevel string
	// RefreshInterval re-fetches both collections in the background; 0 disables it
	RefreshInterval time.Duration
}

// DataStoreConfig covers both sides: the console's client and the reference server.
type DataStoreConfig struct {
	URL      string
	Timeout  time.Duration
	Port     int
	Backend  string
	SeedFile string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type ReportConfig struct {
	OrphanPolicy report.OrphanPolicy
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	refreshInterval, err := time.ParseDuration(getEnv("REFRESH_INTERVAL", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}

	config.App = AppConfig{
		Port:            appPort,
		Version:         getEnv("APP_VERSION", Version),
		Env:             getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		RefreshInterval: refreshInterval,
	}

	// Data Store configuration
	dsPort, err := strconv.Atoi(getEnv("DATASTORE_PORT", "3001"))
	if err != nil {
		return nil, fmt.Errorf("invalid DATASTORE_PORT: %w", err)
	}

	dsTimeout, err := time.ParseDuration(getEnv("DATASTORE_TIMEOUT", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid DATASTORE_TIMEOUT: %w", err)
	}

	config.DataStore = DataStoreConfig{
		URL:      strings.TrimRight(getEnv("DATASTORE_URL", "http://localhost:3001"), "/"),
		Timeout:  dsTimeout,
		Port:     dsPort,
		Backend:  getEnv("DATASTORE_BACKEND", BackendMemory),
		SeedFile: getEnv("DATASTORE_SEED_FILE", ""),
	}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hris_console"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.Report = ReportConfig{
		OrphanPolicy: report.OrphanPolicy(getEnv("REPORT_ORPHAN_POLICY", string(report.KeepOrphans))),
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	u, err := url.Parse(c.DataStore.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("DATASTORE_URL must be an absolute URL, got %q", c.DataStore.URL)
	}
	if c.DataStore.Timeout < 0 {
		return fmt.Errorf("DATASTORE_TIMEOUT must not be negative")
	}
	if c.DataStore.Backend != BackendMemory && c.DataStore.Backend != BackendPostgres {
		return fmt.Errorf("DATASTORE_BACKEND must be %q or %q", BackendMemory, BackendPostgres)
	}
	if c.App.RefreshInterval < 0 {
		return fmt.Errorf("REFRESH_INTERVAL must not be negative")
	}
	if !c.Report.OrphanPolicy.IsValid() {
		return fmt.Errorf("REPORT_ORPHAN_POLICY must be %q or %q", report.KeepOrphans, report.DropOrphans)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.Database.User),
		url.QueryEscape(c.Database.Password),
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
