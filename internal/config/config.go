package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents deployment environments.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the schedule service configuration. Environment variables
// are parsed from the SCHEDAX_ prefix, e.g. SCHEDAX_HTTP_PORT.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// KV driver: memory | sqlite | postgres, or "auto" to derive from the
	// other settings.
	KVDriver string `envconfig:"KV_DRIVER" default:"auto"`

	// SQLite file path (sqlite driver).
	SQLitePath string `envconfig:"SQLITE_PATH" default:"data/schedax.db"`

	// Postgres DSN (postgres driver).
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Weekly study capacity in hours used by the free-hours derivation.
	WeeklyCapacityHours float64 `envconfig:"WEEKLY_CAPACITY_HOURS" default:"84"`

	// Health checking
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"2"`
}

// ResolveDefaults validates the driver selection and derives it when set to
// "auto": a configured Postgres DSN wins, otherwise the SQLite file is used.
func (c *Config) ResolveDefaults() error {
	if c.KVDriver == "" || c.KVDriver == "auto" {
		if c.PostgresDSN != "" {
			c.KVDriver = "postgres"
		} else {
			c.KVDriver = "sqlite"
		}
	}

	switch c.KVDriver {
	case "memory", "sqlite":
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("postgres driver selected but SCHEDAX_POSTGRES_DSN is empty")
		}
	default:
		return fmt.Errorf("unsupported KV_DRIVER: %s", c.KVDriver)
	}

	if c.WeeklyCapacityHours <= 0 {
		return fmt.Errorf("WEEKLY_CAPACITY_HOURS must be positive, got %v", c.WeeklyCapacityHours)
	}
	return nil
}

// New creates a Config from SCHEDAX_-prefixed environment variables.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("SCHEDAX", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("kv_driver", cfg.KVDriver).
		Int("http_port", cfg.HTTPPort).
		Float64("weekly_capacity_hours", cfg.WeeklyCapacityHours).
		Bool("postgres_dsn_present", cfg.PostgresDSN != "").
		Msg("configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config suitable for tests: in-memory store, no
// external dependencies.
func NewForTesting() *Config {
	return &Config{
		Environment:               EnvTesting,
		KVDriver:                  "memory",
		HTTPPort:                  8080,
		WeeklyCapacityHours:       84,
		HealthIntervalSeconds:     1,
		HealthProbeTimeoutSeconds: 1,
	}
}

// IsTesting returns true when the environment is testing.
func (c *Config) IsTesting() bool { return c.Environment == EnvTesting }

// IsProduction returns true when the environment is production.
func (c *Config) IsProduction() bool { return c.Environment == EnvProduction }

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string { return fmt.Sprintf(":%d", c.HTTPPort) }
