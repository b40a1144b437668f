// Package config assembles the service configuration from an optional YAML file
// and environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"noticeboard/internal/common/pagination"
	"noticeboard/internal/infra/db"
	envconfig "noticeboard/pkg/config"
)

// Store backends accepted by STORE_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config is the complete service configuration.
type Config struct {
	Server     ServerConfig      `yaml:"server"`
	Database   DatabaseConfig    `yaml:"database"`
	Pagination pagination.Config `yaml:"pagination"`
	RateLimit  RateLimitConfig   `yaml:"rate_limit"`
	Log        LogConfig         `yaml:"log"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
}

type DatabaseConfig struct {
	Backend string              `yaml:"backend"`
	URL     string              `yaml:"url"`
	Migrate bool                `yaml:"migrate"`
	Seed    bool                `yaml:"seed"`
	Pool    db.ConnectionConfig `yaml:"pool"`
}

// RateLimitConfig configures the per-client token bucket.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when neither file nor environment says otherwise.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Database: DatabaseConfig{
			Backend: BackendPostgres,
			Migrate: true,
			Pool:    db.DefaultConnectionConfig(),
		},
		Pagination: pagination.DefaultConfig(),
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     20,
			Burst:   40,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load builds the configuration in three layers: defaults, then the YAML file at
// path (skipped when path is empty), then environment variables.
// The path parameter is expected to come from a trusted source (command-line flag or env).
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- path is provided by trusted source (CLI arg or env), not user input
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Addr = envconfig.GetEnvString("HTTP_ADDR", c.Server.Addr)
	c.Server.ShutdownTimeout = envconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)

	c.Database.Backend = envconfig.GetEnvString("STORE_BACKEND", c.Database.Backend)
	c.Database.URL = envconfig.GetEnvString("DATABASE_URL", c.Database.URL)
	c.Database.Migrate = envconfig.GetEnvBool("DB_MIGRATE", c.Database.Migrate)
	c.Database.Seed = envconfig.GetEnvBool("DB_SEED", c.Database.Seed)
	c.Database.Pool = db.LoadConnectionConfig(c.Database.Pool)

	c.Pagination = pagination.LoadFromEnv(c.Pagination)

	c.RateLimit.Enabled = envconfig.GetEnvBool("RATE_LIMIT_ENABLED", c.RateLimit.Enabled)
	c.RateLimit.RPS = envconfig.GetEnvFloat64("RATE_LIMIT_RPS", c.RateLimit.RPS)
	c.RateLimit.Burst = envconfig.GetEnvInt("RATE_LIMIT_BURST", c.RateLimit.Burst)

	c.Log.Level = envconfig.GetEnvString("LOG_LEVEL", c.Log.Level)
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if err := envconfig.ValidatePositiveDuration(c.Server.ShutdownTimeout); err != nil {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout: %w", err))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes))
	}

	if err := envconfig.ValidateOneOf(c.Database.Backend, BackendPostgres, BackendMemory); err != nil {
		errs = append(errs, fmt.Errorf("database.backend: %w", err))
	}
	if c.Database.Backend == BackendPostgres && c.Database.URL == "" {
		errs = append(errs, errors.New("database.url (DATABASE_URL) is required for the postgres backend"))
	}

	if err := c.Pagination.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("pagination: %w", err))
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 {
			errs = append(errs, fmt.Errorf("rate_limit.rps must be positive, got %v", c.RateLimit.RPS))
		}
		if err := envconfig.ValidatePositiveInt(c.RateLimit.Burst); err != nil {
			errs = append(errs, fmt.Errorf("rate_limit.burst: %w", err))
		}
	}

	return errors.Join(errs...)
}

// RedactedURL returns the database URL with any password masked, for logging.
func (d DatabaseConfig) RedactedURL() string {
	u, err := url.Parse(d.URL)
	if err != nil || u.User == nil {
		return d.URL
	}
	return u.Redacted()
}
