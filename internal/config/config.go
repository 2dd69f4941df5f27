// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Cache     CacheConfig     `yaml:"cache"`
	Events    EventsConfig    `yaml:"events"`
	Pricing   PricingConfig   `yaml:"pricing"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// CacheConfig defines the Redis shop settings cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	URL     string        `yaml:"url"` // redis://host:6379/0
	TTL     time.Duration `yaml:"ttl"`
}

// EventsConfig defines where estimate events go: NATS when enabled, and a
// Discord-compatible webhook when WebhookURL is set.
type EventsConfig struct {
	Enabled       bool          `yaml:"enabled"`
	URL           string        `yaml:"url"`
	SubjectPrefix string        `yaml:"subject_prefix"`
	Timeout       time.Duration `yaml:"timeout"`
	WebhookURL    string        `yaml:"webhook_url"`
}

// PricingConfig defines service-level pricing behavior. Shop-level rates and
// multiplier tables live with each shop, not here.
type PricingConfig struct {
	SurgePricing     bool    `yaml:"surge_pricing"`
	SurgeThreshold   float64 `yaml:"surge_threshold"`
	StrictValidation bool    `yaml:"strict_validation"`
	DefaultTechCount int     `yaml:"default_tech_count"`
}

// ScheduleConfig defines cron schedules.
type ScheduleConfig struct {
	MarketRefresh string `yaml:"market_refresh"` // cron spec, default @daily
}

// RateLimitConfig defines per-client API rate limiting.
type RateLimitConfig struct {
	Enabled   bool    `yaml:"enabled"`
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// TelemetryConfig defines OpenTelemetry export over OTLP/gRPC.
type TelemetryConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Endpoint       string        `yaml:"endpoint"`
	Insecure       bool          `yaml:"insecure"`
	ServiceName    string        `yaml:"service_name"`
	SampleRatio    float64       `yaml:"sample_ratio"`
	MetricInterval time.Duration `yaml:"metric_interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string        `yaml:"level"`  // debug, info, warn, error
	Format string        `yaml:"format"` // text, json
	File   LogFileConfig `yaml:"file"`
}

// LogFileConfig defines an optional rotated log file.
type LogFileConfig struct {
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyCacheDefaults(&cfg.Cache)
	applyEventsDefaults(&cfg.Events)
	applyPricingDefaults(&cfg.Pricing)
	applyScheduleDefaults(&cfg.Schedule)
	applyRateLimitDefaults(&cfg.RateLimit)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyCacheDefaults(c *CacheConfig) {
	if c.TTL == 0 {
		c.TTL = 10 * time.Minute
	}
}

func applyEventsDefaults(e *EventsConfig) {
	if e.SubjectPrefix == "" {
		e.SubjectPrefix = "inspection"
	}
	if e.Timeout == 0 {
		e.Timeout = 5 * time.Second
	}
}

func applyPricingDefaults(p *PricingConfig) {
	if p.SurgeThreshold == 0 {
		p.SurgeThreshold = 0.8
	}
	if p.DefaultTechCount == 0 {
		p.DefaultTechCount = 1
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.MarketRefresh == "" {
		s.MarketRefresh = "@daily"
	}
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 10
	}
	if r.Burst == 0 {
		r.Burst = 20
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "inspection-pricing"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
	if t.MetricInterval == 0 {
		t.MetricInterval = time.Minute
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
	if l.File.Path != "" {
		if l.File.MaxSizeMB == 0 {
			l.File.MaxSizeMB = 100
		}
		if l.File.MaxBackups == 0 {
			l.File.MaxBackups = 3
		}
		if l.File.MaxAgeDays == 0 {
			l.File.MaxAgeDays = 28
		}
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Cache.Enabled && cfg.Cache.URL == "" {
		errs = append(errs, fmt.Errorf("cache.url is required when cache is enabled"))
	}
	if cfg.Events.Enabled && cfg.Events.URL == "" {
		errs = append(errs, fmt.Errorf("events.url is required when events are enabled"))
	}

	if cfg.Pricing.SurgeThreshold <= 0 || cfg.Pricing.SurgeThreshold > 1 {
		errs = append(errs, fmt.Errorf(
			"pricing.surge_threshold must be in (0, 1] (got %g)", cfg.Pricing.SurgeThreshold,
		))
	}
	if cfg.Pricing.DefaultTechCount < 1 {
		errs = append(errs, fmt.Errorf("pricing.default_tech_count must be at least 1"))
	}

	if cfg.RateLimit.Enabled && cfg.RateLimit.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("rate_limit.per_second must be positive"))
	}

	if cfg.Telemetry.SampleRatio < 0 || cfg.Telemetry.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf(
			"telemetry.sample_ratio must be between 0 and 1 (got %g)", cfg.Telemetry.SampleRatio,
		))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf(
			"logging.format must be one of: text, json (got %q)", cfg.Logging.Format,
		))
	}

	return errors.Join(errs...)
}
