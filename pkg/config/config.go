package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/sucrim/servicekit/pkg/api/dto"
	"github.com/sucrim/servicekit/pkg/apperrors"
	"github.com/sucrim/servicekit/pkg/dateutil"
)

// EnvPrefix is prepended to every environment override, e.g. SERVICEKIT_DATETIME_ZONE
const EnvPrefix = "SERVICEKIT"

// Config holds the settings a service needs to use this library
type Config struct {
	Server     ServerConfig     `yaml:"server"     envconfig:"SERVER"`
	Logging    LoggingConfig    `yaml:"logging"    envconfig:"LOGGING"`
	DateTime   DateTimeConfig   `yaml:"datetime"   envconfig:"DATETIME"`
	Pagination PaginationConfig `yaml:"pagination" envconfig:"PAGINATION"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// ServerConfig configures the example HTTP service
type ServerConfig struct {
	Addr string `yaml:"addr" envconfig:"ADDR"`
	Mode string `yaml:"mode" envconfig:"MODE"`
}

// LoggingConfig configures the logrus logger
type LoggingConfig struct {
	Level  string `yaml:"level"  envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

// DateTimeConfig selects the fixed civil zone
type DateTimeConfig struct {
	Zone string `yaml:"zone" envconfig:"ZONE"`
}

// PaginationConfig bounds page sizes accepted from requests
type PaginationConfig struct {
	DefaultSize int `yaml:"default_size" envconfig:"DEFAULT_SIZE"`
	MaxSize     int `yaml:"max_size"     envconfig:"MAX_SIZE"`
}

// RateLimitConfig configures per-client request limits
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"rps"   envconfig:"RPS"`
	Burst             int     `yaml:"burst" envconfig:"BURST"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
			Mode: "release",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		DateTime: DateTimeConfig{
			Zone: dateutil.DefaultZone,
		},
		Pagination: PaginationConfig{
			DefaultSize: dto.DefaultPageSize,
			MaxSize:     dto.MaxPageSize,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             20,
		},
	}
}

// Parse overlays YAML bytes on the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load builds a config from defaults, then the YAML file at path (skipped
// when path is empty or the file does not exist), then a .env file and
// SERVICEKIT_* environment variables.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
			}
		}
	}

	// .env is optional
	_ = godotenv.Load()

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the zone resolves, the gin mode is known and the numeric bounds hold
func (c *Config) Validate() error {
	if _, err := dateutil.LoadZone(c.DateTime.Zone); err != nil {
		return fmt.Errorf("datetime.zone: %w", err)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: server.mode must be debug, release or test, got %q", apperrors.ErrInvalidArgument, c.Server.Mode)
	}
	if c.Pagination.DefaultSize <= 0 {
		return fmt.Errorf("%w: pagination.default_size must be > 0", apperrors.ErrInvalidArgument)
	}
	if c.Pagination.MaxSize < c.Pagination.DefaultSize {
		return fmt.Errorf("%w: pagination.max_size must be >= default_size", apperrors.ErrInvalidArgument)
	}
	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("%w: rate_limit.rps and rate_limit.burst must be > 0", apperrors.ErrInvalidArgument)
	}
	return nil
}

// Converter builds a dateutil.Converter for the configured zone
func (c *Config) Converter(logger logrus.FieldLogger, opts ...dateutil.Option) (*dateutil.Converter, error) {
	base := []dateutil.Option{dateutil.WithZone(c.DateTime.Zone)}
	if logger != nil {
		base = append(base, dateutil.WithLogger(logger))
	}
	return dateutil.New(append(base, opts...)...)
}
