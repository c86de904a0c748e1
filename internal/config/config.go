package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"lotteryfrontend.app/pkg/errors"
)

const (
	maxPortNumber = 65535
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Static    StaticConfig    `split_words:"true"`
	Log       LogConfig       `split_words:"true"`
	Metrics   MetricsConfig   `split_words:"true"`
	RateLimit RateLimitConfig `split_words:"true"`
}

type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"SERVER_PORT" default:"5000"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// Addr returns the listen address in host:port form
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StaticConfig describes where the prebuilt site lives
type StaticConfig struct {
	RootDir string `envconfig:"STATIC_ROOT_DIR" default:"./dist"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type MetricsConfig struct {
	Enabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

type RateLimitConfig struct {
	RPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"0"`
	Burst int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
}

// Enabled reports whether per-client rate limiting is switched on
func (r RateLimitConfig) Enabled() bool {
	return r.RPS > 0
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Static.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.RateLimit.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	if s.ReadTimeout <= 0 {
		return errors.NewConfigurationError("SERVER_READ_TIMEOUT must be positive", nil)
	}
	if s.WriteTimeout <= 0 {
		return errors.NewConfigurationError("SERVER_WRITE_TIMEOUT must be positive", nil)
	}
	if s.IdleTimeout <= 0 {
		return errors.NewConfigurationError("SERVER_IDLE_TIMEOUT must be positive", nil)
	}
	if s.ShutdownTimeout <= 0 {
		return errors.NewConfigurationError("SERVER_SHUTDOWN_TIMEOUT must be positive", nil)
	}
	return nil
}

// Validate makes RootDir absolute. A root that does not exist yet is accepted;
// lookups against it simply return not found.
func (s *StaticConfig) Validate() error {
	if strings.TrimSpace(s.RootDir) == "" {
		return errors.NewConfigurationError("STATIC_ROOT_DIR cannot be empty", nil)
	}

	abs, err := filepath.Abs(s.RootDir)
	if err != nil {
		return errors.NewConfigurationError("STATIC_ROOT_DIR cannot be resolved", err)
	}
	s.RootDir = abs

	info, err := os.Stat(abs)
	if err == nil && !info.IsDir() {
		return errors.NewConfigurationError("STATIC_ROOT_DIR must be a directory", nil)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	}
	return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
}

func (r *RateLimitConfig) Validate() error {
	if r.RPS < 0 {
		return errors.NewConfigurationError("RATE_LIMIT_RPS cannot be negative", nil)
	}
	if r.Enabled() && r.Burst < 1 {
		return errors.NewConfigurationError("RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled", nil)
	}
	return nil
}
