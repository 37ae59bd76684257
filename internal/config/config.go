// Package config loads application configuration from a YAML file and
// environment variables. Precedence: environment variables override the
// config file, which overrides defaults; command line flags are applied by
// the caller on top via environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration for the status service.
	Server struct {
		Port            string        `yaml:"port"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`

	// Logging configuration.
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`

	// Emby upstream configuration.
	Emby struct {
		URL   string `yaml:"url"`
		Token string `yaml:"token"`
	} `yaml:"emby"`

	// Refresh intervals handed to front-end pollers via /api/config.
	Refresh struct {
		Processing time.Duration `yaml:"processing"`
		Status     time.Duration `yaml:"status"`
	} `yaml:"refresh"`
}

// Load reads configuration from the given file (optional) and the
// environment.
func Load(configFile string) (*Config, error) {
	cfg := &Config{}

	// Defaults.
	cfg.Server.Port = "5000"
	cfg.Server.ShutdownTimeout = 10 * time.Second
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
	cfg.Emby.URL = "http://localhost:8096"
	cfg.Refresh.Processing = 5 * time.Second
	cfg.Refresh.Status = 30 * time.Second

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	loadFromEnv(cfg)

	return cfg, nil
}

// Validate checks the startup preconditions. A missing Emby credential is
// fatal: the process must stop before any request is attempted.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Emby.URL) == "" {
		return fmt.Errorf("EMBY_SERVER_URL is not set")
	}
	if strings.TrimSpace(c.Emby.Token) == "" {
		return fmt.Errorf("EMBY_API_KEY is not set; generate one under Emby Dashboard -> Advanced -> API Keys")
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := getEnv("EMBY_SERVER_URL", ""); v != "" {
		cfg.Emby.URL = v
	}
	if v := getEnv("EMBY_API_KEY", ""); v != "" {
		cfg.Emby.Token = v
	}
	if v := getEnv("PORT", ""); v != "" {
		cfg.Server.Port = v
	}
	if d := getDurationFromEnv("SHUTDOWN_TIMEOUT"); d > 0 {
		cfg.Server.ShutdownTimeout = d
	}
	if v := getEnv("LOG_LEVEL", ""); v != "" {
		cfg.Logging.Level = v
	}
	if v := getEnv("LOG_FORMAT", ""); v != "" {
		cfg.Logging.Format = v
	}
	if d := getDurationFromEnv("PROCESSING_REFRESH_INTERVAL"); d > 0 {
		cfg.Refresh.Processing = d
	}
	if d := getDurationFromEnv("STATUS_REFRESH_INTERVAL"); d > 0 {
		cfg.Refresh.Status = d
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDurationFromEnv(key string) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return 0
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}
