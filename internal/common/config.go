// Package common provides shared utilities for finmap-mcp
package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for finmap-mcp
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Finmap      FinmapConfig  `toml:"finmap"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// FinmapConfig holds finmap.org dataset client configuration
type FinmapConfig struct {
	DataBaseURL  string `toml:"data_base_url"`  // raw dataset host
	ChartBaseURL string `toml:"chart_base_url"` // interactive chart host
	RateLimit    int    `toml:"rate_limit"`     // requests per second
	Timeout      string `toml:"timeout"`
	CacheSize    int    `toml:"cache_size"` // snapshots kept in the LRU cache
	CacheTTL     string `toml:"cache_ttl"`  // freshness window for same-day snapshots
}

// GetTimeout parses and returns the timeout duration
func (c *FinmapConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// GetCacheTTL parses and returns the same-day snapshot freshness window
func (c *FinmapConfig) GetCacheTTL() time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return time.Hour
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Finmap: FinmapConfig{
			DataBaseURL:  "https://raw.githubusercontent.com/finmap-org",
			ChartBaseURL: "https://finmap.org",
			RateLimit:    10,
			Timeout:      "30s",
			CacheSize:    64,
			CacheTTL:     "1h",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("FINMAP_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("FINMAP_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("FINMAP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("FINMAP_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if url := os.Getenv("FINMAP_DATA_BASE_URL"); url != "" {
		config.Finmap.DataBaseURL = url
	}

	if url := os.Getenv("FINMAP_CHART_BASE_URL"); url != "" {
		config.Finmap.ChartBaseURL = url
	}

	if size := os.Getenv("FINMAP_CACHE_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil {
			config.Finmap.CacheSize = n
		}
	}
}
