package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete tradedash configuration
type Config struct {
	Dashboard DashboardConfig `json:"dashboard" yaml:"dashboard"`
	Log       LogConfig       `json:"log" yaml:"log"`
	View      ViewConfig      `json:"view" yaml:"view"`
	Snapshot  SnapshotConfig  `json:"snapshot" yaml:"snapshot"`
}

// DashboardConfig locates the dashboard API
type DashboardConfig struct {
	BaseURL string `json:"base_url" yaml:"base_url"`
	Timeout string `json:"timeout" yaml:"timeout"` // e.g., "30s"
}

// ParseTimeout converts the timeout string to time.Duration
func (d DashboardConfig) ParseTimeout() (time.Duration, error) {
	if d.Timeout == "" {
		return 30 * time.Second, nil
	}
	return time.ParseDuration(d.Timeout)
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level       string `json:"level" yaml:"level"`
	Encoding    string `json:"encoding" yaml:"encoding"` // "json" or "console"
	Development bool   `json:"development" yaml:"development"`
}

// ViewConfig holds the initial view state
type ViewConfig struct {
	DefaultAccount string `json:"default_account" yaml:"default_account"` // "all" or an account id
	SortField      string `json:"sort_field" yaml:"sort_field"`
	SortDirection  string `json:"sort_direction" yaml:"sort_direction"`
}

// SnapshotConfig points at the local offline snapshot database
type SnapshotConfig struct {
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Dashboard.BaseURL == "" {
		return fmt.Errorf("dashboard.base_url is required")
	}
	u, err := url.Parse(c.Dashboard.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("dashboard.base_url must be an http(s) URL")
	}
	d, err := c.Dashboard.ParseTimeout()
	if err != nil {
		return fmt.Errorf("dashboard.timeout: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("dashboard.timeout must be positive")
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("log.encoding must be 'json' or 'console'")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	if c.View.DefaultAccount == "" {
		return fmt.Errorf("view.default_account is required (use 'all' for every account)")
	}
	if c.View.SortDirection != "asc" && c.View.SortDirection != "desc" {
		return fmt.Errorf("view.sort_direction must be 'asc' or 'desc'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Dashboard: DashboardConfig{
			BaseURL: "http://localhost:8080",
			Timeout: "30s",
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
		View: ViewConfig{
			DefaultAccount: "all",
			SortField:      "entry_datetime",
			SortDirection:  "desc",
		},
		Snapshot: SnapshotConfig{
			DBPath: "./tradedash.sqlite",
		},
	}
}
