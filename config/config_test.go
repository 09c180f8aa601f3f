package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:8080", cfg.Dashboard.BaseURL)
	assert.Equal(t, "all", cfg.View.DefaultAccount)
	assert.Equal(t, "desc", cfg.View.SortDirection)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func(mut func(*Config)) *Config {
		c := Default()
		mut(c)
		return c
	}

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			config:  Default(),
			wantErr: false,
		},
		{
			name:    "missing base url",
			config:  valid(func(c *Config) { c.Dashboard.BaseURL = "" }),
			wantErr: true,
			errMsg:  "dashboard.base_url is required",
		},
		{
			name:    "base url without scheme",
			config:  valid(func(c *Config) { c.Dashboard.BaseURL = "localhost:8080" }),
			wantErr: true,
			errMsg:  "dashboard.base_url must be an http(s) URL",
		},
		{
			name:    "bad timeout",
			config:  valid(func(c *Config) { c.Dashboard.Timeout = "soon" }),
			wantErr: true,
			errMsg:  "dashboard.timeout",
		},
		{
			name:    "negative timeout",
			config:  valid(func(c *Config) { c.Dashboard.Timeout = "-5s" }),
			wantErr: true,
			errMsg:  "dashboard.timeout must be positive",
		},
		{
			name:    "unknown encoding",
			config:  valid(func(c *Config) { c.Log.Encoding = "xml" }),
			wantErr: true,
			errMsg:  "log.encoding",
		},
		{
			name:    "unknown level",
			config:  valid(func(c *Config) { c.Log.Level = "chatty" }),
			wantErr: true,
			errMsg:  "log.level",
		},
		{
			name:    "missing default account",
			config:  valid(func(c *Config) { c.View.DefaultAccount = "" }),
			wantErr: true,
			errMsg:  "view.default_account is required",
		},
		{
			name:    "bad sort direction",
			config:  valid(func(c *Config) { c.View.SortDirection = "up" }),
			wantErr: true,
			errMsg:  "view.sort_direction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Dashboard.BaseURL = "https://journal.example.com"
			cfg.View.DefaultAccount = "ACC-1"
			path := filepath.Join(tmpDir, "test"+tt.ext)

			err := cfg.SaveToFile(path)
			require.NoError(t, err)

			_, err = os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)

			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dashboard:\n  base_url: https://example.com\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", cfg.Dashboard.BaseURL)
	assert.Equal(t, "30s", cfg.Dashboard.Timeout)
	assert.Equal(t, "entry_datetime", cfg.View.SortField)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  encoding: xml\n"), 0644))
	_, err = LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		timeout  string
		expected time.Duration
		wantErr  bool
	}{
		{"10s", 10 * time.Second, false},
		{"2m", 2 * time.Minute, false},
		{"", 30 * time.Second, false},
		{"invalid", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.timeout, func(t *testing.T) {
			d, err := DashboardConfig{Timeout: tt.timeout}.ParseTimeout()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, d)
			}
		})
	}
}
