// Package config holds the coursecal configuration file and the paths
// for credentials and tokens under ~/.config/coursecal.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// CalendarID is the Google Calendar events are written to.
	// Defaults to "primary".
	CalendarID string `yaml:"calendar_id"`

	// Timezone is the IANA zone the extracted wall-clock times are
	// interpreted in (e.g. "America/Chicago").
	Timezone string `yaml:"timezone"`

	// APIEndpoint overrides the Calendar API base URL; used for
	// testing against a mock server.
	APIEndpoint string `yaml:"api_endpoint,omitempty"`

	// CredentialsPath is the OAuth client secret file. Empty means
	// the default under the config directory.
	CredentialsPath string `yaml:"credentials_path,omitempty"`

	// ServiceAccountPath is the service account key file for
	// non-interactive use. When the file exists it takes precedence
	// over the OAuth flow.
	ServiceAccountPath string `yaml:"service_account_path,omitempty"`

	// TokenPath is where the OAuth token is cached.
	TokenPath string `yaml:"token_path,omitempty"`
}

// Default returns the in-memory default configuration.
func Default() *Config {
	return &Config{
		CalendarID: "primary",
		Timezone:   "America/Chicago",
	}
}

// Load reads the YAML config at path, or the default location when
// path is empty. A missing file yields the defaults rather than an
// error; first runs shouldn't require setup before export works.
func Load(path string) (*Config, error) {
	if path == "" {
		defaultPath, err := GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = Default().Timezone
	}
	return cfg, nil
}
