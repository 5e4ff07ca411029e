package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CalendarID != "primary" {
		t.Errorf("expected default calendar 'primary', got %q", cfg.CalendarID)
	}
	if cfg.Timezone != "America/Chicago" {
		t.Errorf("expected default timezone, got %q", cfg.Timezone)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "calendar_id: courses@example.com\ntimezone: America/New_York\napi_endpoint: http://localhost:9999\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CalendarID != "courses@example.com" {
		t.Errorf("unexpected calendar id %q", cfg.CalendarID)
	}
	if cfg.Timezone != "America/New_York" {
		t.Errorf("unexpected timezone %q", cfg.Timezone)
	}
	if cfg.APIEndpoint != "http://localhost:9999" {
		t.Errorf("unexpected endpoint %q", cfg.APIEndpoint)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("calendar_id: courses@example.com\n"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Timezone != "America/Chicago" {
		t.Errorf("expected default timezone to survive partial config, got %q", cfg.Timezone)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("calendar_id: [unclosed"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
