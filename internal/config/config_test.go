package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestLoad_Defaults tests configuration without any config file
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ServiceURL != defaultServiceURL {
		t.Errorf("ServiceURL = %q, want %q", cfg.ServiceURL, defaultServiceURL)
	}
	if cfg.Timeout != 0 {
		t.Errorf("Timeout = %v, want 0", cfg.Timeout)
	}
}

// TestLoad_FromFile tests reading an explicit config file
func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "service-url: https://matcher.example.com\ntimeout: 90s\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ServiceURL != "https://matcher.example.com" {
		t.Errorf("ServiceURL = %q, want value from file", cfg.ServiceURL)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", cfg.Timeout)
	}
}

// TestLoad_MissingExplicitFile tests that a named but absent file fails
func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load() expected error for missing explicit config file")
	}
}

// TestLoad_EnvOverride tests environment variable overrides
func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CVMATCH_SERVICE_URL", "https://env.example.com")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ServiceURL != "https://env.example.com" {
		t.Errorf("ServiceURL = %q, want env override", cfg.ServiceURL)
	}
}
