package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if settings.Seed.Count != 1000 {
		t.Errorf("Expected seed count 1000, got %d", settings.Seed.Count)
	}
	if settings.Server.Addr() != "localhost:8080" {
		t.Errorf("Expected localhost:8080, got %s", settings.Server.Addr())
	}
	if time.Duration(settings.Server.SessionTimeout) != 30*time.Minute {
		t.Errorf("Expected 30m session timeout, got %v", time.Duration(settings.Server.SessionTimeout))
	}
	if !settings.History.Enabled {
		t.Error("Expected history enabled by default")
	}
}

func TestLoadSettings_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
seed:
  count: 5
  firstNames: [Ada, Grace]
  random: 99
server:
  port: 9090
  sessionTimeout: 2m
history:
  enabled: false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if settings.Seed.Count != 5 {
		t.Errorf("Expected seed count 5, got %d", settings.Seed.Count)
	}
	if len(settings.Seed.FirstNames) != 2 || settings.Seed.FirstNames[1] != "Grace" {
		t.Errorf("Unexpected first names: %v", settings.Seed.FirstNames)
	}
	if settings.Seed.Random != 99 {
		t.Errorf("Expected random seed 99, got %d", settings.Seed.Random)
	}
	if settings.Server.Host != "localhost" {
		t.Errorf("Expected default host, got %q", settings.Server.Host)
	}
	if settings.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", settings.Server.Port)
	}
	if time.Duration(settings.Server.SessionTimeout) != 2*time.Minute {
		t.Errorf("Expected 2m, got %v", time.Duration(settings.Server.SessionTimeout))
	}
	if settings.History.Enabled {
		t.Error("Expected history disabled")
	}
	if settings.Log.Level != "info" {
		t.Errorf("Expected default log level, got %q", settings.Log.Level)
	}
}

func TestLoadSettings_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "seed: [unclosed"},
		{"bad duration", "server:\n  sessionTimeout: soon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadSettings(path); err == nil {
				t.Error("Expected error but got nil")
			}
		})
	}
}

func TestInitializeAt_CreatesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".addressbook")
	if err := InitializeAt(dir); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if SettingsFile != filepath.Join(dir, "config.yaml") {
		t.Errorf("Unexpected settings path %s", SettingsFile)
	}
	if DatabasePath != filepath.Join(dir, "addressbook.db") {
		t.Errorf("Unexpected database path %s", DatabasePath)
	}

	settings, err := LoadSettings(SettingsFile)
	if err != nil {
		t.Fatalf("Failed to reload written settings: %v", err)
	}
	if settings.Server.Port != 8080 {
		t.Errorf("Expected port 8080 in written defaults, got %d", settings.Server.Port)
	}
}
