package config

import (
	"fmt"
	"os"
	"time"

	"github.com/studiowebux/addressbook/internal/contacts"
	"gopkg.in/yaml.v3"
)

// Settings is the user-editable configuration
type Settings struct {
	Seed    SeedSettings    `yaml:"seed"`
	Server  ServerSettings  `yaml:"server"`
	History HistorySettings `yaml:"history"`
	Log     LogSettings     `yaml:"log"`
}

// SeedSettings controls the generated contacts of a new session
type SeedSettings struct {
	Count      int      `yaml:"count"`
	FirstNames []string `yaml:"firstNames,omitempty"`
	LastNames  []string `yaml:"lastNames,omitempty"`
	Random     int64    `yaml:"random,omitempty"` // fixed random seed, 0 = time based
}

// ServerSettings configures the browser UI
type ServerSettings struct {
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	SessionTimeout Duration `yaml:"sessionTimeout"`
}

// Addr returns host:port
func (s ServerSettings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// HistorySettings toggles the activity journal
type HistorySettings struct {
	Enabled bool `yaml:"enabled"`
}

// LogSettings configures logrus
type LogSettings struct {
	Level string `yaml:"level"`
}

// Duration is a time.Duration written as "30m" in YAML
type Duration time.Duration

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// DefaultSettings returns the built-in configuration
func DefaultSettings() Settings {
	return Settings{
		Seed: SeedSettings{
			Count: contacts.DefaultSeedCount,
		},
		Server: ServerSettings{
			Host:           "localhost",
			Port:           8080,
			SessionTimeout: Duration(30 * time.Minute),
		},
		History: HistorySettings{
			Enabled: true,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// LoadSettings reads settings from path, filling unset values with defaults.
// A missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	if settings.Seed.Count < 0 {
		settings.Seed.Count = 0
	}
	if settings.Server.Host == "" {
		settings.Server.Host = "localhost"
	}
	if settings.Server.Port == 0 {
		settings.Server.Port = 8080
	}
	if settings.Server.SessionTimeout <= 0 {
		settings.Server.SessionTimeout = Duration(30 * time.Minute)
	}
	if settings.Log.Level == "" {
		settings.Log.Level = "info"
	}

	return settings, nil
}

// Load reads the settings from the local or global settings file
func Load() (Settings, error) {
	return LoadSettings(GetSettingsFilePath())
}

// SaveSettings writes settings as YAML
func SaveSettings(path string, settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
