package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// LocalSettingsFile is looked up in the current directory before the global one
	LocalSettingsFile = "config.yaml"
)

var (
	// ConfigDir is the global configuration directory (~/.addressbook)
	ConfigDir string

	// SettingsFile is the global YAML settings file
	SettingsFile string

	// DatabasePath is the SQLite database file for the activity journal
	DatabasePath string

	// KeybindsFile holds user keybinding overrides for the terminal UI
	KeybindsFile string

	// LogFile receives log output while the terminal UI owns the screen
	LogFile string
)

// Initialize sets up the configuration directory and global paths
// It creates ~/.addressbook/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	return InitializeAt(filepath.Join(homeDir, ".addressbook"))
}

// InitializeAt is Initialize rooted at an explicit directory
func InitializeAt(dir string) error {
	ConfigDir = dir
	SettingsFile = filepath.Join(ConfigDir, "config.yaml")
	DatabasePath = filepath.Join(ConfigDir, "addressbook.db")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")
	LogFile = filepath.Join(ConfigDir, "addressbook.log")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	// Create a settings file with the defaults if it doesn't exist
	if _, err := os.Stat(SettingsFile); os.IsNotExist(err) {
		if err := SaveSettings(SettingsFile, DefaultSettings()); err != nil {
			return fmt.Errorf("failed to create settings file: %w", err)
		}
	}

	return nil
}

// LocalConfigExists checks if there's a local config.yaml
func LocalConfigExists() bool {
	_, err := os.Stat(LocalSettingsFile)
	return err == nil
}

// GetSettingsFilePath returns the settings file path (local or global)
func GetSettingsFilePath() string {
	if LocalConfigExists() {
		return LocalSettingsFile
	}
	return SettingsFile
}
