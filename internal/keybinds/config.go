package keybinds

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Config represents the user's keybinding configuration. Each section maps
// an action to a comma separated list of keys, e.g. "navigate_up": "up,k".
type Config struct {
	Version string            `json:"version"`
	Global  map[string]string `json:"global,omitempty"`
	Normal  map[string]string `json:"normal,omitempty"`
	Search  map[string]string `json:"search,omitempty"`
	Editor  map[string]string `json:"editor,omitempty"`
	Confirm map[string]string `json:"confirm,omitempty"`
	Help    map[string]string `json:"help,omitempty"`
}

// sections maps each context to its config section
func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal:  c.Global,
		ContextNormal:  c.Normal,
		ContextSearch:  c.Search,
		ContextEditor:  c.Editor,
		ContextConfirm: c.Confirm,
		ContextHelp:    c.Help,
	}
}

// LoadConfig loads keybinding configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}

	return &config, nil
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SplitKeys parses a comma separated key list. A lone "," is the comma key.
func SplitKeys(keys string) []string {
	if keys == "," {
		return []string{","}
	}
	var out []string
	for _, key := range strings.Split(keys, ",") {
		if key = strings.TrimSpace(key); key != "" {
			out = append(out, key)
		}
	}
	return out
}

// ApplyConfig applies user configuration to a registry.
// A configured action replaces that action's default keys in its context.
func ApplyConfig(registry *Registry, config *Config) error {
	for context, bindings := range config.sections() {
		for actionStr, keys := range bindings {
			action := Action(actionStr)
			if !IsKnownAction(action) {
				return fmt.Errorf("unknown action %q in %s keybindings", actionStr, context)
			}
			parsed := SplitKeys(keys)
			for _, key := range parsed {
				if err := ValidateKey(key); err != nil {
					return fmt.Errorf("invalid key for %s in %s keybindings: %w", actionStr, context, err)
				}
			}
			registry.Unbind(context, action)
			registry.RegisterMultiple(context, parsed, action)
		}
	}
	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	if _, err := os.Stat(configPath); err == nil {
		config, err := LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
		}

		if err := ApplyConfig(registry, config); err != nil {
			return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
		}
	}

	return registry, nil
}

// ExportConfig converts a registry back into the config file layout
func ExportConfig(registry *Registry) *Config {
	config := &Config{
		Version: "1.0",
		Global:  map[string]string{},
		Normal:  map[string]string{},
		Search:  map[string]string{},
		Editor:  map[string]string{},
		Confirm: map[string]string{},
		Help:    map[string]string{},
	}

	for context, section := range config.sections() {
		byAction := make(map[Action][]string)
		for key, action := range registry.bindings[context] {
			byAction[action] = append(byAction[action], key)
		}
		for action, keys := range byAction {
			sort.Strings(keys)
			section[string(action)] = strings.Join(keys, ",")
		}
	}

	return config
}

// CreateExampleConfig writes the default bindings to path
func CreateExampleConfig(path string) error {
	return SaveConfig(ExportConfig(NewDefaultRegistry()), path)
}
