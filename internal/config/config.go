// Package config handles global Crossref configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global Crossref configuration.
type Config struct {
	// DefaultWorkspace is the name of the default workspace (from Workspaces).
	DefaultWorkspace string `toml:"default_workspace"`

	// Workspaces maps workspace names to root paths.
	Workspaces map[string]string `toml:"workspaces"`

	// StateFile optionally relocates state.toml (relative to the config dir
	// when not absolute).
	StateFile string `toml:"state_file"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// GetWorkspacePath returns the root path for a named workspace.
// If name is empty, the default workspace is used.
func (c *Config) GetWorkspacePath(name string) (string, error) {
	if name == "" {
		name = c.DefaultWorkspace
	}
	if name == "" {
		return "", fmt.Errorf("no default workspace configured")
	}
	if c.Workspaces != nil {
		if path, ok := c.Workspaces[name]; ok {
			return path, nil
		}
	}
	return "", fmt.Errorf("workspace '%s' not found in config", name)
}

// GetDefaultWorkspacePath returns the default workspace root.
func (c *Config) GetDefaultWorkspacePath() (string, error) {
	return c.GetWorkspacePath("")
}

// ListWorkspaces returns all configured workspaces with their paths.
func (c *Config) ListWorkspaces() map[string]string {
	result := make(map[string]string, len(c.Workspaces))
	for name, path := range c.Workspaces {
		result[name] = path
	}
	return result
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/crossref/config.toml first (XDG style),
// then falls back to the OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "crossref", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "crossref", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// CreateDefault creates a default config file if it doesn't exist.
func CreateDefault() (string, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil // Already exists
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := `# Crossref Configuration

# Default workspace name (must exist in [workspaces] below)
# default_workspace = "notes"

# Named workspaces
# [workspaces]
# notes = "/path/to/your/notes"
# work = "/path/to/work/notes"

# Optional UI accent color for headers/paths in terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
`

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}
