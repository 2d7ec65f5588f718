package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WorkspaceConfigFile is the per-workspace config filename.
const WorkspaceConfigFile = "crossref.yaml"

// WorkspaceConfig represents workspace-level configuration from crossref.yaml.
type WorkspaceConfig struct {
	// PreserveExtension keeps target extensions in extracted refs
	// ([[note.md]] instead of [[note]]). Default: false.
	PreserveExtension bool `yaml:"preserve_extension,omitempty"`

	// ImageExtensions overrides the recognized image extension set.
	// Entries must include the leading dot. Empty means the default set.
	ImageExtensions []string `yaml:"image_extensions,omitempty"`

	// AutoReindex makes index-reading commands refresh files changed
	// since the last reindex before querying (default: true).
	AutoReindex *bool `yaml:"auto_reindex,omitempty"`
}

// IsAutoReindexEnabled reports whether auto-reindex is on (default true).
func (wc *WorkspaceConfig) IsAutoReindexEnabled() bool {
	if wc == nil || wc.AutoReindex == nil {
		return true
	}
	return *wc.AutoReindex
}

// LoadWorkspaceConfig loads crossref.yaml from a workspace root.
// Returns nil (not an error) when the file does not exist.
func LoadWorkspaceConfig(workspacePath string) (*WorkspaceConfig, error) {
	path := filepath.Join(workspacePath, WorkspaceConfigFile)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", WorkspaceConfigFile, err)
	}

	var cfg WorkspaceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", WorkspaceConfigFile, err)
	}
	return &cfg, nil
}
