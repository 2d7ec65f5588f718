// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/crossref/internal/config"
	"github.com/aidanlsb/crossref/internal/paths"
	"github.com/aidanlsb/crossref/internal/ui"
)

var (
	// Global flags
	workspaceName     string // Named workspace from config
	workspacePathFlag string // Explicit path (rare)
	configPath        string
	statePathFlag     string

	// Resolved values
	resolvedWorkspacePath string
	resolvedConfigPath    string
	resolvedStatePath     string
	cfg                   *config.Config
	workspaceCfg          *config.WorkspaceConfig
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "xrf",
	Short: "Crossref - wiki-reference resolution for markdown workspaces",
	Long: `Crossref resolves wiki-style cross-references ([[target]], [[target|label]])
across a workspace of markdown documents: it finds every location where a
file is referenced, resolves short references to candidate targets, and
keeps a persistent backlink index for fast queries.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip workspace resolution for commands that don't need one
		switch cmd.Name() {
		case "init", "workspace", "completion", "help", "version":
			return nil
		}
		if cmd.Parent() != nil && (cmd.Parent().Name() == "completion" || cmd.Parent().Name() == "workspace") {
			return nil
		}

		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg == nil {
			cfg = &config.Config{}
		}
		resolvedStatePath = config.ResolveStatePath(statePathFlag, resolvedConfigPath, cfg)
		ui.ConfigureTheme(cfg.UI.Accent)

		// Resolve workspace path: explicit path > named workspace > active state > default
		if workspacePathFlag != "" {
			resolvedWorkspacePath = workspacePathFlag
		} else if workspaceName != "" {
			resolvedWorkspacePath, err = cfg.GetWorkspacePath(workspaceName)
			if err != nil {
				return fmt.Errorf("workspace '%s' not found\n\nRun 'xrf workspace list' to see configured workspaces", workspaceName)
			}
		} else {
			state, stateErr := config.LoadState(resolvedStatePath)
			if stateErr != nil {
				return fmt.Errorf("failed to load state: %w", stateErr)
			}

			activeName := strings.TrimSpace(state.ActiveWorkspace)
			if activeName != "" {
				resolvedWorkspacePath, err = cfg.GetWorkspacePath(activeName)
				if err != nil {
					resolvedWorkspacePath, err = cfg.GetDefaultWorkspacePath()
					if err != nil {
						return fmt.Errorf("active workspace '%s' not found in config and no default workspace configured\n\nRun 'xrf workspace use <name>' or set default_workspace in config.toml", activeName)
					}
					if !jsonOutput {
						fmt.Fprintf(os.Stderr, "warning: active workspace '%s' not found in config, falling back to default\n", activeName)
					}
				}
			} else {
				resolvedWorkspacePath, err = cfg.GetDefaultWorkspacePath()
				if err != nil {
					return fmt.Errorf(`no workspace specified

Either:
  1. Use --workspace <name> (from config)
  2. Use --workspace-path /path/to/workspace
  3. Run 'xrf workspace use <name>' to set active_workspace in state.toml
  4. Set default_workspace in ~/.config/crossref/config.toml
  5. Run 'xrf init /path/to/new/workspace' to create one`)
				}
			}
		}

		// Verify workspace exists
		if _, err := os.Stat(resolvedWorkspacePath); os.IsNotExist(err) {
			return fmt.Errorf("workspace not found: %s\n\nRun 'xrf init %s' to create it", resolvedWorkspacePath, resolvedWorkspacePath)
		}

		// Workspace-level config feeds the parser and cache.
		workspaceCfg, err = config.LoadWorkspaceConfig(resolvedWorkspacePath)
		if err != nil {
			return err
		}
		if workspaceCfg != nil && len(workspaceCfg.ImageExtensions) > 0 {
			paths.ImageExts = workspaceCfg.ImageExtensions
		}

		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	path := config.ResolveConfigPath(configPath)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &config.Config{}, path, nil
	}
	c, err := config.LoadFrom(path)
	return c, path, err
}

// getWorkspacePath returns the resolved workspace root for the current invocation.
func getWorkspacePath() string {
	return resolvedWorkspacePath
}

// preserveExtension reports whether extracted refs keep their extension.
func preserveExtension() bool {
	return workspaceCfg != nil && workspaceCfg.PreserveExtension
}

// autoReindexEnabled reports whether index-reading commands refresh stale
// files before querying (crossref.yaml auto_reindex, default true).
func autoReindexEnabled() bool {
	return workspaceCfg.IsAutoReindexEnabled()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspaceName, "workspace", "w", "", "named workspace from config")
	rootCmd.PersistentFlags().StringVar(&workspacePathFlag, "workspace-path", "", "explicit workspace path")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&statePathFlag, "state-file", "", "state file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
}
