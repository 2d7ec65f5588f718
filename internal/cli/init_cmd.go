package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/crossref/internal/config"
	"github.com/aidanlsb/crossref/internal/ui"
)

const sampleWorkspaceConfig = `# Crossref workspace configuration

# Keep target extensions in extracted refs ([[note.md]] instead of [[note]]).
# preserve_extension: false

# Override the recognized image extensions (leading dot required).
# image_extensions:
#   - .png
#   - .jpg

# Refresh files changed since the last reindex before index-backed queries.
# auto_reindex: true
`

var initCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Create a new workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if _, err := os.Stat(filepath.Join(path, config.WorkspaceConfigFile)); err == nil {
			return handleErrorMsg(ErrFileExists,
				fmt.Sprintf("workspace already initialized: %s", path), "")
		}

		if err := os.MkdirAll(path, 0755); err != nil {
			return handleError(ErrInternal, err, "")
		}
		if err := os.WriteFile(filepath.Join(path, config.WorkspaceConfigFile), []byte(sampleWorkspaceConfig), 0644); err != nil {
			return handleError(ErrInternal, err, "")
		}

		// Make sure a global config exists so the workspace can be registered.
		cfgPath, err := config.CreateDefault()
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"workspace_path": path,
				"config_path":    cfgPath,
			}, nil)
			return nil
		}

		fmt.Println(ui.Successf("initialized workspace at %s", path))
		fmt.Println(ui.Hint(fmt.Sprintf("Add it to [workspaces] in %s to reference it by name", cfgPath)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
