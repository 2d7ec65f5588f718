package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/crossref/internal/config"
	"github.com/aidanlsb/crossref/internal/ui"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage configured workspaces",
}

var workspaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured workspaces",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := loadGlobalConfigWithPath()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		workspaces := c.ListWorkspaces()

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"workspaces": workspaces,
				"default":    c.DefaultWorkspace,
			}, &Meta{Count: len(workspaces)})
			return nil
		}

		if len(workspaces) == 0 {
			fmt.Println("No workspaces configured")
			fmt.Println(ui.Hint("Add one under [workspaces] in " + config.DefaultPath()))
			return nil
		}

		names := make([]string, 0, len(workspaces))
		for name := range workspaces {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			marker := " "
			if name == c.DefaultWorkspace {
				marker = "*"
			}
			fmt.Printf("%s %s  %s\n", marker, name, ui.FilePath(workspaces[name]))
		}

		return nil
	},
}

var workspaceUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the active workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		c, cfgPath, err := loadGlobalConfigWithPath()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		if _, err := c.GetWorkspacePath(name); err != nil {
			return handleError(ErrWorkspaceNotFound, err, "Run 'xrf workspace list' to see configured workspaces")
		}

		statePath := config.ResolveStatePath(statePathFlag, cfgPath, c)
		state, err := config.LoadState(statePath)
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		state.ActiveWorkspace = name
		if err := config.SaveState(statePath, state); err != nil {
			return handleError(ErrInternal, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"active_workspace": name}, nil)
			return nil
		}
		fmt.Println(ui.Successf("active workspace set to '%s'", name))
		return nil
	},
}

func init() {
	workspaceCmd.AddCommand(workspaceListCmd)
	workspaceCmd.AddCommand(workspaceUseCmd)
	rootCmd.AddCommand(workspaceCmd)
}
