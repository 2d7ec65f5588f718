package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/crossref/internal/ui"
)

// CollisionJSON is the JSON representation of a short-name collision.
type CollisionJSON struct {
	Short string   `json:"short"`
	Paths []string `json:"paths"`
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report short-reference ambiguity in the workspace",
	Long: `Lists basenames shared by multiple target files. A short reference to
any of these names resolves to several candidates; use path-qualified
references to disambiguate.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := populatedCache(cmd.Context())
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		collisions := workspaceResolver(cache).Collisions()

		if isJSONOutput() {
			items := make([]CollisionJSON, len(collisions))
			for i, c := range collisions {
				items[i] = CollisionJSON{Short: c.Short, Paths: c.Paths}
			}
			outputSuccess(map[string]interface{}{"collisions": items}, &Meta{Count: len(items)})
			return nil
		}

		if len(collisions) == 0 {
			fmt.Println(ui.Success("no ambiguous short references"))
			return nil
		}

		fmt.Println(ui.Warningf("%d ambiguous short %s", len(collisions), plural(len(collisions), "reference", "references")))
		for _, c := range collisions {
			fmt.Printf("\n  %s\n", ui.RefTarget(c.Short))
			for _, p := range c.Paths {
				fmt.Printf("    %s\n", ui.FilePath(p))
			}
		}

		return nil
	},
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
