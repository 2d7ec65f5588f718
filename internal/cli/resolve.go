package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/crossref/internal/ui"
)

// ResolveJSON is the JSON representation of a resolution result.
type ResolveJSON struct {
	Ref        string   `json:"ref"`
	Path       string   `json:"path,omitempty"`
	Ambiguous  bool     `json:"ambiguous"`
	Candidates []string `json:"candidates,omitempty"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <ref>",
	Short: "Resolve a reference to its target file(s)",
	Long: `Resolves a written reference to candidate target files.

Long refs (containing '/') resolve by workspace-relative path. Short refs
resolve by basename and may be ambiguous; all candidates are listed and
the caller decides.

Examples:
  xrf resolve notes/alice
  xrf resolve alice
  xrf resolve "My Note" --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := args[0]

		cache, err := populatedCache(cmd.Context())
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		result := workspaceResolver(cache).Resolve(ref)

		if isJSONOutput() {
			if len(result.Matches) == 0 {
				outputError(ErrRefNotFound, fmt.Sprintf("reference '%s' does not resolve to any file", ref), nil,
					"Check the spelling, or run 'xrf cache' to see what is enumerated")
				return nil
			}
			outputSuccess(ResolveJSON{
				Ref:        ref,
				Path:       result.Path,
				Ambiguous:  result.Ambiguous,
				Candidates: result.Matches,
			}, &Meta{Count: len(result.Matches)})
			return nil
		}

		switch {
		case len(result.Matches) == 0:
			return handleErrorMsg(ErrRefNotFound,
				fmt.Sprintf("reference '%s' does not resolve to any file", ref), "")
		case result.Ambiguous:
			fmt.Println(ui.Warningf("'%s' is ambiguous %s", ref, ui.Count(len(result.Matches), "candidate", "candidates")))
			for _, m := range result.Matches {
				fmt.Printf("  %s\n", ui.FilePath(m))
			}
		default:
			fmt.Printf("%s → %s\n", ui.RefTarget(ref), ui.FilePath(result.Path))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
