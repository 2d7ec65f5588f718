package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/crossref/internal/parser"
	"github.com/aidanlsb/crossref/internal/paths"
	"github.com/aidanlsb/crossref/internal/ui"
	"github.com/aidanlsb/crossref/internal/wikilink"
)

// ExtractedRefJSON is the JSON representation of one extracted reference.
type ExtractedRefJSON struct {
	Ref   string `json:"ref"`
	Label string `json:"label,omitempty"`
	Raw   string `json:"raw"`
	Line  int    `json:"line"`
	Kind  string `json:"kind"`
}

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "List the references a document makes",
	Long: `Parses a workspace document and lists every wiki reference in it,
normalized the way the resolver sees them. Path-qualified targets are
reported as long refs, bare filenames as short refs. References inside
code blocks are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rel := paths.TrimLeadingSlash(paths.NormalizeSlashes(args[0]))

		cache, err := populatedCache(cmd.Context())
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		content, err := cache.ReadFile(rel)
		if err != nil {
			return handleError(ErrFileNotFound, err, "")
		}

		refs, err := parser.ExtractRefs(content)
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		preserve := preserveExtension()
		items := make([]ExtractedRefJSON, 0, len(refs))
		for _, r := range refs {
			raw := r.Target
			if r.Label != "" {
				raw += "|" + r.Label
			}

			kind := "short"
			extracted := wikilink.ExtractShortRef(raw, preserve)
			if paths.IsLongRef(r.Target) {
				kind = "long"
				extracted = wikilink.ExtractLongRef("", raw, preserve)
			}

			ref := r.Target
			label := r.Label
			if extracted != nil {
				ref = extracted.Ref
				label = extracted.Label
			}

			items = append(items, ExtractedRefJSON{
				Ref:   ref,
				Label: label,
				Raw:   r.Target,
				Line:  r.Line,
				Kind:  kind,
			})
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"path": rel,
				"refs": items,
			}, &Meta{Count: len(items)})
			return nil
		}

		if len(items) == 0 {
			fmt.Printf("%s has no references\n", ui.FilePath(rel))
			return nil
		}

		fmt.Println(ui.Header(fmt.Sprintf("%s (%d %s)", rel, len(items), plural(len(items), "ref", "refs"))))
		for _, it := range items {
			line := fmt.Sprintf("  %s %s %s", ui.Muted.Render(fmt.Sprintf("%4d", it.Line)), it.Kind, ui.RefTarget(it.Ref))
			if it.Label != "" {
				line += fmt.Sprintf("  %s", ui.Muted.Render("("+it.Label+")"))
			}
			fmt.Println(line)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
