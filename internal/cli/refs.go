package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/crossref/internal/index"
	"github.com/aidanlsb/crossref/internal/search"
	"github.com/aidanlsb/crossref/internal/ui"
)

// RefJSON is the JSON representation of one located reference.
type RefJSON struct {
	SourcePath string `json:"source_path"`
	Target     string `json:"target,omitempty"`
	Label      string `json:"label,omitempty"`
	Line       int    `json:"line"`
	Column     int    `json:"column,omitempty"`
	EndLine    int    `json:"end_line,omitempty"`
	EndColumn  int    `json:"end_column,omitempty"`
	MatchText  string `json:"match_text,omitempty"`
}

var (
	refsLive     bool
	refsMarkdown bool
	refsExclude  []string
)

var refsCmd = &cobra.Command{
	Use:   "refs <target>",
	Short: "Show every reference to a target",
	Long: `Shows all locations in the workspace that reference the target.

By default results come from the persistent index; files changed since
the last reindex are refreshed first, unless auto_reindex is disabled in
crossref.yaml. With --live the workspace is scanned directly, which also
yields exact text ranges for each occurrence.

Examples:
  xrf refs notes/alice
  xrf refs alice --live
  xrf refs alice --live --exclude /path/to/current.md
  xrf refs notes/alice --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if refsLive {
			return runLiveRefs(cmd, target)
		}
		return runIndexedRefs(cmd.Context(), target)
	},
}

func runIndexedRefs(ctx context.Context, target string) error {
	start := time.Now()

	db, err := openIndex()
	if err != nil {
		return handleError(ErrIndexError, err, "Run 'xrf reindex' to rebuild the index")
	}
	defer db.Close()

	var warnings []Warning
	if autoReindexEnabled() {
		warnings = refreshStaleIndex(ctx, db)
	}

	links, err := db.Backlinks(target)
	if err != nil {
		return handleError(ErrIndexError, err, "")
	}

	elapsed := time.Since(start).Milliseconds()

	if isJSONOutput() {
		items := make([]RefJSON, len(links))
		for i, link := range links {
			items[i] = RefJSON{
				SourcePath: link.SourcePath,
				Target:     link.TargetRaw,
				Label:      link.Label,
				Line:       link.Line,
			}
		}
		outputSuccessWithWarnings(map[string]interface{}{
			"target": target,
			"items":  items,
		}, warnings, &Meta{Count: len(items), QueryTimeMs: elapsed})
		return nil
	}

	for _, w := range warnings {
		fmt.Println(ui.Warning(w.Message))
	}

	if len(links) == 0 {
		fmt.Printf("No references found for '%s'\n", target)
		return nil
	}

	if refsMarkdown {
		return renderRefsReport(target, links)
	}

	fmt.Printf("References to %s %s\n\n", ui.RefTarget(target), ui.Count(len(links), "ref", "refs"))
	for _, link := range links {
		written := link.TargetRaw
		if link.Label != "" {
			written += "|" + link.Label
		}
		fmt.Printf("  ← %s %s  %s\n",
			ui.FilePath(link.SourcePath),
			ui.Hint(fmt.Sprintf("line %d", link.Line)),
			fmt.Sprintf("[[%s]]", written))
	}

	return nil
}

func runLiveRefs(cmd *cobra.Command, target string) error {
	start := time.Now()

	cache, err := populatedCache(cmd.Context())
	if err != nil {
		return handleError(ErrFileReadError, err, "")
	}

	result, err := search.New(cache).FindReferences(cmd.Context(), target, refsExclude...)
	if err != nil {
		return handleError(ErrInvalidInput, err, "")
	}

	elapsed := time.Since(start).Milliseconds()

	var warnings []Warning
	for _, skipped := range result.Skipped {
		warnings = append(warnings, Warning{
			Code:    WarnFileSkipped,
			Message: fmt.Sprintf("skipped %s: %v", skipped.Path, skipped.Err),
		})
	}

	if isJSONOutput() {
		items := make([]RefJSON, len(result.Refs))
		for i, ref := range result.Refs {
			items[i] = RefJSON{
				SourcePath: ref.Path,
				Line:       ref.Range.Start.Line + 1,
				Column:     ref.Range.Start.Column + 1,
				EndLine:    ref.Range.End.Line + 1,
				EndColumn:  ref.Range.End.Column + 1,
				MatchText:  ref.MatchText,
			}
		}
		outputSuccessWithWarnings(map[string]interface{}{
			"target": target,
			"items":  items,
		}, warnings, &Meta{Count: len(items), QueryTimeMs: elapsed})
		return nil
	}

	if len(result.Refs) == 0 {
		fmt.Printf("No references found for '%s' (%d files scanned)\n", target, result.Scanned)
		return nil
	}

	fmt.Printf("References to %s %s\n\n", ui.RefTarget(target), ui.Count(len(result.Refs), "ref", "refs"))
	for _, ref := range result.Refs {
		fmt.Printf("  ← %s %s  %s\n",
			ui.FilePath(ref.Path),
			ui.LineNum(ref.Range.Start.Line+1, ref.Range.Start.Column+1),
			strings.TrimSpace(ref.MatchText))
	}
	for _, w := range warnings {
		fmt.Println(ui.Warning(w.Message))
	}

	return nil
}

// renderRefsReport renders the backlink list as a markdown report,
// styled for the terminal when stdout is a TTY.
func renderRefsReport(target string, links []index.Backlink) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# References to %s\n\n", target)
	for _, link := range links {
		written := link.TargetRaw
		if link.Label != "" {
			written += "|" + link.Label
		}
		fmt.Fprintf(&b, "- **%s** line %d: `[[%s]]`\n", link.SourcePath, link.Line, written)
	}

	display := ui.NewDisplayContext()
	if !display.IsTTY {
		fmt.Print(b.String())
		return nil
	}

	rendered, err := ui.RenderMarkdown(b.String(), display.TermWidth)
	if err != nil {
		fmt.Print(b.String())
		return nil
	}
	fmt.Print(rendered)
	return nil
}

func init() {
	refsCmd.Flags().BoolVar(&refsLive, "live", false, "scan the workspace instead of the index")
	refsCmd.Flags().BoolVar(&refsMarkdown, "md", false, "render results as a markdown report")
	refsCmd.Flags().StringArrayVar(&refsExclude, "exclude", nil, "absolute file paths to skip (repeatable, --live only)")
	rootCmd.AddCommand(refsCmd)
}
