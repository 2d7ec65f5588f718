package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/crossref/internal/ui"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Show workspace cache and index statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := populatedCache(cmd.Context())
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}
		snap := cache.Snapshot()

		db, err := openIndex()
		if err != nil {
			return handleError(ErrIndexError, err, "")
		}
		defer db.Close()

		stats, err := db.IndexStats()
		if err != nil {
			return handleError(ErrIndexError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"markdown_files": len(snap.MarkdownPaths),
				"image_files":    len(snap.ImagePaths),
				"indexed_files":  stats.Files,
				"indexed_refs":   stats.Refs,
			}, nil)
			return nil
		}

		fmt.Println(ui.Header("Workspace"))
		fmt.Printf("  markdown files: %d\n", len(snap.MarkdownPaths))
		fmt.Printf("  image files:    %d\n", len(snap.ImagePaths))
		fmt.Println(ui.Header("Index"))
		fmt.Printf("  files: %d\n", stats.Files)
		fmt.Printf("  refs:  %d\n", stats.Refs)
		if stats.Files != len(snap.MarkdownPaths) {
			fmt.Println(ui.Hint("  index out of date, run 'xrf reindex'"))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
}
