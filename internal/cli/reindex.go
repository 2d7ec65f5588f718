package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/crossref/internal/parser"
	"github.com/aidanlsb/crossref/internal/ui"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the persistent reference index",
	Long: `Enumerates the workspace and rebuilds the reference index from every
markdown document. References inside code blocks are not indexed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		cache, err := populatedCache(cmd.Context())
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		db, err := openIndex()
		if err != nil {
			return handleError(ErrIndexError, err, "")
		}
		defer db.Close()

		snap := cache.Snapshot()
		indexed := 0
		refCount := 0
		var warnings []Warning

		for _, rel := range snap.MarkdownPaths {
			if err := cmd.Context().Err(); err != nil {
				return err
			}

			content, err := cache.ReadFile(rel)
			if err != nil {
				warnings = append(warnings, Warning{
					Code:    WarnFileSkipped,
					Message: fmt.Sprintf("skipped %s: %v", rel, err),
				})
				continue
			}

			refs, err := parser.ExtractRefs(content)
			if err != nil {
				warnings = append(warnings, Warning{
					Code:    WarnFileSkipped,
					Message: fmt.Sprintf("failed to parse %s: %v", rel, err),
				})
				continue
			}

			var mtime int64
			if info, err := os.Stat(cache.AbsPath(rel)); err == nil {
				mtime = info.ModTime().Unix()
			}

			if err := db.IndexDocument(rel, refs, mtime); err != nil {
				warnings = append(warnings, Warning{
					Code:    WarnIndexUpdateFailed,
					Message: fmt.Sprintf("failed to index %s: %v", rel, err),
				})
				continue
			}
			indexed++
			refCount += len(refs)
		}

		removed, err := db.RemoveDeletedFiles(snap.MarkdownPaths)
		if err != nil {
			return handleError(ErrIndexError, err, "")
		}

		elapsed := time.Since(start).Milliseconds()

		if isJSONOutput() {
			outputSuccessWithWarnings(map[string]interface{}{
				"files_indexed": indexed,
				"refs_indexed":  refCount,
				"files_removed": len(removed),
			}, warnings, &Meta{Count: indexed, QueryTimeMs: elapsed})
			return nil
		}

		fmt.Println(ui.Successf("indexed %d files (%d refs) in %dms", indexed, refCount, elapsed))
		if len(removed) > 0 {
			fmt.Printf("  removed %d deleted files from the index\n", len(removed))
		}
		for _, w := range warnings {
			fmt.Println(ui.Warning(w.Message))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(reindexCmd)
}
