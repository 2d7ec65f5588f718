package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aidanlsb/crossref/internal/index"
	"github.com/aidanlsb/crossref/internal/parser"
	"github.com/aidanlsb/crossref/internal/resolver"
	"github.com/aidanlsb/crossref/internal/workspace"
)

// populatedCache builds and populates a workspace cache for the resolved
// workspace. Caller owns the cache for the remainder of the invocation.
func populatedCache(ctx context.Context) (*workspace.Cache, error) {
	cache := workspace.New(getWorkspacePath())
	if err := cache.Populate(ctx); err != nil {
		return nil, err
	}
	return cache, nil
}

// workspaceResolver builds a resolver over every cached target file,
// markdown first, then images, preserving cache order within each list.
func workspaceResolver(cache *workspace.Cache) *resolver.Resolver {
	snap := cache.Snapshot()
	targets := make([]string, 0, len(snap.MarkdownPaths)+len(snap.ImagePaths))
	targets = append(targets, snap.MarkdownPaths...)
	targets = append(targets, snap.ImagePaths...)
	return resolver.New(targets)
}

// openIndex opens the persistent index for the resolved workspace.
// Caller is responsible for calling db.Close().
func openIndex() (*index.Database, error) {
	return index.Open(getWorkspacePath())
}

// refreshStaleIndex incrementally reindexes workspace files whose mtime
// differs from the indexed one and drops files that no longer exist.
// Commands that read the index call this first when auto_reindex is
// enabled, so results reflect the workspace without an explicit reindex.
// Failures degrade to warnings; the query proceeds on whatever is indexed.
func refreshStaleIndex(ctx context.Context, db *index.Database) []Warning {
	var warnings []Warning

	cache, err := populatedCache(ctx)
	if err != nil {
		return append(warnings, Warning{
			Code:    WarnIndexUpdateFailed,
			Message: fmt.Sprintf("failed to enumerate workspace: %v", err),
		})
	}

	snap := cache.Snapshot()
	for _, rel := range snap.MarkdownPaths {
		if ctx.Err() != nil {
			return warnings
		}

		info, err := os.Stat(cache.AbsPath(rel))
		if err != nil {
			continue
		}
		mtime := info.ModTime().Unix()
		if indexed, err := db.FileMtime(rel); err == nil && indexed == mtime {
			continue
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
		if err := db.IndexDocument(rel, refs, mtime); err != nil {
			warnings = append(warnings, Warning{
				Code:    WarnIndexUpdateFailed,
				Message: fmt.Sprintf("failed to index %s: %v", rel, err),
			})
		}
	}

	if _, err := db.RemoveDeletedFiles(snap.MarkdownPaths); err != nil {
		warnings = append(warnings, Warning{
			Code:    WarnIndexUpdateFailed,
			Message: fmt.Sprintf("failed to drop deleted files: %v", err),
		})
	}
	return warnings
}
