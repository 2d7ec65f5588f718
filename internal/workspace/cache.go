// Package workspace maintains the in-memory snapshot of a workspace's
// reference-target files: one list of image files and one list of markdown
// documents, built by bulk glob enumeration.
//
// The cache is an explicitly owned object, not a hidden global: callers
// construct one per workspace, populate it at startup, and rebuild it after
// any workspace-wide change. Populate/Clear are not serialized against
// concurrent readers; the surrounding system sequences them.
package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aidanlsb/crossref/internal/paths"
)

// Snapshot is the current pair of file listings. Order follows enumeration
// order and is not semantically significant.
type Snapshot struct {
	ImagePaths    []string // workspace-relative image file paths
	MarkdownPaths []string // workspace-relative markdown file paths
}

// Cache enumerates and caches workspace target files.
type Cache struct {
	fsys fs.FS
	root string

	images    []string
	markdowns []string
}

// New creates a cache over the workspace rooted at root on the OS
// filesystem. The cache starts empty; call Populate before querying.
func New(root string) *Cache {
	return NewFS(os.DirFS(root), root)
}

// NewFS creates a cache over an arbitrary filesystem, for tests and
// embedded use. root is carried for absolute-path display only.
func NewFS(fsys fs.FS, root string) *Cache {
	return &Cache{fsys: fsys, root: root}
}

// Root returns the workspace root path.
func (c *Cache) Root() string {
	return c.root
}

// skippedDir reports whether a directory should be excluded from
// enumeration. System and hidden directories never contain targets.
func skippedDir(name string) bool {
	return strings.HasPrefix(name, ".")
}

// enumerate walks the workspace once, collecting paths accepted by match.
func (c *Cache) enumerate(ctx context.Context, match func(string) bool) ([]string, error) {
	var out []string
	err := doublestar.GlobWalk(c.fsys, "**/*", func(path string, d fs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if skippedDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if match(path) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Populate performs the two bulk enumerations (image set, markdown set)
// and replaces both listings wholesale. Both lists are built before either
// assignment, so a populate observed through Snapshot is all-old or all-new.
func (c *Cache) Populate(ctx context.Context) error {
	images, err := c.enumerate(ctx, paths.ContainsImageExt)
	if err != nil {
		return fmt.Errorf("failed to enumerate image files: %w", err)
	}
	markdowns, err := c.enumerate(ctx, paths.ContainsMarkdownExt)
	if err != nil {
		return fmt.Errorf("failed to enumerate markdown files: %w", err)
	}

	c.images = images
	c.markdowns = markdowns
	return nil
}

// Clear resets both listings to empty. The window between Clear and a
// following Populate is observable: queries during it see empty results.
func (c *Cache) Clear() {
	c.images = nil
	c.markdowns = nil
}

// Rebuild refreshes the cache in one step. Unlike Clear followed by
// Populate, readers between the two halves never observe the intermediate
// empty state, because Populate swaps complete lists.
func (c *Cache) Rebuild(ctx context.Context) error {
	return c.Populate(ctx)
}

// Snapshot returns the current listings by reference. Callers must not
// hold a snapshot across a Populate or Clear if they require consistency.
func (c *Cache) Snapshot() Snapshot {
	return Snapshot{ImagePaths: c.images, MarkdownPaths: c.markdowns}
}

// ReadFile reads a cached file's content by its workspace-relative path.
func (c *Cache) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(c.fsys, path)
}

// AbsPath converts a workspace-relative path to an absolute one.
func (c *Cache) AbsPath(rel string) string {
	return filepath.Join(c.root, filepath.FromSlash(rel))
}
