// Package search implements the reference locator: given a canonical ref,
// it scans the cached markdown documents for [[ref]] and [[ref|label]]
// occurrences and reports each one with a byte-accurate text range and a
// display snippet.
package search

import (
	"context"
	"fmt"
	"regexp"

	"github.com/aidanlsb/crossref/internal/document"
	"github.com/aidanlsb/crossref/internal/workspace"
)

// FoundRef is one located occurrence of a reference token.
type FoundRef struct {
	// Path is the workspace-relative path of the containing document.
	Path string

	// Range spans the inner ref text, excluding the [[ ]] delimiters but
	// including any |label suffix.
	Range document.Range

	// MatchText is the containing line from two characters before the
	// token through end of line. The leading context captures a '!'
	// embed marker when present.
	MatchText string
}

// SkippedFile records a cached file that could not be read during a scan.
type SkippedFile struct {
	Path string
	Err  error
}

// Result is the outcome of one reference scan.
type Result struct {
	Refs    []FoundRef
	Scanned int
	Skipped []SkippedFile
}

// Locator scans a workspace cache for reference occurrences.
type Locator struct {
	cache *workspace.Cache
}

// New creates a Locator over the given cache.
func New(cache *workspace.Cache) *Locator {
	return &Locator{cache: cache}
}

// refPattern builds the case-insensitive occurrence pattern for a ref.
// The ref is escaped so that filenames containing regex metacharacters
// ('.', '(', ')', ...) match literally. An optional |label suffix inside
// the brackets is permitted, so labeled references still match.
func refPattern(ref string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\[\[(` + regexp.QuoteMeta(ref) + `(\|[^\[\]]*)?)\]\]`)
}

// FindReferences scans every cached markdown document for occurrences of
// ref, skipping documents whose absolute path appears in excludePaths.
//
// The scan is sequential: one file's content is resident at a time, and
// the context is checked between files so long scans can be canceled. A
// file that disappeared between caching and reading is skipped and the
// scan continues; such files are reported in Result.Skipped.
func (l *Locator) FindReferences(ctx context.Context, ref string, excludePaths ...string) (*Result, error) {
	if ref == "" {
		return nil, fmt.Errorf("empty reference")
	}

	excluded := make(map[string]struct{}, len(excludePaths))
	for _, p := range excludePaths {
		excluded[p] = struct{}{}
	}

	pattern := refPattern(ref)
	result := &Result{}

	for _, rel := range l.cache.Snapshot().MarkdownPaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, skip := excluded[l.cache.AbsPath(rel)]; skip {
			continue
		}

		content, err := l.cache.ReadFile(rel)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedFile{Path: rel, Err: err})
			continue
		}
		result.Scanned++

		// One document per file, reused across all matches within it.
		doc := document.New(rel, string(content))
		for _, m := range pattern.FindAllStringSubmatchIndex(doc.Content(), -1) {
			innerStart := m[0] + 2 // skip the "[[" delimiter
			innerEnd := innerStart + (m[3] - m[2])
			result.Refs = append(result.Refs, FoundRef{
				Path:      rel,
				Range:     doc.RangeBetween(innerStart, innerEnd),
				MatchText: doc.Snippet(m[0], 2),
			})
		}
	}

	return result, nil
}
