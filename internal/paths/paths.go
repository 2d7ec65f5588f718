// Package paths provides canonical helpers for classifying and normalizing
// reference-shaped strings:
// - slash trimming for workspace-relative paths
// - target-extension classification (image vs markdown)
// - long (path-qualified) vs short (bare filename) reference shape
//
// It centralizes these rules so that extraction, caching, searching, and the
// CLI stay consistent.
package paths

import (
	"strings"
)

// ImageExts are the file extensions recognized as image targets.
var ImageExts = []string{".png", ".jpg", ".jpeg", ".svg", ".gif"}

// MarkdownExt is the file extension recognized as a text-document target.
const MarkdownExt = ".md"

func isSlash(c byte) bool {
	return c == '/' || c == '\\'
}

// TrimLeadingSlash strips one or more leading '/' or '\' characters.
func TrimLeadingSlash(s string) string {
	for len(s) > 0 && isSlash(s[0]) {
		s = s[1:]
	}
	return s
}

// TrimTrailingSlash strips one or more trailing '/' or '\' characters.
func TrimTrailingSlash(s string) string {
	for len(s) > 0 && isSlash(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}

// TrimSlashes strips leading and trailing '/' or '\' characters.
// Idempotent: TrimSlashes(TrimSlashes(s)) == TrimSlashes(s).
func TrimSlashes(s string) string {
	return TrimTrailingSlash(TrimLeadingSlash(s))
}

// ContainsImageExt reports whether path ends with a recognized image
// extension. Matching is case-insensitive so that case-preserving
// filesystems don't lose files over ".PNG" vs ".png".
func ContainsImageExt(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range ImageExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ContainsMarkdownExt reports whether path ends with the markdown extension.
func ContainsMarkdownExt(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), MarkdownExt)
}

// ContainsTargetExt reports whether path ends with any recognized target
// extension (markdown or image).
func ContainsTargetExt(path string) bool {
	return ContainsMarkdownExt(path) || ContainsImageExt(path)
}

// StripTargetExt removes a recognized target extension from path, if present.
// Unrecognized extensions are left alone.
func StripTargetExt(path string) string {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, MarkdownExt) {
		return path[:len(path)-len(MarkdownExt)]
	}
	for _, ext := range ImageExts {
		if strings.HasSuffix(lower, ext) {
			return path[:len(path)-len(ext)]
		}
	}
	return path
}

// IsLongRef reports whether the path, split on '/', has more than one
// segment. A long ref is path-qualified ("folder/note"); a short ref is a
// bare filename ("note").
func IsLongRef(path string) bool {
	return len(strings.Split(path, "/")) > 1
}

// NormalizeSlashes converts backslashes to forward slashes.
func NormalizeSlashes(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// Basename returns the final '/'-separated segment of path.
// The input is normalized first so Windows-style paths behave the same.
func Basename(path string) string {
	path = NormalizeSlashes(path)
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
