// Package wikilink provides canonical parsing of wiki-style references.
//
// Reference grammar:
//
//	[[target]]
//	[[target|display label]]
//	![[target]]   (embed/transclusion marker, not interpreted here)
//
// A reference is recognized only when the written target carries a known
// extension (markdown or image). Long refs are path-qualified and resolved
// against a base path; short refs are bare filenames resolved by basename.
package wikilink

import (
	"regexp"
	"strings"

	"github.com/aidanlsb/crossref/internal/document"
	"github.com/aidanlsb/crossref/internal/paths"
)

// Ref is a parsed reference token. Ref is the canonical identity used for
// matching (case-insensitively); Label is the optional display override
// after a '|' separator, empty when absent.
type Ref struct {
	Ref   string
	Label string
}

// tokenRe matches a bracketed reference token. The inner text cannot
// contain brackets, which keeps array-like syntax from matching.
var tokenRe = regexp.MustCompile(`(\[\[)([^\[\]]+?)(\]\])`)

// splitRefLabel splits raw on the first '|' into ref and label.
func splitRefLabel(raw string) (string, string) {
	parts := strings.SplitN(raw, "|", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return raw, ""
}

// ExtractLongRef parses a path-qualified reference from rawPath, stripping
// the basePath prefix. It returns nil when rawPath lacks a known target
// extension. When preserveExt is false the recognized extension is removed
// from the ref.
func ExtractLongRef(basePath, rawPath string, preserveExt bool) *Ref {
	raw := paths.NormalizeSlashes(rawPath)
	refPart, label := splitRefLabel(raw)
	if !paths.ContainsTargetExt(refPart) {
		return nil
	}

	refPart = strings.TrimPrefix(refPart, paths.NormalizeSlashes(basePath))
	refPart = paths.TrimLeadingSlash(refPart)
	if !preserveExt {
		refPart = paths.StripTargetExt(refPart)
	}

	return &Ref{Ref: refPart, Label: label}
}

// ExtractShortRef parses a bare-filename reference from rawPath: the
// directory portion is discarded so the ref matches by basename alone.
// Returns nil when rawPath lacks a known target extension.
func ExtractShortRef(rawPath string, preserveExt bool) *Ref {
	raw := paths.NormalizeSlashes(rawPath)
	refPart, label := splitRefLabel(raw)
	if !paths.ContainsTargetExt(refPart) {
		return nil
	}

	refPart = paths.Basename(refPart)
	if !preserveExt {
		refPart = paths.StripTargetExt(refPart)
	}

	return &Ref{Ref: refPart, Label: label}
}

// RefAtOffset locates the reference token enclosing the given byte offset
// in doc. It returns the extracted ref (label discarded) and the range of
// the full bracketed token including the [[ ]] delimiters, for callers
// that need to replace or decorate the token.
func RefAtOffset(doc *document.Document, offset int) (string, document.Range, bool) {
	content := doc.Content()
	for _, m := range tokenRe.FindAllStringSubmatchIndex(content, -1) {
		start, end := m[0], m[1]
		if offset < start || offset > end {
			continue
		}
		inner := content[m[4]:m[5]]
		ref, _ := splitRefLabel(inner)
		return strings.TrimSpace(ref), doc.RangeBetween(start, end), true
	}
	return "", document.Range{}, false
}

// Match represents a reference token found in a string (typically one line).
type Match struct {
	Target  string
	Label   string
	Start   int
	End     int
	Literal string
}

// FindAllInLine finds reference tokens in a single line. Matches preceded
// by '[' are skipped to avoid array syntax like [[[ref]]].
func FindAllInLine(line string) []Match {
	var out []Match

	for _, m := range tokenRe.FindAllStringSubmatchIndex(line, -1) {
		start, end := m[0], m[1]
		if start > 0 && line[start-1] == '[' {
			continue
		}

		target, label := splitRefLabel(line[m[4]:m[5]])
		target = strings.TrimSpace(target)
		if target == "" {
			continue
		}

		out = append(out, Match{
			Target:  target,
			Label:   strings.TrimSpace(label),
			Start:   start,
			End:     end,
			Literal: line[start:end],
		})
	}

	return out
}
