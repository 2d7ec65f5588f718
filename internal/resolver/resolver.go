// Package resolver maps reference strings to candidate target files.
//
// Long refs resolve by workspace-relative path. Short refs resolve by
// basename and may be ambiguous when two files share one; resolution then
// yields every candidate, in cache order, and the caller disambiguates.
package resolver

import (
	"strings"

	"github.com/gosimple/slug"

	"github.com/aidanlsb/crossref/internal/paths"
)

// Resolver resolves refs against a fixed set of target file paths.
type Resolver struct {
	targets []string
	byID    map[string][]string // lowercased ext-stripped relative path -> paths
	byShort map[string][]string // lowercased ext-stripped basename -> paths
	bySlug  map[string][]string // slugified basename -> paths
}

// New creates a Resolver over workspace-relative target paths (markdown
// and image files, typically a cache snapshot). Input order is preserved
// in candidate lists.
func New(targetPaths []string) *Resolver {
	r := &Resolver{
		targets: targetPaths,
		byID:    make(map[string][]string),
		byShort: make(map[string][]string),
		bySlug:  make(map[string][]string),
	}

	for _, t := range targetPaths {
		id := strings.ToLower(paths.StripTargetExt(paths.NormalizeSlashes(t)))
		short := strings.ToLower(paths.StripTargetExt(paths.Basename(t)))

		r.byID[id] = append(r.byID[id], t)
		r.byShort[short] = append(r.byShort[short], t)

		slugged := slug.Make(short)
		r.bySlug[slugged] = append(r.bySlug[slugged], t)
	}

	return r
}

// canonical normalizes a written ref for lookup.
func canonical(ref string) string {
	ref = strings.TrimSpace(ref)
	ref = paths.NormalizeSlashes(ref)
	ref = paths.TrimLeadingSlash(ref)
	ref = paths.StripTargetExt(ref)
	return strings.ToLower(ref)
}

// Candidates returns the ordered candidate target files for ref. Long
// refs match by full relative path; short refs match by basename, falling
// back to a slugified comparison ("My Note" matches "my-note.md"). An
// empty slice means the ref resolves to nothing.
func (r *Resolver) Candidates(ref string) []string {
	key := canonical(ref)
	if key == "" {
		return nil
	}

	if paths.IsLongRef(key) {
		return r.byID[key]
	}

	if m := r.byShort[key]; len(m) > 0 {
		return m
	}
	return r.bySlug[slug.Make(key)]
}

// Result describes one resolution outcome.
type Result struct {
	// Path is the resolved target (empty if unresolved or ambiguous).
	Path string

	// Ambiguous is true when the ref matches multiple targets.
	Ambiguous bool

	// Matches holds all candidates, in cache order.
	Matches []string
}

// Resolve resolves ref to a single target where possible. Ambiguity is
// reported, never silently collapsed.
func (r *Resolver) Resolve(ref string) Result {
	matches := r.Candidates(ref)
	switch len(matches) {
	case 0:
		return Result{}
	case 1:
		return Result{Path: matches[0], Matches: matches}
	default:
		return Result{Ambiguous: true, Matches: matches}
	}
}

// Collision is a basename shared by multiple target files.
type Collision struct {
	Short string
	Paths []string
}

// Collisions lists every short name claimed by more than one target, for
// surfacing potential reference ambiguity.
func (r *Resolver) Collisions() []Collision {
	var out []Collision
	seen := make(map[string]struct{})
	for _, t := range r.targets {
		short := strings.ToLower(paths.StripTargetExt(paths.Basename(t)))
		if _, done := seen[short]; done {
			continue
		}
		seen[short] = struct{}{}
		if ps := r.byShort[short]; len(ps) > 1 {
			out = append(out, Collision{Short: short, Paths: ps})
		}
	}
	return out
}
