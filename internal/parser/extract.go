// Package parser extracts wiki references from markdown documents using a
// goldmark AST walk, so that references inside fenced code blocks, indented
// code blocks, and inline code spans are never extracted.
package parser

import (
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/aidanlsb/crossref/internal/wikilink"
)

// Reference is one extracted reference occurrence.
type Reference struct {
	Target string
	Label  string
	Line   int // 1-indexed line number
}

// ExtractRefs parses content as markdown and extracts every [[reference]]
// outside code constructs.
//
// Goldmark splits wikilinks like [[target]] across multiple Text nodes
// (because '[' opens link syntax), so text is collected per source line
// and the token scan runs over each reassembled line.
func ExtractRefs(content []byte) ([]Reference, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(content))

	lineStarts := computeLineStarts(content)
	lineTexts := make(map[int]*strings.Builder)

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.CodeSpan:
			return ast.WalkSkipChildren, nil
		}

		if textNode, ok := n.(*ast.Text); ok {
			seg := textNode.Segment
			line := offsetToLine(lineStarts, seg.Start)
			b, ok := lineTexts[line]
			if !ok {
				b = &strings.Builder{}
				lineTexts[line] = b
			}
			b.Write(seg.Value(content))
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	lines := make([]int, 0, len(lineTexts))
	for line := range lineTexts {
		lines = append(lines, line)
	}
	sort.Ints(lines)

	var refs []Reference
	for _, line := range lines {
		for _, match := range wikilink.FindAllInLine(lineTexts[line].String()) {
			refs = append(refs, Reference{
				Target: match.Target,
				Label:  match.Label,
				Line:   line + 1,
			})
		}
	}

	return refs, nil
}

// computeLineStarts returns the byte offset of the start of each line.
func computeLineStarts(content []byte) []int {
	starts := []int{0}
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// offsetToLine returns the zero-based line containing the byte offset.
func offsetToLine(lineStarts []int, offset int) int {
	lo, hi := 0, len(lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
