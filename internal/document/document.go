// Package document provides an addressable view over a text file's content:
// conversion between raw byte offsets and line/column positions, plus
// line-text access for building display snippets.
//
// Positions are content-aware: columns are counted in runes, and CRLF line
// endings are handled so that a position computed here addresses the same
// spot an editor would.
package document

import (
	"unicode/utf8"
)

// Position is a zero-based line/column location. Column counts runes, not
// bytes, so multi-byte characters occupy a single column.
type Position struct {
	Line   int
	Column int
}

// Range is a half-open [Start, End) span of text.
type Range struct {
	Start Position
	End   Position
}

// Document holds file content with a precomputed line-start table.
type Document struct {
	Path    string
	content string
	// lineStarts[i] is the byte offset of the first byte of line i.
	lineStarts []int
}

// New creates a Document over content. Path is carried for callers that
// need to identify the source file; it is not read here.
func New(path, content string) *Document {
	return &Document{
		Path:       path,
		content:    content,
		lineStarts: computeLineStarts(content),
	}
}

// computeLineStarts returns the byte offset of the start of each line.
func computeLineStarts(content string) []int {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// Content returns the full document text.
func (d *Document) Content() string {
	return d.content
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.lineStarts)
}

// lineAt returns the index of the line containing byte offset.
func (d *Document) lineAt(offset int) int {
	// Binary search for the last lineStart <= offset.
	lo, hi := 0, len(d.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if d.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// PositionAt converts a byte offset into a line/column position.
// Offsets outside the content are clamped.
func (d *Document) PositionAt(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(d.content) {
		offset = len(d.content)
	}
	line := d.lineAt(offset)
	col := utf8.RuneCountInString(d.content[d.lineStarts[line]:offset])
	return Position{Line: line, Column: col}
}

// OffsetAt converts a line/column position back into a byte offset.
// Out-of-range positions are clamped to the nearest valid offset.
func (d *Document) OffsetAt(pos Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(d.lineStarts) {
		return len(d.content)
	}
	offset := d.lineStarts[pos.Line]
	end := d.lineEnd(pos.Line)
	for col := 0; col < pos.Column && offset < end; col++ {
		_, size := utf8.DecodeRuneInString(d.content[offset:end])
		offset += size
	}
	return offset
}

// lineEnd returns the byte offset just past the last content byte of line,
// excluding the line terminator.
func (d *Document) lineEnd(line int) int {
	end := len(d.content)
	if line+1 < len(d.lineStarts) {
		end = d.lineStarts[line+1] - 1 // drop '\n'
	}
	if end > 0 && end-1 < len(d.content) && end-1 >= d.lineStarts[line] && d.content[end-1] == '\r' {
		end-- // drop '\r' of a CRLF terminator
	}
	return end
}

// LineText returns the text of a line without its terminator.
func (d *Document) LineText(line int) string {
	if line < 0 || line >= len(d.lineStarts) {
		return ""
	}
	return d.content[d.lineStarts[line]:d.lineEnd(line)]
}

// RangeBetween converts a pair of byte offsets into a Range.
func (d *Document) RangeBetween(start, end int) Range {
	return Range{Start: d.PositionAt(start), End: d.PositionAt(end)}
}

// Snippet returns line text for the line containing the byte offset start,
// beginning contextBefore runes before start (clamped to the line start)
// through end of line. A two-rune context captures a leading '!' or
// bracket so callers can distinguish image embeds from plain links.
func (d *Document) Snippet(start, contextBefore int) string {
	line := d.lineAt(start)
	lineStart := d.lineStarts[line]

	// Back up whole runes so a multi-byte character before the token is
	// never split.
	from := start
	for i := 0; i < contextBefore && from > lineStart; i++ {
		_, size := utf8.DecodeLastRuneInString(d.content[lineStart:from])
		from -= size
	}
	return d.content[from:d.lineEnd(line)]
}
