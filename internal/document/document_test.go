package document

import "testing"

func TestPositionAt(t *testing.T) {
	doc := New("test.md", "first\nsecond line\nthird")

	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{Line: 0, Column: 0}},
		{5, Position{Line: 0, Column: 5}},  // at '\n'
		{6, Position{Line: 1, Column: 0}},  // start of "second line"
		{13, Position{Line: 1, Column: 7}}, // inside "second line"
		{18, Position{Line: 2, Column: 0}},
		{23, Position{Line: 2, Column: 5}}, // end of content
	}

	for _, tt := range tests {
		got := doc.PositionAt(tt.offset)
		if got != tt.want {
			t.Errorf("PositionAt(%d)=%+v, want %+v", tt.offset, got, tt.want)
		}
	}
}

func TestPositionAtMultibyte(t *testing.T) {
	// "héllo" -- 'é' is two bytes but one column.
	doc := New("test.md", "h\xc3\xa9llo world")
	got := doc.PositionAt(3) // byte offset of first 'l'
	if got != (Position{Line: 0, Column: 2}) {
		t.Fatalf("PositionAt(3)=%+v, want line 0 col 2", got)
	}
}

func TestPositionAtCRLF(t *testing.T) {
	doc := New("test.md", "one\r\ntwo\r\nthree")

	got := doc.PositionAt(5)
	if got != (Position{Line: 1, Column: 0}) {
		t.Fatalf("PositionAt(5)=%+v, want line 1 col 0", got)
	}
	if doc.LineText(0) != "one" {
		t.Fatalf("LineText(0)=%q, want %q", doc.LineText(0), "one")
	}
	if doc.LineText(1) != "two" {
		t.Fatalf("LineText(1)=%q, want %q", doc.LineText(1), "two")
	}
	if doc.LineText(2) != "three" {
		t.Fatalf("LineText(2)=%q, want %q", doc.LineText(2), "three")
	}
}

func TestOffsetAtRoundTrip(t *testing.T) {
	doc := New("test.md", "alpha\nbr\xc3\xa4vo\ncharlie\n")
	for offset := 0; offset <= len(doc.Content()); offset++ {
		pos := doc.PositionAt(offset)
		back := doc.OffsetAt(pos)
		// Offsets pointing at a line terminator map back to line end.
		if back != offset && doc.PositionAt(back) != pos {
			t.Fatalf("round trip failed at offset %d: pos=%+v back=%d", offset, pos, back)
		}
	}
}

func TestSnippet(t *testing.T) {
	doc := New("test.md", "See ![[pic.png]] here\nnext")

	// Two chars of context before the "[[" token capture the '!' marker.
	start := 5 // offset of the "[[" delimiter
	got := doc.Snippet(start, 2)
	if got != " ![[pic.png]] here" {
		t.Fatalf("Snippet=%q", got)
	}

	// Context clamps at line start.
	if got := doc.Snippet(1, 5); got != "See ![[pic.png]] here" {
		t.Fatalf("clamped Snippet=%q", got)
	}
}

func TestSnippetMultibyteContext(t *testing.T) {
	// Two runes of context over a multi-byte character must back up by
	// whole runes, never slicing into the middle of one.
	doc := New("test.md", "a\xe6\x97\xa5[[x]]") // "a日[[x]]"

	start := 4 // offset of the "[[" delimiter, after the 3-byte '日'
	got := doc.Snippet(start, 2)
	if got != "a\xe6\x97\xa5[[x]]" {
		t.Fatalf("Snippet=%q, want the full rune-aligned prefix", got)
	}

	// A single rune of context includes exactly the multi-byte character.
	if got := doc.Snippet(start, 1); got != "\xe6\x97\xa5[[x]]" {
		t.Fatalf("Snippet=%q, want context of one whole rune", got)
	}
}

func TestLineTextOutOfRange(t *testing.T) {
	doc := New("test.md", "only")
	if doc.LineText(-1) != "" || doc.LineText(5) != "" {
		t.Fatal("out-of-range lines should be empty")
	}
}
