package parser

import "testing"

func TestExtractRefs(t *testing.T) {
	content := []byte(`# Heading with [[top-ref]]

A paragraph with [[folder/note]] and [[other|Some Label]].

- list item [[listed]]
`)

	refs, err := ExtractRefs(content)
	if err != nil {
		t.Fatal(err)
	}

	want := []Reference{
		{Target: "top-ref", Line: 1},
		{Target: "folder/note", Line: 3},
		{Target: "other", Label: "Some Label", Line: 3},
		{Target: "listed", Line: 5},
	}

	if len(refs) != len(want) {
		t.Fatalf("got %d refs, want %d: %+v", len(refs), len(want), refs)
	}
	for i, w := range want {
		if refs[i] != w {
			t.Errorf("refs[%d]=%+v, want %+v", i, refs[i], w)
		}
	}
}

func TestExtractRefsSkipsCode(t *testing.T) {
	content := []byte("Real [[kept]]\n\n```\n[[fenced]]\n```\n\nInline `[[coded]]` span.\n")

	refs, err := ExtractRefs(content)
	if err != nil {
		t.Fatal(err)
	}

	if len(refs) != 1 {
		t.Fatalf("got %+v, want only the kept ref", refs)
	}
	if refs[0].Target != "kept" || refs[0].Line != 1 {
		t.Fatalf("refs[0]=%+v", refs[0])
	}
}

func TestExtractRefsEmpty(t *testing.T) {
	refs, err := ExtractRefs([]byte("no references here\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(refs) != 0 {
		t.Fatalf("got %+v, want none", refs)
	}
}
