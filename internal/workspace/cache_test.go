package workspace

import (
	"context"
	"testing"

	"github.com/aidanlsb/crossref/internal/testutil"
)

func TestPopulate(t *testing.T) {
	ws := testutil.NewTestWorkspace(t).
		WithFile("a.md", "# a").
		WithFile("b.png", "").
		WithFile("sub/c.md", "# c").
		WithFile("sub/d.txt", "not a target").
		WithFile(".hidden/e.md", "skipped").
		Build()

	c := New(ws.Path)

	// Empty before Populate.
	if snap := c.Snapshot(); len(snap.MarkdownPaths) != 0 || len(snap.ImagePaths) != 0 {
		t.Fatalf("expected empty cache before Populate, got %+v", snap)
	}

	if err := c.Populate(context.Background()); err != nil {
		t.Fatal(err)
	}

	snap := c.Snapshot()
	if len(snap.MarkdownPaths) != 2 {
		t.Fatalf("markdown paths=%v, want 2 entries", snap.MarkdownPaths)
	}
	if len(snap.ImagePaths) != 1 {
		t.Fatalf("image paths=%v, want 1 entry", snap.ImagePaths)
	}
}

func TestPopulateReplacesWholesale(t *testing.T) {
	ws := testutil.NewTestWorkspace(t).
		WithFile("a.md", "# a").
		Build()

	c := New(ws.Path)
	if err := c.Populate(context.Background()); err != nil {
		t.Fatal(err)
	}

	ws.Remove("a.md")
	ws.WriteFile("b.md", "# b")
	ws.WriteFile("c.md", "# c")

	if err := c.Rebuild(context.Background()); err != nil {
		t.Fatal(err)
	}

	snap := c.Snapshot()
	if len(snap.MarkdownPaths) != 2 {
		t.Fatalf("markdown paths=%v, want the 2 new entries", snap.MarkdownPaths)
	}
	for _, p := range snap.MarkdownPaths {
		if p == "a.md" {
			t.Fatal("stale entry survived rebuild")
		}
	}
}

func TestClear(t *testing.T) {
	ws := testutil.NewTestWorkspace(t).
		WithFile("a.md", "# a").
		WithFile("b.png", "").
		Build()

	c := New(ws.Path)
	if err := c.Populate(context.Background()); err != nil {
		t.Fatal(err)
	}

	c.Clear()
	snap := c.Snapshot()
	if len(snap.MarkdownPaths) != 0 || len(snap.ImagePaths) != 0 {
		t.Fatalf("expected empty cache after Clear, got %+v", snap)
	}
}

func TestPopulateCanceled(t *testing.T) {
	ws := testutil.NewTestWorkspace(t).
		WithFile("a.md", "# a").
		Build()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(ws.Path)
	if err := c.Populate(ctx); err == nil {
		t.Fatal("expected error from canceled context")
	}
}

func TestReadFile(t *testing.T) {
	ws := testutil.NewTestWorkspace(t).
		WithFile("sub/c.md", "hello").
		Build()

	c := New(ws.Path)
	got, err := c.ReadFile("sub/c.md")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Fatalf("content=%q", got)
	}
}
