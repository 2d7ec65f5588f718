package resolver

import (
	"reflect"
	"testing"
)

func TestCandidatesLongRef(t *testing.T) {
	r := New([]string{"a/b.md", "c/b.md", "top.md"})

	got := r.Candidates("a/b")
	if !reflect.DeepEqual(got, []string{"a/b.md"}) {
		t.Fatalf("Candidates(a/b)=%v", got)
	}

	// Extension and case are tolerated on the written ref.
	got = r.Candidates("A/B.md")
	if !reflect.DeepEqual(got, []string{"a/b.md"}) {
		t.Fatalf("Candidates(A/B.md)=%v", got)
	}

	if got := r.Candidates("x/y"); len(got) != 0 {
		t.Fatalf("Candidates(x/y)=%v, want none", got)
	}
}

func TestCandidatesShortRef(t *testing.T) {
	r := New([]string{"a/b.md", "c/b.md", "top.md", "img/pic.png"})

	// Ambiguous short ref: every candidate, in cache order.
	got := r.Candidates("b")
	if !reflect.DeepEqual(got, []string{"a/b.md", "c/b.md"}) {
		t.Fatalf("Candidates(b)=%v", got)
	}

	if got := r.Candidates("top"); !reflect.DeepEqual(got, []string{"top.md"}) {
		t.Fatalf("Candidates(top)=%v", got)
	}

	// Image targets resolve too.
	if got := r.Candidates("pic"); !reflect.DeepEqual(got, []string{"img/pic.png"}) {
		t.Fatalf("Candidates(pic)=%v", got)
	}
}

func TestCandidatesSlugFallback(t *testing.T) {
	r := New([]string{"notes/my-note.md"})

	got := r.Candidates("My Note")
	if !reflect.DeepEqual(got, []string{"notes/my-note.md"}) {
		t.Fatalf("Candidates(My Note)=%v", got)
	}
}

func TestResolve(t *testing.T) {
	r := New([]string{"a/b.md", "c/b.md", "top.md"})

	res := r.Resolve("top")
	if res.Path != "top.md" || res.Ambiguous {
		t.Fatalf("Resolve(top)=%+v", res)
	}

	res = r.Resolve("b")
	if !res.Ambiguous || len(res.Matches) != 2 {
		t.Fatalf("Resolve(b)=%+v, want ambiguous with 2 matches", res)
	}
	if res.Path != "" {
		t.Fatal("ambiguous resolution must not pick a target")
	}

	res = r.Resolve("missing")
	if res.Path != "" || res.Ambiguous || len(res.Matches) != 0 {
		t.Fatalf("Resolve(missing)=%+v", res)
	}
}

func TestCollisions(t *testing.T) {
	r := New([]string{"a/b.md", "c/b.md", "top.md"})

	cols := r.Collisions()
	if len(cols) != 1 {
		t.Fatalf("collisions=%+v, want 1", cols)
	}
	if cols[0].Short != "b" || len(cols[0].Paths) != 2 {
		t.Fatalf("collision=%+v", cols[0])
	}
}
