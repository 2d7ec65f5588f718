package paths

import "testing"

func TestTrimSlashes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/foo/bar/", "foo/bar"},
		{"///foo", "foo"},
		{"foo\\", "foo"},
		{"\\\\foo\\bar", "foo\\bar"},
		{"", ""},
		{"/", ""},
		{"foo", "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := TrimSlashes(tt.in)
			if got != tt.want {
				t.Fatalf("TrimSlashes(%q)=%q, want %q", tt.in, got, tt.want)
			}
			// Idempotence
			if TrimSlashes(got) != got {
				t.Fatalf("TrimSlashes not idempotent for %q", tt.in)
			}
		})
	}
}

func TestTrimLeadingTrailingSlash(t *testing.T) {
	if got := TrimLeadingSlash("/a/b/"); got != "a/b/" {
		t.Fatalf("TrimLeadingSlash=%q", got)
	}
	if got := TrimTrailingSlash("/a/b/"); got != "/a/b" {
		t.Fatalf("TrimTrailingSlash=%q", got)
	}
}

func TestContainsImageExt(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"pic.png", true},
		{"pic.PNG", true},
		{"a/b/pic.jpeg", true},
		{"diagram.svg", true},
		{"anim.gif", true},
		{"note.md", false},
		{"pic.png.bak", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ContainsImageExt(tt.path); got != tt.want {
			t.Errorf("ContainsImageExt(%q)=%v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestContainsMarkdownExt(t *testing.T) {
	if !ContainsMarkdownExt("a/b.md") {
		t.Fatal("expected .md to be recognized")
	}
	if ContainsMarkdownExt("a/b.txt") {
		t.Fatal("expected .txt to be rejected")
	}
}

func TestStripTargetExt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a/b.md", "a/b"},
		{"pic.PNG", "pic"},
		{"note.txt", "note.txt"},
		{"note", "note"},
	}

	for _, tt := range tests {
		if got := StripTargetExt(tt.in); got != tt.want {
			t.Errorf("StripTargetExt(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsLongRef(t *testing.T) {
	if IsLongRef("note") {
		t.Fatal("bare filename should not be a long ref")
	}
	if !IsLongRef("folder/note") {
		t.Fatal("path-qualified ref should be a long ref")
	}
}

func TestBasename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a/b/c.md", "c.md"},
		{"c.md", "c.md"},
		{"a\\b\\c.md", "c.md"},
	}
	for _, tt := range tests {
		if got := Basename(tt.in); got != tt.want {
			t.Errorf("Basename(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}
