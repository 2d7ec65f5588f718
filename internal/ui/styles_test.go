package ui

import "testing"

func TestNormalizeAccentColor(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"39", "39", true},
		{"0", "0", true},
		{"255", "255", true},
		{"#A78BFA", "#A78BFA", true},
		{"256", "", false},
		{"-1", "", false},
		{"#ZZZ999", "", false},
		{"", "", false},
		{"  39  ", "39", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := normalizeAccentColor(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("normalizeAccentColor(%q)=(%q,%v), want (%q,%v)",
					tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestConfigureTheme(t *testing.T) {
	orig := accentColor
	t.Cleanup(func() { ConfigureTheme(orig) })

	ConfigureTheme("39")
	got, ok := AccentColor()
	if !ok || got != "39" {
		t.Fatalf("AccentColor()=(%q,%v)", got, ok)
	}

	// Invalid values leave the theme unchanged.
	ConfigureTheme("not-a-color")
	got, _ = AccentColor()
	if got != "39" {
		t.Fatalf("invalid accent mutated theme: %q", got)
	}
}
