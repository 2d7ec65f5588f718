package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
default_workspace = "notes"

[workspaces]
notes = "/home/user/notes"
work = "/home/user/work"

[ui]
accent = "39"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}

	got, err := cfg.GetDefaultWorkspacePath()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/home/user/notes" {
		t.Fatalf("default workspace path=%q", got)
	}

	got, err = cfg.GetWorkspacePath("work")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/home/user/work" {
		t.Fatalf("work path=%q", got)
	}

	if _, err := cfg.GetWorkspacePath("missing"); err == nil {
		t.Fatal("expected error for unknown workspace")
	}

	if cfg.UI.Accent != "39" {
		t.Fatalf("accent=%q", cfg.UI.Accent)
	}
}

func TestLoadFromInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGetWorkspacePathNoDefault(t *testing.T) {
	cfg := &Config{}
	if _, err := cfg.GetDefaultWorkspacePath(); err == nil {
		t.Fatal("expected error with no default workspace")
	}
}

func TestStateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.toml")

	// Missing file yields a default state.
	state, err := LoadState(path)
	if err != nil {
		t.Fatal(err)
	}
	if state.ActiveWorkspace != "" || state.Version != StateVersion {
		t.Fatalf("default state=%+v", state)
	}

	state.ActiveWorkspace = "notes"
	if err := SaveState(path, state); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadState(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.ActiveWorkspace != "notes" {
		t.Fatalf("loaded state=%+v", loaded)
	}
}

func TestResolveStatePath(t *testing.T) {
	if got := ResolveStatePath("/explicit/state.toml", "", nil); got != "/explicit/state.toml" {
		t.Fatalf("explicit path=%q", got)
	}

	got := ResolveStatePath("", "/cfg/config.toml", &Config{StateFile: "custom.toml"})
	if got != filepath.Join("/cfg", "custom.toml") {
		t.Fatalf("relative state file=%q", got)
	}

	got = ResolveStatePath("", "/cfg/config.toml", &Config{})
	if got != filepath.Join("/cfg", "state.toml") {
		t.Fatalf("sibling state file=%q", got)
	}
}

func TestLoadWorkspaceConfig(t *testing.T) {
	root := t.TempDir()

	// Missing file is not an error.
	cfg, err := LoadWorkspaceConfig(root)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != nil {
		t.Fatalf("cfg=%+v, want nil for missing file", cfg)
	}
	if !cfg.IsAutoReindexEnabled() {
		t.Fatal("nil config should default auto-reindex on")
	}

	content := "preserve_extension: true\nimage_extensions:\n  - .png\n  - .webp\nauto_reindex: false\n"
	if err := os.WriteFile(filepath.Join(root, WorkspaceConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadWorkspaceConfig(root)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.PreserveExtension {
		t.Fatal("preserve_extension not parsed")
	}
	if len(cfg.ImageExtensions) != 2 || cfg.ImageExtensions[1] != ".webp" {
		t.Fatalf("image_extensions=%v", cfg.ImageExtensions)
	}
	if cfg.IsAutoReindexEnabled() {
		t.Fatal("auto_reindex: false not honored")
	}
}
