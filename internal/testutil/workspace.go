// Package testutil provides reusable helpers for tests that need an
// on-disk workspace.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestWorkspace represents a temporary workspace for testing.
type TestWorkspace struct {
	Path  string
	t     *testing.T
	files map[string]string
}

// NewTestWorkspace creates a new workspace builder.
// Call Build() to create the actual directory.
func NewTestWorkspace(t *testing.T) *TestWorkspace {
	t.Helper()
	return &TestWorkspace{
		t:     t,
		files: make(map[string]string),
	}
}

// WithFile adds a file to the workspace. The path is relative to the
// workspace root.
func (w *TestWorkspace) WithFile(path, content string) *TestWorkspace {
	w.files[path] = content
	return w
}

// WithConfig sets the crossref.yaml content for the workspace.
func (w *TestWorkspace) WithConfig(yaml string) *TestWorkspace {
	w.files["crossref.yaml"] = yaml
	return w
}

// Build creates the workspace directory and all configured files.
// Returns the TestWorkspace for method chaining.
func (w *TestWorkspace) Build() *TestWorkspace {
	w.t.Helper()

	w.Path = w.t.TempDir()
	for path, content := range w.files {
		w.WriteFile(path, content)
	}
	return w
}

// WriteFile writes a file into the workspace, creating parent directories.
func (w *TestWorkspace) WriteFile(relPath, content string) {
	w.t.Helper()

	fullPath := filepath.Join(w.Path, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		w.t.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		w.t.Fatalf("failed to write %s: %v", relPath, err)
	}
}

// ReadFile reads a workspace file and fails the test on error.
func (w *TestWorkspace) ReadFile(relPath string) string {
	w.t.Helper()

	content, err := os.ReadFile(filepath.Join(w.Path, filepath.FromSlash(relPath)))
	if err != nil {
		w.t.Fatalf("failed to read %s: %v", relPath, err)
	}
	return string(content)
}

// Remove deletes a workspace file.
func (w *TestWorkspace) Remove(relPath string) {
	w.t.Helper()

	if err := os.Remove(filepath.Join(w.Path, filepath.FromSlash(relPath))); err != nil {
		w.t.Fatalf("failed to remove %s: %v", relPath, err)
	}
}

// AssertFileExists fails the test if the file does not exist.
func (w *TestWorkspace) AssertFileExists(relPath string) {
	w.t.Helper()

	if _, err := os.Stat(filepath.Join(w.Path, filepath.FromSlash(relPath))); os.IsNotExist(err) {
		w.t.Errorf("expected file to exist: %s", relPath)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (w *TestWorkspace) AssertFileNotExists(relPath string) {
	w.t.Helper()

	if _, err := os.Stat(filepath.Join(w.Path, filepath.FromSlash(relPath))); err == nil {
		w.t.Errorf("expected file to not exist: %s", relPath)
	}
}

// AssertFileContains fails the test if the file does not contain the substring.
func (w *TestWorkspace) AssertFileContains(relPath, substr string) {
	w.t.Helper()

	content := w.ReadFile(relPath)
	if !strings.Contains(content, substr) {
		w.t.Errorf("expected file %s to contain %q, got:\n%s", relPath, substr, content)
	}
}
