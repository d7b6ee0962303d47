// Package testutil holds the sandbox, golden file and config helpers shared by
// biblio tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnv is a temporary directory that every helper path is resolved against.
// Paths that would leave it fail the test.
type TestEnv struct {
	t       *testing.T
	rootDir string
}

// NewTestEnv creates a sandbox removed when the test ends.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	return &TestEnv{t: t, rootDir: t.TempDir()}
}

// RootDir returns the sandbox directory.
func (e *TestEnv) RootDir() string {
	return e.rootDir
}

// Path joins elem under the sandbox and returns the absolute path.
func (e *TestEnv) Path(elem ...string) string {
	e.t.Helper()

	path := filepath.Clean(filepath.Join(e.rootDir, filepath.Join(elem...)))
	if path != e.rootDir && !strings.HasPrefix(path, e.rootDir+string(filepath.Separator)) {
		e.t.Fatalf("path %q escapes test sandbox %q", path, e.rootDir)
	}
	return path
}

// WriteFile writes content to path, creating parent directories.
func (e *TestEnv) WriteFile(path string, content []byte) {
	e.t.Helper()

	abs := e.Path(path)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		e.t.Fatalf("failed to create directory for %q: %v", abs, err)
	}
	if err := os.WriteFile(abs, content, 0o644); err != nil {
		e.t.Fatalf("failed to write %q: %v", abs, err)
	}
}

// WriteFileString is WriteFile for text, typically source files and notes.
func (e *TestEnv) WriteFileString(path, content string) {
	e.t.Helper()
	e.WriteFile(path, []byte(content))
}

// ReadFile returns the content of path or fails the test.
func (e *TestEnv) ReadFile(path string) []byte {
	e.t.Helper()

	abs := e.Path(path)
	content, err := os.ReadFile(abs)
	if err != nil {
		e.t.Fatalf("failed to read %q: %v", abs, err)
	}
	return content
}

// ReadFileString is ReadFile for text output such as reference lists.
func (e *TestEnv) ReadFileString(path string) string {
	e.t.Helper()
	return string(e.ReadFile(path))
}

// MkdirAll creates path and its parents.
func (e *TestEnv) MkdirAll(path string) {
	e.t.Helper()

	abs := e.Path(path)
	if err := os.MkdirAll(abs, 0o755); err != nil {
		e.t.Fatalf("failed to create directory %q: %v", abs, err)
	}
}

// FileExists reports whether path exists in the sandbox.
func (e *TestEnv) FileExists(path string) bool {
	e.t.Helper()

	_, err := os.Stat(e.Path(path))
	return err == nil
}

// RequireFileExists fails the test when path is missing.
func (e *TestEnv) RequireFileExists(path string) {
	e.t.Helper()

	if !e.FileExists(path) {
		e.t.Fatalf("expected file %q to exist", e.Path(path))
	}
}

// RequireFileNotExists fails the test when path exists, e.g. a skipped sink.
func (e *TestEnv) RequireFileNotExists(path string) {
	e.t.Helper()

	if e.FileExists(path) {
		e.t.Fatalf("expected file %q to not exist", e.Path(path))
	}
}
