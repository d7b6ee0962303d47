package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GoldenHelper compares sink output with files in a golden directory.
// Setting UPDATE_GOLDEN=true rewrites the golden files instead.
type GoldenHelper struct {
	t      *testing.T
	dir    string
	update bool
}

// NewGoldenHelper returns a helper reading golden files from dir.
func NewGoldenHelper(t *testing.T, dir string) *GoldenHelper {
	t.Helper()
	return &GoldenHelper{
		t:      t,
		dir:    dir,
		update: os.Getenv("UPDATE_GOLDEN") == "true",
	}
}

// read returns the golden file, or writes actual to it in update mode.
// ok is false after an update.
func (g *GoldenHelper) read(name string, actual []byte) (golden []byte, ok bool) {
	g.t.Helper()

	path := filepath.Join(g.dir, name)
	if g.update {
		require.NoError(g.t, os.MkdirAll(filepath.Dir(path), 0o755), "failed to create golden directory")
		require.NoError(g.t, os.WriteFile(path, actual, 0o644), "failed to update golden file")
		g.t.Logf("Updated golden file: %s", path)
		return nil, false
	}

	golden, err := os.ReadFile(path)
	require.NoError(g.t, err, "failed to read golden file %s", path)
	return golden, true
}

// AssertGolden compares actual byte for byte with the golden file.
func (g *GoldenHelper) AssertGolden(name string, actual []byte) {
	g.t.Helper()

	if golden, ok := g.read(name, actual); ok {
		assert.Equal(g.t, string(golden), string(actual), "content does not match golden file %s", name)
	}
}

// AssertGoldenString is AssertGolden for text.
func (g *GoldenHelper) AssertGoldenString(name, actual string) {
	g.t.Helper()
	g.AssertGolden(name, []byte(actual))
}

// AssertGoldenLines compares a reference list, one citation per line.
func (g *GoldenHelper) AssertGoldenLines(name string, lines []string) {
	g.t.Helper()

	var text string
	if len(lines) > 0 {
		text = strings.Join(lines, "\n") + "\n"
	}
	g.AssertGoldenString(name, text)
}

// AssertGoldenFile compares the file written at actualPath.
func (g *GoldenHelper) AssertGoldenFile(actualPath, name string) {
	g.t.Helper()

	actual, err := os.ReadFile(actualPath)
	require.NoError(g.t, err, "failed to read output file %s", actualPath)
	g.AssertGolden(name, actual)
}

// AssertGoldenJSON compares JSON output semantically, ignoring layout.
func (g *GoldenHelper) AssertGoldenJSON(name string, actual []byte) {
	g.t.Helper()

	if golden, ok := g.read(name, actual); ok {
		assert.JSONEq(g.t, string(golden), string(actual), "JSON does not match golden file %s", name)
	}
}
