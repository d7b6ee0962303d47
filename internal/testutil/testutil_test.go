package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lepinkainen/biblio/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestEnvFiles(t *testing.T) {
	env := NewTestEnv(t)

	path := env.Path("notes", "References.md")
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, filepath.Join(env.RootDir(), "notes", "References.md"), path)
	assert.Equal(t, env.RootDir(), env.Path())

	env.RequireFileNotExists("notes/References.md")
	env.WriteFileString("notes/References.md", "1. Наука как искусство\n")
	env.RequireFileExists("notes/References.md")
	assert.Equal(t, "1. Наука как искусство\n", env.ReadFileString("notes/References.md"))
	assert.Equal(t, []byte("1. Наука как искусство\n"), env.ReadFile("notes/References.md"))

	env.MkdirAll("json/out")
	info, err := os.Stat(env.Path("json", "out"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.True(t, env.FileExists("json/out"))
	assert.False(t, env.FileExists("json/out/refs.json"))
}

func TestGoldenHelperCompares(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteFileString("golden/refs.txt", "first\nsecond\n")
	env.WriteFileString("golden/refs.json", `[{"position": 1, "text": "first"}]`)
	env.WriteFileString("golden/empty.txt", "")
	env.WriteFileString("out.txt", "first\nsecond\n")

	golden := NewGoldenHelper(t, env.Path("golden"))
	golden.AssertGolden("refs.txt", []byte("first\nsecond\n"))
	golden.AssertGoldenString("refs.txt", "first\nsecond\n")
	golden.AssertGoldenLines("refs.txt", []string{"first", "second"})
	golden.AssertGoldenLines("empty.txt", nil)
	golden.AssertGoldenFile(env.Path("out.txt"), "refs.txt")
	golden.AssertGoldenJSON("refs.json", []byte("[\n  {\"text\": \"first\", \"position\": 1}\n]\n"))
}

func TestGoldenHelperUpdateMode(t *testing.T) {
	env := NewTestEnv(t)
	t.Setenv("UPDATE_GOLDEN", "true")

	golden := NewGoldenHelper(t, env.Path("golden"))
	golden.AssertGoldenLines("nested/refs.txt", []string{"a", "b"})
	golden.AssertGoldenJSON("refs.json", []byte(`[]`))

	assert.Equal(t, "a\nb\n", env.ReadFileString("golden/nested/refs.txt"))
	assert.Equal(t, "[]", env.ReadFileString("golden/refs.json"))
}

// Config management tests

func TestResetConfig(t *testing.T) {
	origOverwrite := config.OverwriteFiles
	origStyle := config.DefaultStyle

	t.Run("inner", func(t *testing.T) {
		ResetConfig(t)

		config.OverwriteFiles = !origOverwrite
		config.DefaultStyle = "modified"

		assert.NotEqual(t, origOverwrite, config.OverwriteFiles)
		assert.NotEqual(t, origStyle, config.DefaultStyle)
	})

	// After inner test, config should be restored
	assert.Equal(t, origOverwrite, config.OverwriteFiles)
	assert.Equal(t, origStyle, config.DefaultStyle)
}

func TestSetTestConfig(t *testing.T) {
	origOverwrite := config.OverwriteFiles
	origStyle := config.DefaultStyle
	origNumbered := config.Numbered

	t.Run("inner", func(t *testing.T) {
		SetTestConfig(t)

		assert.True(t, config.OverwriteFiles)
		assert.Equal(t, "gost", config.DefaultStyle)
		assert.True(t, config.Numbered)
	})

	assert.Equal(t, origOverwrite, config.OverwriteFiles)
	assert.Equal(t, origStyle, config.DefaultStyle)
	assert.Equal(t, origNumbered, config.Numbered)
}

func TestSetTestConfigWithOptions(t *testing.T) {
	origOverwrite := config.OverwriteFiles

	t.Run("inner", func(t *testing.T) {
		SetTestConfigWithOptions(t,
			WithOverwriteFiles(false),
			WithDefaultStyle("apa"),
			WithNumbered(false),
		)

		assert.False(t, config.OverwriteFiles)
		assert.Equal(t, "apa", config.DefaultStyle)
		assert.False(t, config.Numbered)
	})

	assert.Equal(t, origOverwrite, config.OverwriteFiles)
}

func TestSetViperValue(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	t.Run("inner", func(t *testing.T) {
		SetViperValue(t, "test.key", "test-value")
		assert.Equal(t, "test-value", viper.GetString("test.key"))
	})
}

func TestSetupDatasetteDB(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	env := NewTestEnv(t)
	dbPath := SetupDatasetteDB(t, env)

	assert.True(t, viper.GetBool("datasette.enabled"))
	assert.Equal(t, "local", viper.GetString("datasette.mode"))
	assert.Equal(t, dbPath, viper.GetString("datasette.dbfile"))
}

func TestSaveRestoreConfigState(t *testing.T) {
	orig := SaveConfigState()
	t.Cleanup(func() { RestoreConfigState(orig) })

	config.OverwriteFiles = true
	config.DefaultStyle = "apa"
	config.Numbered = true

	state := SaveConfigState()

	config.OverwriteFiles = false
	config.DefaultStyle = "modified"
	config.Numbered = false

	RestoreConfigState(state)

	assert.True(t, config.OverwriteFiles)
	assert.Equal(t, "apa", config.DefaultStyle)
	assert.True(t, config.Numbered)
}
