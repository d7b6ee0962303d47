package testutil

import (
	"testing"

	"github.com/lepinkainen/biblio/internal/config"
	"github.com/spf13/viper"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	OverwriteFiles bool
	DefaultStyle   string
	Numbered       bool
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		OverwriteFiles: config.OverwriteFiles,
		DefaultStyle:   config.DefaultStyle,
		Numbered:       config.Numbered,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.OverwriteFiles = state.OverwriteFiles
	config.DefaultStyle = state.DefaultStyle
	config.Numbered = state.Numbered
}

// ResetConfig saves the current config state and schedules restoration
// when the test completes. It also resets viper.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetTestConfig sets up a test configuration with common defaults.
// It saves the current state and restores it when the test completes.
func SetTestConfig(t *testing.T) {
	t.Helper()
	SetTestConfigWithOptions(t)
}

// SetTestConfigOption is a functional option for configuring test config.
type SetTestConfigOption func(*testConfigOptions)

type testConfigOptions struct {
	overwriteFiles bool
	defaultStyle   string
	numbered       bool
}

// WithOverwriteFiles sets the OverwriteFiles option.
func WithOverwriteFiles(v bool) SetTestConfigOption {
	return func(o *testConfigOptions) {
		o.overwriteFiles = v
	}
}

// WithDefaultStyle sets the configured citation style.
func WithDefaultStyle(style string) SetTestConfigOption {
	return func(o *testConfigOptions) {
		o.defaultStyle = style
	}
}

// WithNumbered sets whether text output is numbered.
func WithNumbered(v bool) SetTestConfigOption {
	return func(o *testConfigOptions) {
		o.numbered = v
	}
}

// SetTestConfigWithOptions sets up a test configuration with custom options.
// It saves the current state and restores it when the test completes.
func SetTestConfigWithOptions(t *testing.T, opts ...SetTestConfigOption) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	options := testConfigOptions{
		overwriteFiles: true,
		defaultStyle:   "gost",
		numbered:       true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	config.OverwriteFiles = options.overwriteFiles
	config.DefaultStyle = options.defaultStyle
	config.Numbered = options.numbered

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetViperValue sets a viper configuration value and schedules cleanup.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
		// viper has no Unset, so a previously unset key keeps the test value
		// until the next viper.Reset.
	})
}

// SetupDatasetteDB enables the local Datasette export into a sandboxed database.
// Returns the database path.
func SetupDatasetteDB(t *testing.T, env *TestEnv) string {
	t.Helper()

	dbPath := env.Path("test.db")

	SetViperValue(t, "datasette.enabled", true)
	SetViperValue(t, "datasette.mode", "local")
	SetViperValue(t, "datasette.dbfile", dbPath)

	return dbPath
}

// SetupE2EMarkdownOutput points markdown and JSON output at the test environment.
func SetupE2EMarkdownOutput(t *testing.T, env *TestEnv) {
	t.Helper()

	SetViperValue(t, "markdownoutputdir", env.RootDir())
	SetViperValue(t, "jsonoutputdir", env.RootDir())
}
