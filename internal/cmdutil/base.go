package cmdutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// OutputConfig holds the file outputs of a command.
type OutputConfig struct {
	// Name is the base name used for default output files
	Name string
	// MarkdownDir is the directory for the markdown note, relative to markdownoutputdir
	MarkdownDir   string
	WriteMarkdown bool
	JSONOutput    string
	WriteJSON     bool
}

// SetupOutputDir resolves the markdown and JSON output locations against the
// configured base directories and creates them.
func SetupOutputDir(cfg *OutputConfig) error {
	if cfg.WriteMarkdown {
		baseDir := viper.GetString("markdownoutputdir")
		if baseDir == "" {
			baseDir = "markdown"
		}
		if filepath.IsAbs(cfg.MarkdownDir) {
			cfg.MarkdownDir = filepath.Clean(cfg.MarkdownDir)
		} else {
			cfg.MarkdownDir = filepath.Clean(filepath.Join(baseDir, cfg.MarkdownDir))
		}

		if err := os.MkdirAll(cfg.MarkdownDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if cfg.WriteJSON {
		if cfg.JSONOutput == "" {
			jsonBaseDir := viper.GetString("jsonoutputdir")
			if jsonBaseDir == "" {
				jsonBaseDir = "json"
			}
			cfg.JSONOutput = filepath.Clean(filepath.Join(jsonBaseDir, cfg.Name+".json"))
		}

		if err := os.MkdirAll(filepath.Dir(cfg.JSONOutput), 0755); err != nil {
			return fmt.Errorf("failed to create JSON output directory: %w", err)
		}
	}

	return nil
}
