// Package bibliography implements the format and styles commands.
package bibliography

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/lepinkainen/biblio/internal/citation"
	"github.com/lepinkainen/biblio/internal/cmdutil"
	"github.com/lepinkainen/biblio/internal/config"
	"github.com/lepinkainen/biblio/internal/loader"
	"github.com/lepinkainen/biblio/internal/styles"
	"github.com/lepinkainen/biblio/internal/tui"
)

var (
	stdout      = func() io.Writer { return os.Stdout }
	selectStyle = tui.SelectStyle
	newRunID    = uuid.NewString
)

// Params holds the options of one format run.
type Params struct {
	Input string
	// Style overrides the style named in the source file and the configured default
	Style       string
	Interactive bool
	// Output is the text output file, stdout when empty
	Output      string
	Numbered    bool
	Markdown    bool
	MarkdownDir string
	Title       string
	// Heading puts a "## Heading" line above the list in the markdown note
	Heading     string
	WriteJSON   bool
	JSONOutput  string
	Overwrite   bool
}

// RunWithParams loads the source file, renders it in the resolved style and
// writes every requested output.
func RunWithParams(p Params) error {
	input := p.Input
	if input == "" {
		input = viper.GetString("bibliography.input")
	}
	if input == "" {
		return fmt.Errorf("input file is required (provide via --input flag or bibliography.input in config)")
	}

	doc, err := loader.LoadFile(input)
	if err != nil {
		return err
	}

	style, err := resolveStyle(p.Style, doc.Style)
	if err != nil {
		return err
	}

	if p.Interactive {
		style, err = pickStyle(input, doc, style)
		if err != nil {
			return err
		}
	}

	list, err := buildCitations(style, doc.Records)
	if err != nil {
		return err
	}
	slog.Info("Formatted citations", "style", style, "count", len(list))

	if err := writeText(list, p.Output, p.Numbered, p.Overwrite); err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	out := cmdutil.OutputConfig{
		Name:          name,
		MarkdownDir:   p.MarkdownDir,
		WriteMarkdown: p.Markdown,
		JSONOutput:    p.JSONOutput,
		WriteJSON:     p.WriteJSON,
	}
	if err := cmdutil.SetupOutputDir(&out); err != nil {
		return err
	}

	if p.Markdown {
		note := noteParams{
			Title:    p.Title,
			Heading:  p.Heading,
			Source:   filepath.Base(input),
			Style:    style,
			Numbered: p.Numbered,
		}
		if err := writeMarkdown(list, note, out.MarkdownDir, p.Overwrite); err != nil {
			return err
		}
	}

	if p.WriteJSON {
		if err := writeJSON(list, out.JSONOutput, p.Overwrite); err != nil {
			return err
		}
	}

	return writeToDatastore(list, newRunID())
}

// resolveStyle picks the flag value, then the source file's style, then the
// configured default.
func resolveStyle(flag, fromFile string) (styles.Style, error) {
	for _, name := range []string{flag, fromFile, config.DefaultStyle, viper.GetString("style")} {
		if strings.TrimSpace(name) != "" {
			return citation.ParseStyle(name)
		}
	}
	return styles.GOST, nil
}
