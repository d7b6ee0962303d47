package bibliography

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lepinkainen/biblio/internal/fileutil"
)

func formatText(list []Citation, numbered bool) string {
	var sb strings.Builder
	for _, c := range list {
		if numbered {
			fmt.Fprintf(&sb, "%d. ", c.Position)
		}
		sb.WriteString(c.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// writeText prints the list to stdout, or writes it to path when one is given.
func writeText(list []Citation, path string, numbered, overwrite bool) error {
	text := formatText(list, numbered)

	if path == "" {
		_, err := fmt.Fprint(stdout(), text)
		return err
	}

	written, err := fileutil.WriteFileWithOverwrite(path, []byte(text), 0644, overwrite)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if !written {
		slog.Info("Output file already exists, skipping", "filename", path, "overwrite", overwrite)
		return nil
	}
	slog.Info("Wrote reference list", "filename", path, "count", len(list))
	return nil
}
