package bibliography

import (
	"log/slog"
	"path/filepath"

	"github.com/lepinkainen/biblio/internal/citation"
	apperrors "github.com/lepinkainen/biblio/internal/errors"
	"github.com/lepinkainen/biblio/internal/loader"
	"github.com/lepinkainen/biblio/internal/styles"
	"github.com/lepinkainen/biblio/internal/tui"
)

// styleChoices lists every registered style with the first citation of the
// document rendered in it.
func styleChoices(doc *loader.Document) []tui.StyleChoice {
	reg := citation.DefaultRegistry()

	var choices []tui.StyleChoice
	for _, style := range reg.Styles() {
		choice := tui.StyleChoice{Style: style, Kinds: len(reg.Kinds(style))}
		list, err := citation.FormatWith(reg, style, doc.Records)
		switch {
		case err != nil:
			choice.Preview = err.Error()
		case len(list) > 0:
			choice.Preview = list[0]
		}
		choices = append(choices, choice)
	}
	return choices
}

func pickStyle(input string, doc *loader.Document, current styles.Style) (styles.Style, error) {
	result, err := selectStyle(filepath.Base(input), styleChoices(doc), current)
	if err != nil {
		return "", err
	}

	switch result.Action {
	case tui.ActionSelected:
		slog.Info("Style selected", "style", result.Style)
		return result.Style, nil
	case tui.ActionStopped:
		return "", apperrors.NewStopProcessingError("style selection stopped by user")
	default:
		return current, nil
	}
}
