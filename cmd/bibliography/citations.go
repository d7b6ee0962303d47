package bibliography

import (
	"github.com/lepinkainen/biblio/internal/citation"
	"github.com/lepinkainen/biblio/internal/records"
	"github.com/lepinkainen/biblio/internal/styles"
)

// Citation is one entry of the ordered reference list.
type Citation struct {
	Position int    `json:"position"`
	Style    string `json:"style"`
	Kind     string `json:"kind"`
	Text     string `json:"text"`
}

func buildCitations(style styles.Style, recs []records.Record) ([]Citation, error) {
	renderers, err := citation.Dispatch(citation.DefaultRegistry(), style, recs)
	if err != nil {
		return nil, err
	}

	sorted := citation.NewFormatter(renderers).Format()
	list := make([]Citation, len(sorted))
	for i, r := range sorted {
		list[i] = Citation{
			Position: i + 1,
			Style:    r.Style().String(),
			Kind:     string(r.Record().Kind()),
			Text:     r.Render(),
		}
	}
	return list, nil
}

func texts(list []Citation) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.Text
	}
	return out
}
