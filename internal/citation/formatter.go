package citation

import (
	"slices"
	"strings"

	"github.com/lepinkainen/biblio/internal/styles"
)

// Formatter orders a set of renderers for a reference list.
type Formatter struct {
	items []styles.Renderer
}

// NewFormatter creates a Formatter over a copy of renderers.
func NewFormatter(renderers []styles.Renderer) *Formatter {
	return &Formatter{items: slices.Clone(renderers)}
}

type sortEntry struct {
	key      string
	renderer styles.Renderer
}

// Format returns the renderers sorted by rendered text. Comparison is by
// bytes, which for UTF-8 is code point order; equal texts keep their input
// order. Each renderer is rendered once to build its key.
func (f *Formatter) Format() []styles.Renderer {
	entries := make([]sortEntry, len(f.items))
	for i, r := range f.items {
		entries[i] = sortEntry{key: r.Render(), renderer: r}
	}

	slices.SortStableFunc(entries, func(a, b sortEntry) int {
		return strings.Compare(a.key, b.key)
	})

	out := make([]styles.Renderer, len(entries))
	for i, e := range entries {
		out[i] = e.renderer
	}
	return out
}
