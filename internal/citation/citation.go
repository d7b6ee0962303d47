// Package citation turns a mixed list of records into an ordered reference list.
package citation

import (
	"fmt"
	"sync"

	"github.com/lepinkainen/biblio/internal/records"
	"github.com/lepinkainen/biblio/internal/styles"
	"github.com/lepinkainen/biblio/internal/styles/apa"
	"github.com/lepinkainen/biblio/internal/styles/gost"
)

var (
	defaultRegistry     *styles.Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the registry holding every built-in style.
func DefaultRegistry() *styles.Registry {
	defaultRegistryOnce.Do(func() {
		reg := styles.NewRegistry()
		for _, register := range []func(*styles.Registry) error{apa.Register, gost.Register} {
			if err := register(reg); err != nil {
				panic(fmt.Sprintf("built-in citation styles: %v", err))
			}
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// Format renders recs in the given style with the default registry and
// returns the citations in reference-list order.
func Format(style styles.Style, recs []records.Record) ([]string, error) {
	return FormatWith(DefaultRegistry(), style, recs)
}

// FormatWith is Format with an explicit registry.
func FormatWith(reg *styles.Registry, style styles.Style, recs []records.Record) ([]string, error) {
	renderers, err := Dispatch(reg, style, recs)
	if err != nil {
		return nil, err
	}
	return Texts(NewFormatter(renderers).Format()), nil
}

// Texts returns the rendered text of each renderer, in order.
func Texts(renderers []styles.Renderer) []string {
	out := make([]string, len(renderers))
	for i, r := range renderers {
		out[i] = r.Render()
	}
	return out
}

// ParseStyle resolves a style name against the default registry.
func ParseStyle(name string) (styles.Style, error) {
	return DefaultRegistry().ParseStyle(name)
}
