package styles

import (
	"fmt"
	"slices"
	"strings"

	apperrors "github.com/lepinkainen/biblio/internal/errors"
	"github.com/lepinkainen/biblio/internal/records"
)

// Registry maps (style, kind) pairs to renderer factories.
// It is populated at startup and only read afterwards.
type Registry struct {
	factories map[Style]map[records.Kind]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[Style]map[records.Kind]Factory),
	}
}

// Register adds the factory for a (style, kind) pair. Registering the same pair twice is an error.
func (r *Registry) Register(style Style, kind records.Kind, factory Factory) error {
	if factory == nil {
		return fmt.Errorf("nil factory for %s/%s", style, kind)
	}

	byKind, ok := r.factories[style]
	if !ok {
		byKind = make(map[records.Kind]Factory)
		r.factories[style] = byKind
	}
	if _, exists := byKind[kind]; exists {
		return fmt.Errorf("renderer for %s/%s already registered", style, kind)
	}

	byKind[kind] = factory
	return nil
}

// Lookup returns the factory for a (style, kind) pair.
func (r *Registry) Lookup(style Style, kind records.Kind) (Factory, error) {
	factory, ok := r.factories[style][kind]
	if !ok {
		return nil, apperrors.NewUnsupportedKindError(string(style), string(kind))
	}
	return factory, nil
}

// New looks up the factory for rec's kind and binds rec to a new renderer.
func (r *Registry) New(style Style, rec records.Record) (Renderer, error) {
	if kind := records.KindOf(rec); kind == "<nil>" {
		return nil, apperrors.NewUnsupportedKindError(string(style), kind)
	}

	factory, err := r.Lookup(style, rec.Kind())
	if err != nil {
		return nil, err
	}
	return factory(rec)
}

// Styles returns the registered styles in sorted order.
func (r *Registry) Styles() []Style {
	out := make([]Style, 0, len(r.factories))
	for style := range r.factories {
		out = append(out, style)
	}
	slices.Sort(out)
	return out
}

// Kinds returns the kinds registered for style in sorted order.
func (r *Registry) Kinds(style Style) []records.Kind {
	out := make([]records.Kind, 0, len(r.factories[style]))
	for kind := range r.factories[style] {
		out = append(out, kind)
	}
	slices.Sort(out)
	return out
}

// ParseStyle resolves a user supplied style name (case-insensitive) against
// the registered styles.
func (r *Registry) ParseStyle(name string) (Style, error) {
	style := Style(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := r.factories[style]; !ok {
		return "", apperrors.NewUnsupportedKindError(name, "")
	}
	return style, nil
}
