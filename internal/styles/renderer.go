// Package styles defines citation renderers and the registry that maps
// (style, record kind) pairs to them.
package styles

import (
	"log/slog"
	"sync"

	apperrors "github.com/lepinkainen/biblio/internal/errors"
	"github.com/lepinkainen/biblio/internal/records"
)

// Style names a citation formatting standard.
type Style string

const (
	// APA is the APA-like author-date style.
	APA Style = "apa"
	// GOST is the GOST R 7.0.5-2008 style.
	GOST Style = "gost"
)

func (s Style) String() string { return string(s) }

// Renderer renders one bound record as citation text.
type Renderer interface {
	Style() Style
	Record() records.Record
	// Render returns the citation text. It is computed on the first call and
	// cached, so repeated calls are cheap and return identical text.
	Render() string
}

// Factory binds a record to a new renderer.
type Factory func(records.Record) (Renderer, error)

// Bound carries the state shared by every renderer: its style, the record of
// kind T it is bound to, and the memoized text. Renderers embed it.
type Bound[T records.Record] struct {
	style  Style
	record T
	once   sync.Once
	text   string
}

// Bind binds rec to b. Both T and *T are accepted; anything else, including
// nil, fails with a KindMismatchError. Records implementing records.Validator
// must pass validation.
func (b *Bound[T]) Bind(style Style, rec records.Record) error {
	var bound T
	switch v := any(rec).(type) {
	case T:
		bound = v
	case *T:
		if v == nil {
			return b.mismatch(style, rec)
		}
		bound = *v
	default:
		return b.mismatch(style, rec)
	}

	if v, ok := any(bound).(records.Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	b.record = bound
	b.style = style
	return nil
}

func (b *Bound[T]) mismatch(style Style, rec records.Record) error {
	var zero T
	return apperrors.NewKindMismatchError(string(style), string(zero.Kind()), records.KindOf(rec))
}

// Style returns the style the renderer was bound with.
func (b *Bound[T]) Style() Style { return b.style }

// Record returns the bound record.
func (b *Bound[T]) Record() records.Record { return b.record }

// Data returns the bound record with its concrete type.
func (b *Bound[T]) Data() T { return b.record }

// Memoize runs render once and returns the cached result on every later call.
func (b *Bound[T]) Memoize(render func(T) string) string {
	b.once.Do(func() {
		slog.Debug("Formatting citation",
			"style", b.style,
			"kind", b.record.Kind(),
			"title", b.record.Label(),
		)
		b.text = render(b.record)
	})
	return b.text
}
