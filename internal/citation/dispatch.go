package citation

import (
	"fmt"

	"github.com/lepinkainen/biblio/internal/records"
	"github.com/lepinkainen/biblio/internal/styles"
)

// Dispatch binds every record to the renderer registered for its kind in
// style, keeping input order. It stops at the first record that cannot be
// bound and returns no renderers in that case; nothing is rendered here.
func Dispatch(reg *styles.Registry, style styles.Style, recs []records.Record) ([]styles.Renderer, error) {
	renderers := make([]styles.Renderer, 0, len(recs))
	for i, rec := range recs {
		r, err := reg.New(style, rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		renderers = append(renderers, r)
	}
	return renderers, nil
}
