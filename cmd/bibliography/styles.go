package bibliography

import (
	"fmt"
	"io"
	"strings"

	"github.com/lepinkainen/biblio/internal/citation"
)

// ListStyles prints every registered style with the record kinds it renders.
func ListStyles(w io.Writer) error {
	reg := citation.DefaultRegistry()
	for _, style := range reg.Styles() {
		kinds := reg.Kinds(style)
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = string(k)
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", style, strings.Join(names, ", ")); err != nil {
			return err
		}
	}
	return nil
}
