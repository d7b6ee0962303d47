package styles

import (
	"strconv"
	"strings"

	"github.com/lepinkainen/biblio/internal/records"
)

// Template is a fixed citation template with {name} placeholders.
type Template string

// Fill substitutes placeholders in a single pass. pairs alternate between a
// placeholder name (without braces) and its value; substituted values are
// never rescanned, so text containing braces is emitted verbatim.
func (t Template) Fill(pairs ...string) string {
	oldnew := make([]string, 0, len(pairs))
	for i := 0; i+1 < len(pairs); i += 2 {
		oldnew = append(oldnew, "{"+pairs[i]+"}", pairs[i+1])
	}
	return strings.NewReplacer(oldnew...).Replace(string(t))
}

// Itoa renders a numeric field in decimal.
func Itoa(n int) string {
	return strconv.Itoa(n)
}

// FactoryOf adapts a concrete renderer constructor to a Factory.
func FactoryOf[R Renderer](newRenderer func(records.Record) (R, error)) Factory {
	return func(rec records.Record) (Renderer, error) {
		r, err := newRenderer(rec)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}
