package errors

import (
	stdErrors "errors"
	"fmt"
)

// KindMismatchError is returned when a renderer is bound to a record of the wrong kind.
type KindMismatchError struct {
	Style string
	Want  string
	Got   string
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("%s %s renderer cannot render a %s record", e.Style, e.Want, e.Got)
}

// NewKindMismatchError creates a KindMismatchError.
func NewKindMismatchError(style, want, got string) *KindMismatchError {
	return &KindMismatchError{Style: style, Want: want, Got: got}
}

// IsKindMismatchError reports whether err is a KindMismatchError (even when wrapped).
func IsKindMismatchError(err error) bool {
	var mismatchErr *KindMismatchError
	return stdErrors.As(err, &mismatchErr)
}

// UnsupportedKindError is returned when no renderer is registered for a (style, kind) pair.
// An empty Kind means the style itself is unknown.
type UnsupportedKindError struct {
	Style string
	Kind  string
}

func (e *UnsupportedKindError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("unsupported citation style %q", e.Style)
	}
	return fmt.Sprintf("no %s renderer registered for %s records", e.Style, e.Kind)
}

// NewUnsupportedKindError creates an UnsupportedKindError.
func NewUnsupportedKindError(style, kind string) *UnsupportedKindError {
	return &UnsupportedKindError{Style: style, Kind: kind}
}

// IsUnsupportedKindError reports whether err is an UnsupportedKindError (even when wrapped).
func IsUnsupportedKindError(err error) bool {
	var unsupportedErr *UnsupportedKindError
	return stdErrors.As(err, &unsupportedErr)
}
