package errors

import (
	stdErrors "errors"
	"fmt"
)

// ValidationError reports a record field that does not satisfy its constraint,
// e.g. a non-positive year or a missing title.
type ValidationError struct {
	Kind   string // record kind, e.g. "book"
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s %s", e.Kind, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s (got %v)", e.Kind, e.Field, e.Reason, e.Value)
}

// NewValidationError creates a ValidationError for the given kind and field.
func NewValidationError(kind, field string, value any, reason string) *ValidationError {
	return &ValidationError{
		Kind:   kind,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// IsValidationError checks if error is a ValidationError
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return stdErrors.As(err, &validationErr)
}
