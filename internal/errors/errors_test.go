package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestStopProcessingError(t *testing.T) {
	err := NewStopProcessingError("user stopped")

	if err.Error() != "user stopped" {
		t.Fatalf("Error message = %q, want %q", err.Error(), "user stopped")
	}

	if !IsStopProcessingError(err) {
		t.Fatalf("IsStopProcessingError returned false for StopProcessingError")
	}

	wrapped := stdErrors.Join(err)
	if !IsStopProcessingError(wrapped) {
		t.Fatalf("IsStopProcessingError returned false for wrapped StopProcessingError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name:     "numeric value",
			err:      NewValidationError("book", "year", 0, "must be a positive integer"),
			expected: "book: year must be a positive integer (got 0)",
		},
		{
			name:     "negative value",
			err:      NewValidationError("thesis_abstract", "pages", -1, "must be a positive integer"),
			expected: "thesis_abstract: pages must be a positive integer (got -1)",
		},
		{
			name:     "missing text",
			err:      NewValidationError("internet_resource", "link", nil, "is required"),
			expected: "internet_resource: link is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Fatalf("Error message = %q, want %q", tt.err.Error(), tt.expected)
			}
			if !IsValidationError(tt.err) {
				t.Fatalf("IsValidationError returned false for ValidationError")
			}
		})
	}
}

func TestValidationError_Wrapped(t *testing.T) {
	err := fmt.Errorf("entry 3: %w", NewValidationError("book", "pages", 0, "must be a positive integer"))

	if !IsValidationError(err) {
		t.Fatalf("IsValidationError returned false for wrapped ValidationError")
	}
	if IsKindMismatchError(err) || IsUnsupportedKindError(err) {
		t.Fatalf("ValidationError matched an unrelated error type")
	}
}

func TestKindMismatchError(t *testing.T) {
	err := NewKindMismatchError("apa", "book", "newspaper_article")

	expected := "apa book renderer cannot render a newspaper_article record"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !IsKindMismatchError(stdErrors.Join(err, stdErrors.New("context"))) {
		t.Fatalf("IsKindMismatchError returned false for wrapped KindMismatchError")
	}
}

func TestUnsupportedKindError(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		kind     string
		expected string
	}{
		{
			name:     "missing pair",
			style:    "gost",
			kind:     "patent",
			expected: "no gost renderer registered for patent records",
		},
		{
			name:     "unknown style",
			style:    "mla",
			kind:     "",
			expected: `unsupported citation style "mla"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUnsupportedKindError(tt.style, tt.kind)
			if err.Error() != tt.expected {
				t.Fatalf("Error message = %q, want %q", err.Error(), tt.expected)
			}
			if !IsUnsupportedKindError(fmt.Errorf("format: %w", err)) {
				t.Fatalf("IsUnsupportedKindError returned false for wrapped UnsupportedKindError")
			}
		})
	}
}
