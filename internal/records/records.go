// Package records defines the bibliographic source records that citations are rendered from.
//
// Records are plain structs. NewXxx is the validating constructor; records
// built as literals are validated again when a renderer binds them.
package records

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/lepinkainen/biblio/internal/errors"
)

// Kind identifies the type of bibliographic source.
type Kind string

const (
	KindBook               Kind = "book"
	KindInternetResource   Kind = "internet_resource"
	KindArticlesCollection Kind = "articles_collection"
	KindThesisAbstract     Kind = "thesis_abstract"
	KindNewspaperArticle   Kind = "newspaper_article"
)

// Kinds lists every built-in record kind.
var Kinds = []Kind{
	KindBook,
	KindInternetResource,
	KindArticlesCollection,
	KindThesisAbstract,
	KindNewspaperArticle,
}

// Record is implemented by every source record.
type Record interface {
	// Kind returns the record's kind tag.
	Kind() Kind
	// Label returns a short human readable name, used in log output.
	Label() string
}

// Validator is implemented by records that check their own field constraints.
// Every built-in record implements it; renderers refuse records that fail it,
// so a struct literal that skips NewXxx is still caught before rendering.
type Validator interface {
	Validate() error
}

// KindOf returns the kind of rec, or "<nil>" when rec is nil.
func KindOf(rec Record) string {
	if rec == nil || (reflect.ValueOf(rec).Kind() == reflect.Pointer && reflect.ValueOf(rec).IsNil()) {
		return "<nil>"
	}
	return string(rec.Kind())
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their source-file names rather than Go names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// ValidateStruct checks the validate tags of v and converts the first failure
// into a ValidationError for the given kind.
func ValidateStruct(kind Kind, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("failed to validate %s: %w", kind, err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationError(string(kind), fe.Field(), nil, "is required")
	case "gt":
		if fe.Param() == "0" {
			return apperrors.NewValidationError(string(kind), fe.Field(), fe.Value(), "must be a positive integer")
		}
		return apperrors.NewValidationError(string(kind), fe.Field(), fe.Value(), "must be greater than "+fe.Param())
	default:
		return apperrors.NewValidationError(string(kind), fe.Field(), fe.Value(), "failed "+fe.Tag()+" check")
	}
}
