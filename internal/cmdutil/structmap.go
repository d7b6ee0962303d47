package cmdutil

import (
	"reflect"
	"strings"
	"unicode"
)

// StructToMapOptions configures StructToMap behavior.
type StructToMapOptions struct {
	OmitFields map[string]bool
}

// StructToMap converts a struct into a row map. Keys come from the `db` tag
// when present, otherwise from the snake_cased field name. Fields tagged
// `db:"-"` and unexported fields are skipped.
func StructToMap[T any](value T, opts StructToMapOptions) map[string]any {
	result := make(map[string]any)
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return result
		}
		v = v.Elem()
	}

	appendStructFields(v, result, opts)
	return result
}

func appendStructFields(v reflect.Value, result map[string]any, opts StructToMapOptions) {
	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || opts.OmitFields[field.Name] {
			continue
		}

		value := v.Field(i)
		if field.Anonymous && value.Kind() == reflect.Struct {
			appendStructFields(value, result, opts)
			continue
		}

		key, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		switch key {
		case "-":
			continue
		case "":
			key = toSnakeCase(field.Name)
		}

		if value.Kind() == reflect.Pointer {
			if value.IsNil() {
				result[key] = nil
				continue
			}
			value = value.Elem()
		}
		result[key] = value.Interface()
	}
}

// toSnakeCase converts a Go identifier to snake_case, keeping acronyms
// together: RunID -> run_id, HTMLTitle -> html_title.
func toSnakeCase(input string) string {
	runes := []rune(input)
	var builder strings.Builder
	builder.Grow(len(runes) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
				builder.WriteRune('_')
			}
		}
		builder.WriteRune(unicode.ToLower(r))
	}

	return builder.String()
}
