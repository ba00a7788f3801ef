package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

// FieldType names the JSON type a field must carry.
type FieldType string

const (
	String      FieldType = "string"
	Integer     FieldType = "integer"
	Number      FieldType = "number"
	Boolean     FieldType = "boolean"
	StringArray FieldType = "array[string]"
)

// Field describes one schema field. Bounds apply to numeric types,
// NonEmpty to strings.
type Field struct {
	Type     FieldType
	Required bool
	NonEmpty bool
	Min      *float64
	Max      *float64
}

// Bounds is a convenience constructor for a closed numeric range.
func Bounds(min, max float64) (*float64, *float64) {
	return &min, &max
}

// Schema is an explicit description of a record: field name to
// constraints, plus an optional cross-field check run after the
// per-field pass succeeds. Unknown fields in the payload are ignored.
type Schema struct {
	Name   string
	Fields map[string]Field
	Check  func(values map[string]any) []FieldError
}

// Validate parses the payload and checks it against the schema. On
// success it returns the decoded value tree. Malformed JSON yields a
// *ParseError; any constraint violation yields a *ValidationError
// listing every violated field.
func (s *Schema) Validate(data []byte) (map[string]any, error) {
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, &ParseError{Text: string(data), Err: err}
	}

	var violations []FieldError

	names := make([]string, 0, len(s.Fields))
	for name := range s.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field := s.Fields[name]
		value, present := values[name]
		if !present || value == nil {
			if field.Required {
				violations = append(violations, FieldError{name, "required field is missing"})
			}
			continue
		}
		violations = append(violations, checkValue(name, field, value)...)
	}

	if len(violations) == 0 && s.Check != nil {
		violations = append(violations, s.Check(values)...)
	}

	if len(violations) > 0 {
		return nil, &ValidationError{Schema: s.Name, Fields: violations}
	}
	return values, nil
}

func checkValue(name string, field Field, value any) []FieldError {
	switch field.Type {
	case String:
		s, ok := value.(string)
		if !ok {
			return []FieldError{{name, fmt.Sprintf("expected string, got %s", jsonTypeName(value))}}
		}
		if field.NonEmpty && strings.TrimSpace(s) == "" {
			return []FieldError{{name, "must not be empty"}}
		}

	case Boolean:
		if _, ok := value.(bool); !ok {
			return []FieldError{{name, fmt.Sprintf("expected boolean, got %s", jsonTypeName(value))}}
		}

	case Integer, Number:
		n, ok := value.(float64)
		if !ok {
			return []FieldError{{name, fmt.Sprintf("expected %s, got %s", field.Type, jsonTypeName(value))}}
		}
		if field.Type == Integer && n != math.Trunc(n) {
			return []FieldError{{name, fmt.Sprintf("expected integer, got %v", n)}}
		}
		return checkBounds(name, field, n)

	case StringArray:
		items, ok := value.([]any)
		if !ok {
			return []FieldError{{name, fmt.Sprintf("expected array of strings, got %s", jsonTypeName(value))}}
		}
		for i, item := range items {
			if _, ok := item.(string); !ok {
				return []FieldError{{name, fmt.Sprintf("element %d: expected string, got %s", i, jsonTypeName(item))}}
			}
		}

	default:
		return []FieldError{{name, fmt.Sprintf("unknown field type %q", field.Type)}}
	}
	return nil
}

func checkBounds(name string, field Field, n float64) []FieldError {
	if field.Min != nil && n < *field.Min {
		return []FieldError{{name, fmt.Sprintf("must be >= %v, got %v", *field.Min, n)}}
	}
	if field.Max != nil && n > *field.Max {
		return []FieldError{{name, fmt.Sprintf("must be <= %v, got %v", *field.Max, n)}}
	}
	return nil
}

func jsonTypeName(value any) string {
	switch value.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
