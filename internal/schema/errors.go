package schema

import (
	"fmt"
	"strings"
)

// ParseError reports text that could not be parsed as JSON at all.
// It keeps the offending text so callers can show what the model produced.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FieldError is a single field-level violation.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// ValidationError carries every violation found against a schema,
// not just the first one.
type ValidationError struct {
	Schema string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.String()
	}
	return fmt.Sprintf("%s: %d validation error(s): %s",
		e.Schema, len(e.Fields), strings.Join(msgs, "; "))
}
