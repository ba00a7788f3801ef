package schema

import (
	"errors"
	"testing"
)

func testSchema() *Schema {
	min, max := Bounds(1, 10)
	return &Schema{
		Name: "Test",
		Fields: map[string]Field{
			"title":  {Type: String, Required: true, NonEmpty: true},
			"rating": {Type: Integer, Required: true, Min: min, Max: max},
			"tags":   {Type: StringArray},
			"active": {Type: Boolean},
		},
	}
}

func TestValidateAcceptsValidPayload(t *testing.T) {
	s := testSchema()
	values, err := s.Validate([]byte(`{"title":"Up","rating":9,"tags":["a","b"],"active":true}`))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if values["title"] != "Up" {
		t.Fatalf("unexpected title: %v", values["title"])
	}
	if values["rating"] != float64(9) {
		t.Fatalf("unexpected rating: %v", values["rating"])
	}
}

func TestValidateIgnoresUnknownFields(t *testing.T) {
	s := testSchema()
	if _, err := s.Validate([]byte(`{"title":"Up","rating":5,"extra":"ignored"}`)); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateMalformedJSONIsParseError(t *testing.T) {
	s := testSchema()
	_, err := s.Validate([]byte(`{"title": "Up",`))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if parseErr.Text != `{"title": "Up",` {
		t.Fatalf("parse error lost offending text: %q", parseErr.Text)
	}
}

func TestValidateOutOfBoundsNamesField(t *testing.T) {
	s := testSchema()
	_, err := s.Validate([]byte(`{"title":"Up","rating":15}`))
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if len(valErr.Fields) != 1 || valErr.Fields[0].Field != "rating" {
		t.Fatalf("expected single rating violation, got %#v", valErr.Fields)
	}
}

func TestValidateReportsAllMissingFields(t *testing.T) {
	s := testSchema()
	_, err := s.Validate([]byte(`{}`))
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if len(valErr.Fields) != 2 {
		t.Fatalf("expected 2 violations, got %#v", valErr.Fields)
	}
	seen := map[string]bool{}
	for _, f := range valErr.Fields {
		seen[f.Field] = true
	}
	if !seen["title"] || !seen["rating"] {
		t.Fatalf("missing-field violations incomplete: %#v", valErr.Fields)
	}
}

func TestValidateTypeMismatches(t *testing.T) {
	s := testSchema()
	cases := []struct {
		name    string
		payload string
		field   string
	}{
		{"string", `{"title":7,"rating":5}`, "title"},
		{"integer", `{"title":"Up","rating":"nine"}`, "rating"},
		{"fractional integer", `{"title":"Up","rating":7.5}`, "rating"},
		{"boolean", `{"title":"Up","rating":5,"active":"yes"}`, "active"},
		{"array", `{"title":"Up","rating":5,"tags":"not-a-list"}`, "tags"},
		{"array element", `{"title":"Up","rating":5,"tags":["ok",3]}`, "tags"},
	}
	for _, tc := range cases {
		_, err := s.Validate([]byte(tc.payload))
		var valErr *ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("%s: expected *ValidationError, got %T: %v", tc.name, err, err)
		}
		if len(valErr.Fields) != 1 || valErr.Fields[0].Field != tc.field {
			t.Fatalf("%s: expected violation on %s, got %#v", tc.name, tc.field, valErr.Fields)
		}
	}
}

func TestValidateEmptyRequiredString(t *testing.T) {
	s := testSchema()
	_, err := s.Validate([]byte(`{"title":"   ","rating":5}`))
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if valErr.Fields[0].Field != "title" {
		t.Fatalf("expected title violation, got %#v", valErr.Fields)
	}
}

func TestValidateNullRequiredFieldIsMissing(t *testing.T) {
	s := testSchema()
	_, err := s.Validate([]byte(`{"title":null,"rating":5}`))
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if valErr.Fields[0].Field != "title" {
		t.Fatalf("expected title violation, got %#v", valErr.Fields)
	}
}

func TestCrossFieldCheckRunsAfterFieldPass(t *testing.T) {
	s := testSchema()
	s.Check = func(values map[string]any) []FieldError {
		if values["rating"].(float64) > 5 {
			return []FieldError{{"rating", "too enthusiastic"}}
		}
		return nil
	}

	if _, err := s.Validate([]byte(`{"title":"Up","rating":3}`)); err != nil {
		t.Fatalf("validate: %v", err)
	}

	_, err := s.Validate([]byte(`{"title":"Up","rating":9}`))
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if valErr.Fields[0].Message != "too enthusiastic" {
		t.Fatalf("unexpected cross-field result: %#v", valErr.Fields)
	}

	// Cross-field check must not run when field-level checks already failed.
	_, err = s.Validate([]byte(`{"title":"Up","rating":"high"}`))
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	for _, f := range valErr.Fields {
		if f.Message == "too enthusiastic" {
			t.Fatalf("cross-field check ran on invalid payload: %#v", valErr.Fields)
		}
	}
}
