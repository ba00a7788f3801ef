package schema

import "testing"

func TestExtractJSON(t *testing.T) {
	const want = `{"title":"Up","rating":9}`

	cases := []struct {
		name string
		in   string
	}{
		{"bare", `{"title":"Up","rating":9}`},
		{"whitespace", "\n  {\"title\":\"Up\",\"rating\":9}  \n"},
		{"fence", "```\n{\"title\":\"Up\",\"rating\":9}\n```"},
		{"json fence", "```json\n{\"title\":\"Up\",\"rating\":9}\n```"},
		{"leading prose", "Here is the review:\n{\"title\":\"Up\",\"rating\":9}"},
		{"trailing prose", "{\"title\":\"Up\",\"rating\":9}\nHope that helps!"},
		{"fence and prose", "Sure!\n```json\n{\"title\":\"Up\",\"rating\":9}\n```\nDone."},
	}
	for _, tc := range cases {
		if got := ExtractJSON(tc.in); got != want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, want)
		}
	}
}

func TestExtractJSONNoBraces(t *testing.T) {
	if got := ExtractJSON("not json at all"); got != "not json at all" {
		t.Fatalf("got %q", got)
	}
	if got := ExtractJSON("```\nplain text\n```"); got != "plain text" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractThenValidateMatchesUnwrapped(t *testing.T) {
	s := testSchema()
	bare := `{"title":"Up","rating":9}`
	fenced := "```json\n" + bare + "\n```"

	want, err := s.Validate([]byte(bare))
	if err != nil {
		t.Fatalf("validate bare: %v", err)
	}
	got, err := s.Validate([]byte(ExtractJSON(fenced)))
	if err != nil {
		t.Fatalf("validate fenced: %v", err)
	}
	if got["title"] != want["title"] || got["rating"] != want["rating"] {
		t.Fatalf("fence stripping changed semantics: %#v vs %#v", got, want)
	}
}
