package schema

import "strings"

// ExtractJSON isolates a best-effort JSON payload from raw model output.
// It strips a single optional markdown code fence (``` or ```json) and,
// if braces are present, slices from the first '{' to the last '}'.
// It never fails: text that still isn't JSON surfaces as a ParseError
// during validation.
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return strings.TrimSpace(text[start : end+1])
	}
	return text
}
