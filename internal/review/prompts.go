package review

import (
	"encoding/json"
	"fmt"
)

// buildReviewPrompt asks for a structured review of the given movie.
// The field list mirrors MovieReviewSchema.
func buildReviewPrompt(movie string) string {
	return fmt.Sprintf(`Write a review of the movie %q in JSON format with these fields:
- title: string (movie title)
- rating: integer 1-10
- genre: string
- summary: string (brief summary)
- pros: array of strings (positive aspects)
- cons: array of strings (negative aspects)

Return ONLY the JSON, no other text.`, movie)
}

// buildSuitabilityPrompt embeds a validated review into the chained
// suitability request. The field list mirrors KidSuitabilitySchema.
func buildSuitabilityPrompt(r *MovieReview) string {
	reviewJSON, err := json.Marshal(r)
	if err != nil {
		// A validated review always marshals; fall back to the title.
		reviewJSON = []byte(fmt.Sprintf(`{"title":%q}`, r.Title))
	}

	return fmt.Sprintf(`You are a content suitability assistant. Given the following JSON movie review, determine if the movie is suitable for children under 10. Consider violence, language, fear/intensity, sexual content, substance use, and overall themes.

Return ONLY a JSON object with exactly these fields:
- suitable_for_under_10: boolean
- reasoning: string (max 3 sentences)
- warnings: array of strings (list any relevant content warnings)
- suggested_min_age: integer (0-18)

Movie review JSON:
%s`, reviewJSON)
}
