package review

import (
	"encoding/json"

	"github.com/kayz/reelcheck/internal/schema"
)

// MovieReview is a validated structured review produced by the model.
type MovieReview struct {
	Title   string   `json:"title"`
	Rating  int      `json:"rating"`
	Genre   string   `json:"genre,omitempty"`
	Summary string   `json:"summary"`
	Pros    []string `json:"pros"`
	Cons    []string `json:"cons"`
}

// KidSuitability is a validated assessment of whether a movie suits
// children under 10. SuggestedMinAge is nil when the model omits it.
type KidSuitability struct {
	SuitableForUnder10 bool     `json:"suitable_for_under_10"`
	Reasoning          string   `json:"reasoning"`
	Warnings           []string `json:"warnings,omitempty"`
	SuggestedMinAge    *int     `json:"suggested_min_age,omitempty"`
}

// DecodeMovieReview validates the payload against the review schema and
// decodes it into a MovieReview.
func DecodeMovieReview(data []byte) (*MovieReview, error) {
	if _, err := MovieReviewSchema.Validate(data); err != nil {
		return nil, err
	}
	var r MovieReview
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, &schema.ParseError{Text: string(data), Err: err}
	}
	return &r, nil
}

// DecodeKidSuitability validates the payload against the suitability
// schema and decodes it into a KidSuitability.
func DecodeKidSuitability(data []byte) (*KidSuitability, error) {
	if _, err := KidSuitabilitySchema.Validate(data); err != nil {
		return nil, err
	}
	var s KidSuitability
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &schema.ParseError{Text: string(data), Err: err}
	}
	return &s, nil
}
