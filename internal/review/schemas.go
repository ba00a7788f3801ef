package review

import "github.com/kayz/reelcheck/internal/schema"

var ratingMin, ratingMax = schema.Bounds(1, 10)
var ageMin, ageMax = schema.Bounds(0, 18)

// MovieReviewSchema describes the JSON shape the first prompt asks for.
var MovieReviewSchema = &schema.Schema{
	Name: "MovieReview",
	Fields: map[string]schema.Field{
		"title":   {Type: schema.String, Required: true, NonEmpty: true},
		"rating":  {Type: schema.Integer, Required: true, Min: ratingMin, Max: ratingMax},
		"genre":   {Type: schema.String},
		"summary": {Type: schema.String, Required: true, NonEmpty: true},
		"pros":    {Type: schema.StringArray, Required: true},
		"cons":    {Type: schema.StringArray, Required: true},
	},
}

// KidSuitabilitySchema describes the JSON shape the chained prompt asks
// for. suggested_min_age is optional but, when present, must agree with
// the under-10 verdict.
var KidSuitabilitySchema = &schema.Schema{
	Name: "KidSuitability",
	Fields: map[string]schema.Field{
		"suitable_for_under_10": {Type: schema.Boolean, Required: true},
		"reasoning":             {Type: schema.String, Required: true, NonEmpty: true},
		"warnings":              {Type: schema.StringArray},
		"suggested_min_age":     {Type: schema.Integer, Min: ageMin, Max: ageMax},
	},
	Check: checkAgeConsistency,
}

// checkAgeConsistency rejects a suggested minimum age above 10 when the
// verdict claims the movie suits children under 10.
func checkAgeConsistency(values map[string]any) []schema.FieldError {
	suitable, ok := values["suitable_for_under_10"].(bool)
	if !ok || !suitable {
		return nil
	}
	age, ok := values["suggested_min_age"].(float64)
	if !ok {
		return nil
	}
	if age > 10 {
		return []schema.FieldError{{
			Field:   "suggested_min_age",
			Message: "inconsistent: suitable_for_under_10 is true but suggested age is above 10",
		}}
	}
	return nil
}
