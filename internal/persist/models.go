package persist

import "time"

// Run is one recorded chain run. JSON columns hold the validated
// payloads; failed runs keep the error text instead.
type Run struct {
	ID              string
	Movie           string
	Model           string
	Status          string // "ok" or "failed"
	ReviewJSON      string
	SuitabilityJSON string
	ErrorText       string
	CreatedAt       time.Time
}
