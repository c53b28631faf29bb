package ats

import "time"

// Severity levels for suggestions, low to high.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Suggestion is one piece of improvement advice attached to a result.
type Suggestion struct {
	Name     string `json:"name"`
	Advice   string `json:"advice"`
	Severity string `json:"severity"`
}

// Result is the outcome of one resume check. Immutable once returned by an
// adapter.
type Result struct {
	Score    int            `json:"score"`
	Sections []Suggestion   `json:"sections"`
	Meta     map[string]any `json:"meta"`
}

// Analysis is a persisted resume check record. The Score column duplicates
// Result.Score for queryability; the two always match.
type Analysis struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Score     int       `json:"score"`
	Result    Result    `json:"result"`
	CreatedAt time.Time `json:"createdAt"`
}
