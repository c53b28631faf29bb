package ats

import "strings"

// scoring weights
const (
	baseScore      = 60
	formatBonus    = 10
	sizeBonus      = 10
	keywordWeight  = 2
	keywordMax     = 20
	maxScore       = 100
	sizeLowerBound = 50_000
	sizeUpperBound = 500_000
)

// keywords is the fixed vocabulary the scorer looks for. Presence counts,
// frequency does not.
var keywords = []string{
	"experience", "education", "skills", "projects", "work",
	"bachelor", "master", "technical", "management",
}

// Score computes a heuristic compatibility score from file metadata and
// extracted text. It is a pure function of its inputs: same arguments,
// same Result, every time.
//
// The floor is 60, not 0: an empty unreadable file still scores 60 plus
// whatever format and size bonuses apply. Observed behavior of the scoring
// rules, kept as-is.
func Score(sizeBytes int64, ext string, text string) Result {
	score := baseScore

	normalizedExt := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if normalizedExt == "pdf" || normalizedExt == "docx" {
		score += formatBonus
	}

	if sizeBytes > sizeLowerBound && sizeBytes < sizeUpperBound {
		score += sizeBonus
	}

	lower := strings.ToLower(text)
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			matched++
		}
	}
	bonus := matched * keywordWeight
	if bonus > keywordMax {
		bonus = keywordMax
	}
	score += bonus

	if score > maxScore {
		score = maxScore
	}

	var sections []Suggestion
	if matched < 5 {
		sections = append(sections, Suggestion{
			Name:     "Keywords",
			Advice:   "Add more relevant keywords like: experience, skills, projects, education",
			Severity: SeverityHigh,
		})
	}
	if sizeBytes < sizeLowerBound {
		sections = append(sections, Suggestion{
			Name:     "Content",
			Advice:   "Your resume seems short. Add more details about your experience and projects",
			Severity: SeverityMedium,
		})
	}
	if !strings.Contains(lower, "bullet") && !strings.Contains(text, "*") {
		sections = append(sections, Suggestion{
			Name:     "Formatting",
			Advice:   "Use bullet points to list achievements and responsibilities",
			Severity: SeverityLow,
		})
	}
	if len(sections) == 0 {
		sections = []Suggestion{{
			Name:     "Overall",
			Advice:   "Good resume! Keep it updated with recent achievements.",
			Severity: SeverityLow,
		}}
	}

	return Result{
		Score:    score,
		Sections: sections,
		Meta: map[string]any{
			"matched_keywords": matched,
			"total_keywords":   len(keywords),
		},
	}
}

// FallbackResult is returned when local analysis cannot run at all. The
// user-facing flow never fails on extraction or scoring problems.
func FallbackResult() Result {
	return Result{
		Score: 70,
		Sections: []Suggestion{{
			Name:     "Analysis",
			Advice:   "Resume received. Unable to perform detailed analysis.",
			Severity: SeverityLow,
		}},
		Meta: map[string]any{},
	}
}
