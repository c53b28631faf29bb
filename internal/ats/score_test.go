package ats

import (
	"reflect"
	"strings"
	"testing"
)

func TestScoreEmptyTextBounds(t *testing.T) {
	cases := []struct {
		name string
		size int64
		ext  string
		want int
	}{
		{"tiny txt", 10, ".txt", 60},
		{"tiny pdf", 10, ".pdf", 70},
		{"midsize pdf", 100_000, ".pdf", 80},
		{"midsize docx", 100_000, ".docx", 80},
		{"oversize pdf", 600_000, ".pdf", 70},
		{"boundary low", 50_000, ".pdf", 70},
		{"boundary high", 500_000, ".pdf", 70},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.size, tc.ext, "")
			if got.Score != tc.want {
				t.Fatalf("Score(%d, %q, empty) = %d, want %d", tc.size, tc.ext, got.Score, tc.want)
			}
			if got.Score < 60 || got.Score > 80 {
				t.Fatalf("empty-text score %d outside [60,80]", got.Score)
			}
		})
	}
}

func TestScoreKeywordBonus(t *testing.T) {
	prev := -1
	text := ""
	for _, kw := range keywords {
		text += kw + " "
		got := Score(100_000, ".pdf", text)
		if prev >= 0 && got.Score < prev {
			t.Fatalf("score decreased from %d to %d after adding %q", prev, got.Score, kw)
		}
		prev = got.Score
	}
	// All nine keywords: 60 base + 10 format + 10 size + 18 keyword bonus.
	if prev != 98 {
		t.Fatalf("full keyword score = %d, want 98", prev)
	}
}

func TestScoreExactNinety(t *testing.T) {
	text := "experience education skills projects work"
	got := Score(100_000, ".pdf", text)
	if got.Score != 90 {
		t.Fatalf("Score = %d, want 90", got.Score)
	}
	for _, s := range got.Sections {
		if s.Name == "Keywords" {
			t.Fatalf("unexpected Keywords suggestion with 5 matched keywords")
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	a := Score(123_456, ".docx", "experience with technical management")
	b := Score(123_456, ".docx", "experience with technical management")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same inputs produced different results:\n%+v\n%+v", a, b)
	}
}

func TestScoreSuggestions(t *testing.T) {
	got := Score(10, ".txt", "")
	names := suggestionNames(got)
	want := []string{"Keywords", "Content", "Formatting"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("suggestions = %v, want %v", names, want)
	}

	severities := map[string]string{}
	for _, s := range got.Sections {
		severities[s.Name] = s.Severity
	}
	if severities["Keywords"] != SeverityHigh || severities["Content"] != SeverityMedium || severities["Formatting"] != SeverityLow {
		t.Fatalf("unexpected severities: %v", severities)
	}
}

func TestScoreGoodResumeGetsOverall(t *testing.T) {
	text := "experience education skills projects work with bullet points"
	got := Score(100_000, ".pdf", text)
	names := suggestionNames(got)
	if len(names) != 1 || names[0] != "Overall" {
		t.Fatalf("suggestions = %v, want [Overall]", names)
	}
	if got.Sections[0].Severity != SeverityLow {
		t.Fatalf("Overall severity = %s, want low", got.Sections[0].Severity)
	}
}

func TestScoreAsteriskCountsAsBullets(t *testing.T) {
	got := Score(100_000, ".pdf", "experience education skills projects work * item")
	for _, s := range got.Sections {
		if s.Name == "Formatting" {
			t.Fatalf("Formatting suggested despite asterisk bullets")
		}
	}
}

func TestScoreMeta(t *testing.T) {
	got := Score(100_000, ".pdf", "experience and education")
	if got.Meta["matched_keywords"] != 2 {
		t.Fatalf("matched_keywords = %v, want 2", got.Meta["matched_keywords"])
	}
	if got.Meta["total_keywords"] != len(keywords) {
		t.Fatalf("total_keywords = %v, want %d", got.Meta["total_keywords"], len(keywords))
	}
}

func TestFallbackResult(t *testing.T) {
	got := FallbackResult()
	if got.Score != 70 {
		t.Fatalf("fallback score = %d, want 70", got.Score)
	}
	if len(got.Sections) != 1 || got.Sections[0].Name != "Analysis" || got.Sections[0].Severity != SeverityLow {
		t.Fatalf("unexpected fallback sections: %+v", got.Sections)
	}
	if got.Meta == nil || len(got.Meta) != 0 {
		t.Fatalf("fallback meta should be empty but non-nil, got %v", got.Meta)
	}
	if !strings.Contains(got.Sections[0].Advice, "Resume received") {
		t.Fatalf("unexpected fallback advice: %q", got.Sections[0].Advice)
	}
}

func suggestionNames(r Result) []string {
	names := make([]string, 0, len(r.Sections))
	for _, s := range r.Sections {
		names = append(names, s.Name)
	}
	return names
}
