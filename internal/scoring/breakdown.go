package scoring

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CategoryScore is one rubric category inside a score breakdown.
type CategoryScore struct {
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// Breakdown is the structured assessment embedded as text within an
// evaluation.
type Breakdown struct {
	OverallScore       float64       `json:"overall_score"`
	Experience         CategoryScore `json:"experience"`
	Skills             CategoryScore `json:"skills"`
	Personality        CategoryScore `json:"personality"`
	OverallExplanation string        `json:"overall_explanation"`
}

// Category maxima from the upstream scoring rubric.
const (
	MaxOverall     = 100.0
	MaxExperience  = 40.0
	MaxSkills      = 40.0
	MaxPersonality = 20.0
)

// Categorical labels for banded scores.
const (
	BandExcellent = "Excellent"
	BandGood      = "Good"
	BandAverage   = "Average"
	BandPoor      = "Poor"
)

// Parse extracts a Breakdown from a raw score_and_explanation payload.
// The payload is expected to be a JSON document, usually wrapped in
// markdown code fences and sometimes surrounded by extra prose.
func Parse(raw string) (Breakdown, error) {
	text := stripFences(raw)

	// Narrow to the outermost braces in case extra text surrounds the JSON.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return Breakdown{}, fmt.Errorf("no JSON object found in payload")
	}

	var b Breakdown
	if err := json.Unmarshal([]byte(text[start:end+1]), &b); err != nil {
		return Breakdown{}, fmt.Errorf("failed to unmarshal score breakdown: %w", err)
	}

	return b, nil
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx != -1 && len(strings.Fields(s[:idx])) <= 1 {
		// Drop the language tag line ("json" or bare).
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}

// Band returns the categorical label for a score measured against its own
// maximum. Thresholds are percentage-based so every category shares the
// same 80/60/40 cut points regardless of its maximum.
func Band(score, max float64) string {
	if max <= 0 {
		return BandPoor
	}

	switch pct := 100 * score / max; {
	case pct >= 80:
		return BandExcellent
	case pct >= 60:
		return BandGood
	case pct >= 40:
		return BandAverage
	default:
		return BandPoor
	}
}
