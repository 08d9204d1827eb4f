package analyzer

import (
	"sort"

	"github.com/nutriscan-app/nutriscan/internal/conditions"
)

// Warning flags a matched avoid-rule ingredient.
type Warning struct {
	Ingredient string              `json:"ingredient"`
	Severity   conditions.Severity `json:"severity"`
	Rationale  string              `json:"rationale"`
	Citation   string              `json:"citation,omitempty"`
	Condition  string              `json:"condition"`
}

// NutrientAlert flags a nutrient value above a condition's limit.
type NutrientAlert struct {
	Nutrient  string  `json:"nutrient"`
	Key       string  `json:"key"`
	Value     float64 `json:"value"`
	Limit     float64 `json:"limit"`
	Unit      string  `json:"unit"`
	Rationale string  `json:"rationale,omitempty"`
	Condition string  `json:"condition"`
}

// PositiveFinding reports a beneficial ingredient match.
type PositiveFinding struct {
	Ingredient string `json:"ingredient"`
	Benefit    string `json:"benefit"`
	Condition  string `json:"condition"`
}

// Grade classifies a score for presentation.
type Grade string

const (
	GradeGood    Grade = "good"            // score >= 80
	GradeCaution Grade = "use-caution"     // score >= 50
	GradePoor    Grade = "not-recommended" // below 50
)

// GradeForScore maps a clamped score onto its grade band.
func GradeForScore(score int) Grade {
	switch {
	case score >= 80:
		return GradeGood
	case score >= 50:
		return GradeCaution
	default:
		return GradePoor
	}
}

// Result is the full personalized assessment of one product. It is derived
// data, recomputed on every request, and safe to hand to any renderer.
type Result struct {
	Barcode         string            `json:"barcode,omitempty"`
	Score           int               `json:"score"`
	Warnings        []Warning         `json:"warnings"`
	NutrientAlerts  []NutrientAlert   `json:"nutrient_alerts"`
	Positives       []PositiveFinding `json:"positive_findings"`
	Recommendations []string          `json:"recommendations"`
	Citations       []string          `json:"citations"`
}

// Grade returns the presentation band for the result's score.
func (r *Result) Grade() Grade {
	return GradeForScore(r.Score)
}

// clampScore bounds a running score to [0, 100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// sortWarnings orders warnings by severity (critical first), preserving
// first-seen order within a severity.
func sortWarnings(warnings []Warning) {
	sort.SliceStable(warnings, func(i, j int) bool {
		return warnings[i].Severity < warnings[j].Severity
	})
}
