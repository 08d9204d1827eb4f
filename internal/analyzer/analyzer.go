// Package analyzer scores a catalog product record against the user's
// selected health conditions. Analysis is pure: the same product and
// condition selection always produce the same result, and missing product
// data yields a zero-score result rather than an error.
package analyzer

import (
	"strings"
	"unicode"

	"github.com/hashicorp/go-hclog"

	"github.com/nutriscan-app/nutriscan/internal/catalog"
	"github.com/nutriscan-app/nutriscan/internal/conditions"
)

// Score deltas per finding. The running score starts at 100 and is clamped
// to [0, 100] at the end.
const (
	baseScore         = 100
	positiveBonus     = 5
	criticalPenalty   = 30
	highPenalty       = 20
	moderatePenalty   = 10
	nutrientPenalty   = 10
	unknownIngredient = "Unknown"
)

// Analyzer evaluates products against an immutable condition registry.
type Analyzer struct {
	registry *conditions.Registry
	logger   hclog.Logger
}

// New creates an Analyzer bound to a registry.
func New(registry *conditions.Registry, logger hclog.Logger) *Analyzer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Analyzer{registry: registry, logger: logger}
}

// Analyze scores product against the selected condition ids, in the order
// supplied. An empty selection falls back to the general healthy-eating
// condition; unknown ids are skipped. Analyze never fails: a product without
// ingredient or nutrient data produces a zero score with a single generic
// warning.
func (a *Analyzer) Analyze(product *catalog.ProductRecord, conditionIDs []string) *Result {
	result := &Result{
		Warnings:        []Warning{},
		NutrientAlerts:  []NutrientAlert{},
		Positives:       []PositiveFinding{},
		Recommendations: []string{},
		Citations:       []string{},
	}
	if product != nil {
		result.Barcode = product.Barcode
	}

	if product == nil || !product.HasData() {
		result.Warnings = append(result.Warnings, Warning{
			Ingredient: unknownIngredient,
			Severity:   conditions.SeverityModerate,
			Rationale:  "Product information not available",
			Condition:  "general",
		})
		return result
	}

	if len(conditionIDs) == 0 {
		conditionIDs = []string{conditions.DefaultConditionID}
	}

	ingredients := product.IngredientsText
	score := baseScore

	warningIndex := make(map[string]int) // normalized keyword -> position in result.Warnings
	recommendations := newOrderedSet()
	citations := newOrderedSet()

	for _, id := range conditionIDs {
		cond, ok := a.registry.Get(id)
		if !ok {
			a.logger.Warn("skipping unknown condition", "condition", id)
			continue
		}

		for _, rec := range cond.Recommendations {
			recommendations.add(rec)
		}
		for _, cite := range cond.Citations {
			citations.add(cite)
		}

		for _, rule := range cond.Positive {
			if !keywordMatches(ingredients, rule.Keyword) {
				continue
			}
			result.Positives = append(result.Positives, PositiveFinding{
				Ingredient: displayIngredient(rule.Keyword),
				Benefit:    rule.Benefit,
				Condition:  cond.Name,
			})
			score += positiveBonus
		}

		for _, rule := range cond.Avoid {
			if !keywordMatches(ingredients, rule.Keyword) {
				continue
			}
			w := Warning{
				Ingredient: displayIngredient(rule.Keyword),
				Severity:   rule.Severity,
				Rationale:  rule.Rationale,
				Citation:   rule.Citation,
				Condition:  cond.Name,
			}
			key := strings.ToLower(rule.Keyword)
			if pos, seen := warningIndex[key]; seen {
				// Duplicate across conditions: the later condition's
				// entry wins, but the first-seen position is kept so
				// ordering stays deterministic.
				result.Warnings[pos] = w
			} else {
				warningIndex[key] = len(result.Warnings)
				result.Warnings = append(result.Warnings, w)
			}
			score -= severityPenalty(rule.Severity)
		}

		for _, limit := range cond.NutrientLimits {
			value, ok := product.Nutrient(limit.Nutrient)
			if !ok || value <= limit.Max {
				continue
			}
			result.NutrientAlerts = append(result.NutrientAlerts, NutrientAlert{
				Nutrient:  limit.Label,
				Key:       limit.Nutrient,
				Value:     value,
				Limit:     limit.Max,
				Unit:      limit.Unit,
				Rationale: limit.Rationale,
				Condition: cond.Name,
			})
			score -= nutrientPenalty
		}
	}

	sortWarnings(result.Warnings)
	result.Score = clampScore(score)
	result.Recommendations = recommendations.values()
	result.Citations = citations.values()
	return result
}

// severityPenalty is the score deduction for one avoid-rule match.
func severityPenalty(s conditions.Severity) int {
	switch s {
	case conditions.SeverityCritical:
		return criticalPenalty
	case conditions.SeverityHigh:
		return highPenalty
	default:
		return moderatePenalty
	}
}

// keywordMatches does a case-insensitive substring match of keyword against
// the ingredient text. To tolerate formatting variance in catalog data, the
// keyword with its internal whitespace removed matches too ("soybean oil"
// also matches "soybeanoil").
func keywordMatches(ingredients, keyword string) bool {
	text := strings.ToLower(ingredients)
	kw := strings.ToLower(keyword)
	if strings.Contains(text, kw) {
		return true
	}
	squashed := squashWhitespace(kw)
	return squashed != kw && strings.Contains(text, squashed)
}

// squashWhitespace removes all whitespace from s.
func squashWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// displayIngredient capitalizes the first letter of a keyword for display.
func displayIngredient(keyword string) string {
	if keyword == "" {
		return keyword
	}
	return strings.ToUpper(keyword[:1]) + keyword[1:]
}

// orderedSet is a de-duplicating accumulator that preserves insertion order.
type orderedSet struct {
	seen    map[string]struct{}
	ordered []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.ordered = append(s.ordered, v)
}

func (s *orderedSet) values() []string {
	if s.ordered == nil {
		return []string{}
	}
	return s.ordered
}
