package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriscan-app/nutriscan/internal/catalog"
	"github.com/nutriscan-app/nutriscan/internal/conditions"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	reg, err := conditions.NewRegistry(conditions.Builtin())
	require.NoError(t, err)
	return New(reg, nil)
}

func TestAnalyzeNoProductData(t *testing.T) {
	a := newTestAnalyzer(t)

	for name, product := range map[string]*catalog.ProductRecord{
		"nil product":   nil,
		"empty product": {Barcode: "4006381333931"},
	} {
		t.Run(name, func(t *testing.T) {
			result := a.Analyze(product, []string{"cancer"})

			assert.Equal(t, 0, result.Score)
			require.Len(t, result.Warnings, 1)
			assert.Equal(t, "Unknown", result.Warnings[0].Ingredient)
			assert.Empty(t, result.NutrientAlerts)
			assert.Empty(t, result.Positives)
			assert.Empty(t, result.Recommendations)
		})
	}
}

func TestAnalyzeSodiumNitriteForCancer(t *testing.T) {
	a := newTestAnalyzer(t)
	product := &catalog.ProductRecord{
		Barcode:         "4006381333931",
		IngredientsText: "pork, water, salt, Sodium Nitrite, spices",
	}

	result := a.Analyze(product, []string{"cancer"})

	var nitrite []Warning
	for _, w := range result.Warnings {
		if w.Ingredient == "Sodium nitrite" {
			nitrite = append(nitrite, w)
		}
	}
	require.Len(t, nitrite, 1, "exactly one warning per ingredient")
	assert.Equal(t, conditions.SeverityCritical, nitrite[0].Severity)
	assert.Equal(t, "Cancer", nitrite[0].Condition)
	assert.NotEmpty(t, nitrite[0].Citation)
	assert.LessOrEqual(t, result.Score, 70, "a critical match costs at least 30 points")
}

func TestAnalyzeSugarLimitForDiabetes(t *testing.T) {
	a := newTestAnalyzer(t)

	baseline := a.Analyze(&catalog.ProductRecord{
		Barcode:    "111",
		Nutriments: map[string]float64{"sugar_100g": 4},
	}, []string{"diabetes"})

	over := a.Analyze(&catalog.ProductRecord{
		Barcode:    "111",
		Nutriments: map[string]float64{"sugar_100g": 20},
	}, []string{"diabetes"})

	var sugarAlerts []NutrientAlert
	for _, alert := range over.NutrientAlerts {
		if alert.Key == "sugar_100g" {
			sugarAlerts = append(sugarAlerts, alert)
		}
	}
	require.Len(t, sugarAlerts, 1)
	assert.Equal(t, 20.0, sugarAlerts[0].Value)
	assert.Equal(t, 5.0, sugarAlerts[0].Limit)
	assert.Equal(t, "g", sugarAlerts[0].Unit)
	assert.Equal(t, baseline.Score-10, over.Score, "one nutrient alert costs 10 points")
}

func TestAnalyzeValueAtLimitDoesNotAlert(t *testing.T) {
	a := newTestAnalyzer(t)
	result := a.Analyze(&catalog.ProductRecord{
		Barcode:    "111",
		Nutriments: map[string]float64{"sugar_100g": 5},
	}, []string{"diabetes"})
	assert.Empty(t, result.NutrientAlerts, "only values above the limit alert")
}

func TestAnalyzeDefaultsToGeneralHealth(t *testing.T) {
	a := newTestAnalyzer(t)
	product := &catalog.ProductRecord{
		Barcode:         "222",
		IngredientsText: "water, high fructose corn syrup",
	}

	result := a.Analyze(product, nil)

	require.NotEmpty(t, result.Warnings)
	for _, w := range result.Warnings {
		assert.Equal(t, "General Healthy Eating", w.Condition)
	}
	assert.NotEmpty(t, result.Recommendations)
}

func TestAnalyzeUnknownConditionIsSkipped(t *testing.T) {
	a := newTestAnalyzer(t)
	product := &catalog.ProductRecord{
		Barcode:         "222",
		IngredientsText: "water, sugar",
	}

	result := a.Analyze(product, []string{"notACondition"})

	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Recommendations)
}

func TestAnalyzeIdempotent(t *testing.T) {
	a := newTestAnalyzer(t)
	product := &catalog.ProductRecord{
		Barcode:         "333",
		IngredientsText: "milk, wheat flour, sodium nitrite, olive oil, canola oil",
		Nutriments: map[string]float64{
			"sugar_100g":  22,
			"sodium_100g": 900,
		},
	}
	ids := []string{"cancer", "diabetes", "celiac", "lactoseIntolerant"}

	first := a.Analyze(product, ids)
	second := a.Analyze(product, ids)
	assert.Equal(t, first, second)
}

func TestAnalyzeWarningOrderingAndDedup(t *testing.T) {
	reg, err := conditions.NewRegistry([]conditions.HealthCondition{
		{
			ID:   "first",
			Name: "First",
			Avoid: []conditions.AvoidRule{
				{Keyword: "caramel", Severity: conditions.SeverityModerate, Rationale: "first-moderate"},
				{Keyword: "salt", Severity: conditions.SeverityHigh, Rationale: "first-high"},
			},
		},
		{
			ID:   "second",
			Name: "Second",
			Avoid: []conditions.AvoidRule{
				{Keyword: "salt", Severity: conditions.SeverityCritical, Rationale: "second-critical"},
				{Keyword: "dye", Severity: conditions.SeverityCritical, Rationale: "second-dye"},
			},
		},
	})
	require.NoError(t, err)
	a := New(reg, nil)

	product := &catalog.ProductRecord{
		Barcode:         "444",
		IngredientsText: "caramel, salt, dye",
	}
	result := a.Analyze(product, []string{"first", "second"})

	// "salt" matched in both conditions but collapses to one warning with the
	// later condition's content; sorting is by severity with encounter order
	// breaking ties.
	require.Len(t, result.Warnings, 3)
	assert.Equal(t, "Salt", result.Warnings[0].Ingredient)
	assert.Equal(t, conditions.SeverityCritical, result.Warnings[0].Severity)
	assert.Equal(t, "second-critical", result.Warnings[0].Rationale)
	assert.Equal(t, "Second", result.Warnings[0].Condition)
	assert.Equal(t, "Dye", result.Warnings[1].Ingredient)
	assert.Equal(t, conditions.SeverityCritical, result.Warnings[1].Severity)
	assert.Equal(t, "Caramel", result.Warnings[2].Ingredient)
	assert.Equal(t, conditions.SeverityModerate, result.Warnings[2].Severity)

	// Score counts every match: -10 (caramel) -20 (salt/high) -30 (salt/critical) -30 (dye).
	assert.Equal(t, 10, result.Score)
}

func TestAnalyzePositiveFindings(t *testing.T) {
	a := newTestAnalyzer(t)
	product := &catalog.ProductRecord{
		Barcode:         "555",
		IngredientsText: "extra virgin olive oil, garlic, sea salt",
	}

	result := a.Analyze(product, []string{"cancer"})

	ingredients := make([]string, 0, len(result.Positives))
	for _, p := range result.Positives {
		ingredients = append(ingredients, p.Ingredient)
	}
	assert.Contains(t, ingredients, "Olive oil")
	assert.Contains(t, ingredients, "Garlic")
}

func TestAnalyzeScoreClamped(t *testing.T) {
	a := newTestAnalyzer(t)
	// Worst case for the cancer profile: many critical and high matches plus
	// nutrient excesses must clamp at zero, never go negative.
	product := &catalog.ProductRecord{
		Barcode: "666",
		IngredientsText: "sodium nitrite, sodium nitrate, partially hydrogenated oil, " +
			"soybean oil, canola oil, corn oil, bha, bht, tbhq, high fructose corn syrup",
		Nutriments: map[string]float64{
			"sugar_100g":         50,
			"sodium_100g":        2000,
			"saturated_fat_100g": 30,
		},
	}

	result := a.Analyze(product, []string{"cancer", "heartDisease", "highBloodPressure"})
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, GradePoor, result.Grade())
}

func TestKeywordMatches(t *testing.T) {
	testCases := []struct {
		name        string
		ingredients string
		keyword     string
		want        bool
	}{
		{"exact", "water, soybean oil, salt", "soybean oil", true},
		{"case-insensitive", "WATER, SOYBEAN OIL", "soybean oil", true},
		{"squashed keyword matches run-together text", "water, soybeanoil", "soybean oil", true},
		{"substring of a longer word", "buttermilk solids", "milk", true},
		{"absent", "water, salt", "soybean oil", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := keywordMatches(tc.ingredients, tc.keyword)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGradeForScore(t *testing.T) {
	assert.Equal(t, GradeGood, GradeForScore(100))
	assert.Equal(t, GradeGood, GradeForScore(80))
	assert.Equal(t, GradeCaution, GradeForScore(79))
	assert.Equal(t, GradeCaution, GradeForScore(50))
	assert.Equal(t, GradePoor, GradeForScore(49))
	assert.Equal(t, GradePoor, GradeForScore(0))
}
