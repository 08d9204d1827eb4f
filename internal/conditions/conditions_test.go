package conditions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinRegistry(t *testing.T) {
	reg, err := NewRegistry(Builtin())
	require.NoError(t, err)

	for _, id := range []string{
		"cancer", "diabetes", "lactoseIntolerant", "celiac",
		"heartDisease", "highBloodPressure", "generalHealth",
	} {
		c, ok := reg.Get(id)
		assert.True(t, ok, "missing builtin condition %q", id)
		assert.Equal(t, id, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Avoid)
		assert.NotEmpty(t, c.Recommendations)
		assert.NotEmpty(t, c.Citations)
	}

	_, ok := reg.Get(DefaultConditionID)
	assert.True(t, ok, "default condition must exist in the builtin table")
	assert.Equal(t, 7, reg.Len())
}

func TestBuiltinScenarios(t *testing.T) {
	reg, err := NewRegistry(Builtin())
	require.NoError(t, err)

	cancer, ok := reg.Get("cancer")
	require.True(t, ok)
	var nitrite *AvoidRule
	for i := range cancer.Avoid {
		if cancer.Avoid[i].Keyword == "sodium nitrite" {
			nitrite = &cancer.Avoid[i]
		}
	}
	require.NotNil(t, nitrite, "cancer must flag sodium nitrite")
	assert.Equal(t, SeverityCritical, nitrite.Severity)

	diabetes, ok := reg.Get("diabetes")
	require.True(t, ok)
	var sugarLimit *NutrientLimit
	for i := range diabetes.NutrientLimits {
		if diabetes.NutrientLimits[i].Nutrient == "sugar_100g" {
			sugarLimit = &diabetes.NutrientLimits[i]
		}
	}
	require.NotNil(t, sugarLimit, "diabetes must cap sugar_100g")
	assert.Equal(t, 5.0, sugarLimit.Max)
}

func TestNewRegistryValidation(t *testing.T) {
	testCases := []struct {
		name string
		list []HealthCondition
	}{
		{
			name: "missing id",
			list: []HealthCondition{{Name: "No ID"}},
		},
		{
			name: "missing name",
			list: []HealthCondition{{ID: "anon"}},
		},
		{
			name: "avoid rule without keyword",
			list: []HealthCondition{{ID: "x", Name: "X", Avoid: []AvoidRule{{Severity: SeverityHigh}}}},
		},
		{
			name: "nutrient limit without key",
			list: []HealthCondition{{ID: "x", Name: "X", NutrientLimits: []NutrientLimit{{Max: 1}}}},
		},
		{
			name: "negative nutrient limit",
			list: []HealthCondition{{ID: "x", Name: "X", NutrientLimits: []NutrientLimit{{Nutrient: "sugar_100g", Max: -1}}}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegistry(tc.list)
			assert.Error(t, err)
		})
	}
}

func TestRegistryOrderAndOverride(t *testing.T) {
	list := []HealthCondition{
		{ID: "a", Name: "First"},
		{ID: "b", Name: "Second"},
		{ID: "a", Name: "First, replaced"},
	}
	reg, err := NewRegistry(list)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, reg.IDs())
	a, _ := reg.Get("a")
	assert.Equal(t, "First, replaced", a.Name)
}

func TestNewRegistryFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conditions.yml")
	content := `version: 1
conditions:
  - id: keto
    name: Ketogenic Diet
    description: Very low carbohydrate intake
    avoid:
      - keyword: sugar
        severity: critical
        rationale: Breaks ketosis
        citation: Example Clinic
    nutrient_limits:
      - nutrient: carbohydrates_100g
        max: 10
        unit: g
        label: Carbohydrates
        rationale: Keeps the body in ketosis
    recommendations:
      - Prefer fat and protein over carbohydrate
  - id: generalHealth
    name: General Healthy Eating (site policy)
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	reg, err := NewRegistryFromFile(path)
	require.NoError(t, err)

	keto, ok := reg.Get("keto")
	require.True(t, ok)
	assert.Equal(t, SeverityCritical, keto.Avoid[0].Severity)
	assert.Equal(t, 10.0, keto.NutrientLimits[0].Max)

	// File entries override builtin ids without changing registry order.
	general, ok := reg.Get("generalHealth")
	require.True(t, ok)
	assert.Equal(t, "General Healthy Eating (site policy)", general.Name)
	assert.Equal(t, 8, reg.Len())
}

func TestNewRegistryFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewRegistryFromFile(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad-version.yml")
	require.NoError(t, os.WriteFile(bad, []byte("version: 99\nconditions: []\n"), 0o644))
	_, err = NewRegistryFromFile(bad)
	assert.Error(t, err)

	badSeverity := filepath.Join(dir, "bad-severity.yml")
	require.NoError(t, os.WriteFile(badSeverity, []byte(`version: 1
conditions:
  - id: x
    name: X
    avoid:
      - keyword: sugar
        severity: fatal
`), 0o644))
	_, err = NewRegistryFromFile(badSeverity)
	assert.Error(t, err)
}

func TestParseSeverity(t *testing.T) {
	for _, s := range []Severity{SeverityCritical, SeverityHigh, SeverityModerate} {
		parsed, err := ParseSeverity(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	_, err := ParseSeverity("extreme")
	assert.Error(t, err)
}
