// Package conditions holds the static health-condition rule table the risk
// analyzer scores products against. The table is built once at process start,
// optionally extended from a versioned YAML file, and never mutated afterwards.
package conditions

import "fmt"

// DefaultConditionID is substituted when the caller selects no conditions.
const DefaultConditionID = "generalHealth"

// AvoidRule flags an ingredient keyword a condition should stay away from.
type AvoidRule struct {
	Keyword   string   `yaml:"keyword"`
	Severity  Severity `yaml:"severity"`
	Rationale string   `yaml:"rationale"`
	Citation  string   `yaml:"citation"`
}

// PositiveRule rewards an ingredient keyword that benefits a condition.
type PositiveRule struct {
	Keyword string `yaml:"keyword"`
	Benefit string `yaml:"benefit"`
}

// NutrientLimit caps a per-100g nutrient value. Nutrient is the catalog
// nutriment key, e.g. "sugar_100g".
type NutrientLimit struct {
	Nutrient  string  `yaml:"nutrient"`
	Max       float64 `yaml:"max"`
	Unit      string  `yaml:"unit"`
	Label     string  `yaml:"label"`
	Rationale string  `yaml:"rationale"`
}

// HealthCondition is one named health profile with its complete rule set.
type HealthCondition struct {
	ID              string          `yaml:"id"`
	Name            string          `yaml:"name"`
	Icon            string          `yaml:"icon"`
	Description     string          `yaml:"description"`
	Avoid           []AvoidRule     `yaml:"avoid"`
	Positive        []PositiveRule  `yaml:"positive"`
	NutrientLimits  []NutrientLimit `yaml:"nutrient_limits"`
	Recommendations []string        `yaml:"recommendations"`
	Citations       []string        `yaml:"citations"`
}

// Registry is an immutable id -> condition lookup. Build it once at start and
// hand it to the analyzer by injection; concurrent readers need no locking.
type Registry struct {
	byID map[string]*HealthCondition
	ids  []string
}

// NewRegistry validates the given conditions and indexes them by id.
// Conditions listed later override earlier ones with the same id, which is
// how file-based rules replace builtin ones.
func NewRegistry(list []HealthCondition) (*Registry, error) {
	r := &Registry{byID: make(map[string]*HealthCondition, len(list))}
	for i := range list {
		c := list[i]
		if err := validateCondition(&c); err != nil {
			return nil, err
		}
		if _, exists := r.byID[c.ID]; !exists {
			r.ids = append(r.ids, c.ID)
		}
		r.byID[c.ID] = &c
	}
	return r, nil
}

// validateCondition rejects rule-table entries the analyzer cannot score.
func validateCondition(c *HealthCondition) error {
	if c.ID == "" {
		return fmt.Errorf("condition %q has no id", c.Name)
	}
	if c.Name == "" {
		return fmt.Errorf("condition %q has no name", c.ID)
	}
	for _, rule := range c.Avoid {
		if rule.Keyword == "" {
			return fmt.Errorf("condition %q has an avoid rule without a keyword", c.ID)
		}
	}
	for _, rule := range c.Positive {
		if rule.Keyword == "" {
			return fmt.Errorf("condition %q has a positive rule without a keyword", c.ID)
		}
	}
	for _, limit := range c.NutrientLimits {
		if limit.Nutrient == "" {
			return fmt.Errorf("condition %q has a nutrient limit without a nutrient key", c.ID)
		}
		if limit.Max < 0 {
			return fmt.Errorf("condition %q: nutrient limit %q has a negative max", c.ID, limit.Nutrient)
		}
	}
	return nil
}

// Get returns the condition for id, if present.
func (r *Registry) Get(id string) (*HealthCondition, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// IDs returns the condition ids in first-registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// All returns the conditions in first-registration order.
func (r *Registry) All() []*HealthCondition {
	out := make([]*HealthCondition, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.byID[id])
	}
	return out
}

// Len returns the number of registered conditions.
func (r *Registry) Len() int {
	return len(r.ids)
}
