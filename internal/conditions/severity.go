package conditions

import "fmt"

// Severity ranks an ingredient concern. The zero value is the most severe so
// that ascending sorts put critical findings first.
type Severity int

const (
	SeverityCritical Severity = iota // avoid completely
	SeverityHigh                     // limit strictly
	SeverityModerate                 // consume with caution
)

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityHigh:
		return "high"
	case SeverityModerate:
		return "moderate"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// ParseSeverity converts the textual form used in rule files back into a
// Severity.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "critical":
		return SeverityCritical, nil
	case "high":
		return SeverityHigh, nil
	case "moderate":
		return SeverityModerate, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", s)
	}
}

// MarshalJSON renders severities by name so analysis artifacts stay readable.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalYAML accepts the textual form in condition rule files.
func (s *Severity) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseSeverity(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
