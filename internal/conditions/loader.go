package conditions

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// FileVersion is the rule-file schema version this build understands.
const FileVersion = 1

// File is the on-disk form of the condition rule table. Conditions defined in
// a file are appended after the builtin table, so a file entry with a builtin
// id replaces the builtin definition.
type File struct {
	Version    int               `yaml:"version"`
	Conditions []HealthCondition `yaml:"conditions"`
}

// LoadFile reads a versioned condition rule file.
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading conditions file %q: %w", path, err)
	}

	var f File
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing conditions file %q: %w", path, err)
	}
	if f.Version != FileVersion {
		return nil, fmt.Errorf("conditions file %q: unsupported version %d (want %d)", path, f.Version, FileVersion)
	}
	return &f, nil
}

// NewRegistryFromFile builds the process-wide registry: the builtin table
// extended or overridden by the conditions file at path. An empty path yields
// the builtin table alone.
func NewRegistryFromFile(path string) (*Registry, error) {
	table := Builtin()
	if path != "" {
		f, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		table = append(table, f.Conditions...)
	}
	return NewRegistry(table)
}
