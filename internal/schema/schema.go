// Package schema defines the expected CSV columns for each label mode.
//
// Validation happens at two levels:
//  1. Column validation: the file's header row must contain every required
//     column, checked once per file before any row is accepted.
//  2. Row validation: each record's required values must be non-empty,
//     checked per row by the core package.
package schema

import (
	"fmt"
	"strings"
)

// FieldSpec defines expectations for a single CSV column. Value-level
// emptiness is checked per row by the core package, not here.
type FieldSpec struct {
	Name     string // Column header name
	Required bool   // Column must exist in the CSV header
}

// ColumnSet is the set of header names present in a file, keyed lowercase.
type ColumnSet map[string]struct{}

// MakeColumnSet builds a ColumnSet from a header row.
func MakeColumnSet(columns []string) ColumnSet {
	set := make(ColumnSet, len(columns))
	for _, c := range columns {
		set[strings.ToLower(strings.TrimSpace(c))] = struct{}{}
	}
	return set
}

// Has reports whether the set contains a column, case-insensitively.
func (s ColumnSet) Has(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}

// Missing returns the required spec columns absent from the header,
// in spec order.
func Missing(columns []string, specs []FieldSpec) []string {
	set := MakeColumnSet(columns)
	var missing []string
	for _, spec := range specs {
		if spec.Required && !set.Has(spec.Name) {
			missing = append(missing, spec.Name)
		}
	}
	return missing
}

// ValidateColumns checks that all required columns exist in the header row.
// Returns an error listing every missing column name.
func ValidateColumns(columns []string, specs []FieldSpec) error {
	missing := Missing(columns, specs)
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
