package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoValidRows is returned when validation leaves zero usable rows, or a
// generation request arrives empty.
var ErrNoValidRows = errors.New("no valid rows to generate labels from")

// ErrNoPages is returned when every surviving row produced zero pages
// (possible in product mode, where an unusable copy count skips the row).
var ErrNoPages = errors.New("no label pages were produced")

// SchemaError reports required columns missing from the file's header row.
// It aborts the whole batch before any row is accepted.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// EncodingError reports a payload that cannot be encoded in its symbology,
// e.g. a non-numeric or wrong-length EAN-13 string. It fails the row, never
// the batch.
type EncodingError struct {
	Symbology Symbology
	Payload   string
	Err       error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot encode %q as %s: %v", e.Payload, e.Symbology, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// DependencyError reports a collaborator (barcode renderer, document writer)
// that failed to initialize. Generation is disabled until resolved.
type DependencyError struct {
	Dependency string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("dependency %s failed to initialize: %v", e.Dependency, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }
