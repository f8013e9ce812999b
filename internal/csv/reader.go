// Package csv implements the parser collaborator for label input files:
// semicolon-delimited UTF-8 text with an optional byte-order mark, a header
// row, and one record per line. Rows come back as string-keyed records so
// callers never deal in column positions.
package csv

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Delimiter separates fields in label input files.
const Delimiter = ';'

// Row is one parsed record, keyed by cleaned, upper-cased header name.
type Row map[string]string

// RowError is a parse problem scoped to a single line. Row errors do not
// abort the file; structural errors do.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// File is the result of parsing one input file.
type File struct {
	Columns   []string
	Rows      []Row
	RowErrors []RowError
}

// Parse reads a semicolon-delimited file with a header row.
// Empty lines are skipped, cells are cleaned, and a UTF-8 BOM on the first
// header cell is stripped. Line-scoped parse errors are collected in
// File.RowErrors; only structural problems (no header, unreadable input)
// return an error.
func Parse(r io.Reader) (*File, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.Comma = Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty file: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	f := &File{Columns: make([]string, 0, len(header))}
	for _, h := range header {
		f.Columns = append(f.Columns, CleanHeader(h))
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				f.RowErrors = append(f.RowErrors, RowError{Line: pe.Line, Err: pe.Err})
				continue
			}
			return nil, fmt.Errorf("reading rows: %w", err)
		}

		if isEmpty(record) {
			continue
		}

		row := make(Row, len(f.Columns))
		for i, col := range f.Columns {
			if i < len(record) {
				row[col] = CleanCell(record[i])
			} else {
				row[col] = ""
			}
		}
		f.Rows = append(f.Rows, row)
	}

	return f, nil
}

// ParseString parses input held in memory. Mostly a test convenience.
func ParseString(s string) (*File, error) {
	return Parse(strings.NewReader(s))
}

// isEmpty reports whether every cell of a record is blank.
func isEmpty(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
