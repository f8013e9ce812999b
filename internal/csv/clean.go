package csv

import "strings"

// bom is the UTF-8 byte-order mark some spreadsheet exports prepend.
const bom = "\uFEFF"

// CleanHeader normalizes a header cell: strips a leading BOM, surrounding
// whitespace, and the Excel formula wrapper some exports add (`="FOO"`).
// The result is upper-cased so headers match the schema's column names
// regardless of how the file spells them; row keys carry the same casing.
func CleanHeader(s string) string {
	s = strings.TrimPrefix(s, bom)
	return strings.ToUpper(CleanCell(s))
}

// CleanCell normalizes a data cell: trims whitespace and unwraps the Excel
// formula form `="value"` that protects leading zeros in exported files.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) && len(s) >= 3 {
		s = s[2 : len(s)-1]
	}
	return strings.TrimSpace(s)
}
