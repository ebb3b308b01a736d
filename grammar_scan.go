package payledger

import "strings"

// ScanParser is the hand-rolled grammar back-end: it splits a row on commas
// and applies the field grammars positionally. It knows nothing about
// quoting; the input format has none.
type ScanParser struct{}

// ParseHeader reports whether the line spells out the column names.
func (ScanParser) ParseHeader(opts ParseOptions, line string) bool {
	return matchHeader(opts, strings.Split(line, ","))
}

// ParseRow parses one complete row.
func (ScanParser) ParseRow(opts ParseOptions, line string) RowResult {
	return assembleRow(opts, strings.Split(line, ","))
}
