package payledger

import (
	"encoding/csv"
	"strings"
)

// CSVParser is the generic record back-end: a real CSV reader extracts the
// fields (quoting included) and the shared field grammars take over. It
// produces the same outcomes as ScanParser on unquoted input.
type CSVParser struct{}

// ParseHeader reports whether the line is the recognized header record.
func (CSVParser) ParseHeader(opts ParseOptions, line string) bool {
	fields, err := readRecord(line)
	if err != nil {
		return false
	}
	return matchHeader(opts, fields)
}

// ParseRow parses one complete row.
func (CSVParser) ParseRow(opts ParseOptions, line string) RowResult {
	if line == "" {
		// csv.Reader reports EOF on an empty line; classify it like the
		// scanner does, as a row missing its required columns.
		return RowResult{Status: RowMissingField}
	}
	fields, err := readRecord(line)
	if err != nil {
		return RowResult{Status: RowFailed}
	}
	return assembleRow(opts, fields)
}

func readRecord(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	return r.Read()
}
