package payledger

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// RowStatus classifies the outcome of parsing one row.
type RowStatus int

const (
	// RowParsed means a well-formed record was produced.
	RowParsed RowStatus = iota
	// RowFailed covers grammar-level failures: malformed syntax, unknown
	// type, an amount over the digit limit, trailing garbage.
	RowFailed
	// RowMissingField means a required positional column is absent for the
	// row's declared type.
	RowMissingField
	// RowExcessFields means the row carries an amount for a type that must
	// not have one; a best-effort record is still produced.
	RowExcessFields
)

// RowResult is the outcome of parsing one row. Tx is set for RowParsed and,
// best effort, for RowExcessFields so an Allow policy can still use it.
type RowResult struct {
	Status RowStatus
	Tx     Transaction
}

// RowParser turns physical rows into transaction records. Implementations
// receive one complete row at a time; the ingestion pipeline owns
// row-boundary reconstruction and never hands over a partial row.
type RowParser interface {
	// ParseHeader reports whether the line is a recognized header row. The
	// pipeline consults it once, on the first row of the stream, to decide
	// whether that row is data.
	ParseHeader(opts ParseOptions, line string) bool
	// ParseRow parses one complete row.
	ParseRow(opts ParseOptions, line string) RowResult
}

// rowColumns are the positional columns of the input format.
var rowColumns = [...]string{"type", "client", "tx", "amount"}

// assembleRow applies the field grammars positionally and classifies the
// result. Both grammar back-ends converge here after field extraction.
// Columns beyond the fourth are ignored, missing trailing columns read as
// empty.
func assembleRow(opts ParseOptions, fields []string) RowResult {
	var f [len(rowColumns)]string
	for i := range f {
		if i < len(fields) {
			f[i] = trimField(opts, fields[i])
		}
	}

	if f[0] == "" {
		return RowResult{Status: RowMissingField}
	}
	typ, known := ParseTxType(f[0])
	if !known {
		return RowResult{Status: RowFailed}
	}

	if f[1] == "" {
		return RowResult{Status: RowMissingField}
	}
	client, err := strconv.ParseUint(f[1], 10, 16)
	if err != nil {
		return RowResult{Status: RowFailed}
	}

	if f[2] == "" {
		return RowResult{Status: RowMissingField}
	}
	txID, err := strconv.ParseUint(f[2], 10, 32)
	if err != nil {
		return RowResult{Status: RowFailed}
	}

	tx := Transaction{Type: typ, Client: uint16(client), Tx: uint32(txID)}

	hasAmount := f[3] != ""
	if hasAmount {
		amount, err := parseUnsignedAmount(opts, f[3])
		if err != nil {
			return RowResult{Status: RowFailed}
		}
		tx.Amount = amount
	}

	switch {
	case typ.HasAmount() && !hasAmount:
		return RowResult{Status: RowMissingField}
	case !typ.HasAmount() && hasAmount:
		tx.Amount = Amount{}
		return RowResult{Status: RowExcessFields, Tx: tx}
	}
	return RowResult{Status: RowParsed, Tx: tx}
}

// matchHeader reports whether the fields spell out the expected column names.
// Trailing columns may be absent, extras are ignored, same as for data rows.
func matchHeader(opts ParseOptions, fields []string) bool {
	if len(fields) == 0 || trimField(opts, fields[0]) != rowColumns[0] {
		return false
	}
	for i, f := range fields {
		if i >= len(rowColumns) {
			break
		}
		if trimField(opts, f) != rowColumns[i] {
			return false
		}
	}
	return true
}

func trimField(opts ParseOptions, s string) string {
	if opts.KeepSpaces {
		return s
	}
	return strings.TrimSpace(s)
}

// errAmountTooWide marks an amount whose integer part exceeds the configured
// digit bound. It fails the whole row rather than the single field.
var errAmountTooWide = errors.New("amount integer part exceeds digit limit")

// parseUnsignedAmount parses the amount grammar for values read off the wire:
// digit run, optional '.' and fraction digits. A leading '-' is rejected.
// Fraction digits beyond the fourth are truncated, never rounded; shorter
// fractions are taken as-is, so ".1" means 1 fractional unit.
func parseUnsignedAmount(opts ParseOptions, s string) (Amount, error) {
	neg, integer, frac, err := parseAmountParts(opts, s)
	if err != nil {
		return Amount{}, err
	}
	if neg {
		return Amount{}, fmt.Errorf("amount %q: negative value not allowed", s)
	}
	return Amount{d: scaledDecimal(false, integer, frac)}, nil
}

// parseSignedAmount parses the amount grammar with an optional leading sign.
func parseSignedAmount(opts ParseOptions, s string) (SignedAmount, error) {
	neg, integer, frac, err := parseAmountParts(opts, s)
	if err != nil {
		return SignedAmount{}, err
	}
	return SignedAmount{d: scaledDecimal(neg, integer, frac)}, nil
}

func parseAmountParts(opts ParseOptions, s string) (neg bool, integer *big.Int, frac uint32, err error) {
	rest := s
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		neg = rest[0] == '-'
		rest = rest[1:]
	}

	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 {
		return false, nil, 0, fmt.Errorf("amount %q: missing integer digits", s)
	}
	if i > opts.MaxIntDigits {
		return false, nil, 0, fmt.Errorf("amount %q: %w (%d > %d)", s, errAmountTooWide, i, opts.MaxIntDigits)
	}
	intDigits := rest[:i]
	rest = rest[i:]

	if len(rest) > 0 {
		if rest[0] != '.' {
			return false, nil, 0, fmt.Errorf("amount %q: trailing garbage", s)
		}
		fracDigits := rest[1:]
		for j := 0; j < len(fracDigits); j++ {
			if fracDigits[j] < '0' || fracDigits[j] > '9' {
				return false, nil, 0, fmt.Errorf("amount %q: malformed fraction", s)
			}
		}
		if len(fracDigits) == 0 {
			return false, nil, 0, fmt.Errorf("amount %q: missing fraction digits", s)
		}
		if len(fracDigits) > fracScaleDigits {
			fracDigits = fracDigits[:fracScaleDigits]
		}
		v, perr := strconv.ParseUint(fracDigits, 10, 32)
		if perr != nil {
			return false, nil, 0, fmt.Errorf("amount %q: malformed fraction", s)
		}
		frac = uint32(v)
	}

	integer, ok := new(big.Int).SetString(intDigits, 10)
	if !ok {
		return false, nil, 0, fmt.Errorf("amount %q: malformed integer part", s)
	}
	return neg, integer, frac, nil
}
