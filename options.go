package payledger

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Strictness selects how the pipeline reacts to one category of malformed
// row. Each category gets its own independent policy.
type Strictness int

const (
	// Fail aborts the whole run.
	Fail Strictness = iota
	// Allow keeps a best-effort record where one exists, otherwise skips.
	Allow
	// Ignore drops the row and continues.
	Ignore
)

func (s Strictness) String() string {
	switch s {
	case Fail:
		return "fail"
	case Allow:
		return "allow"
	case Ignore:
		return "ignore"
	default:
		return "unknown"
	}
}

// ParseStrictness parses a string into a Strictness.
func ParseStrictness(s string) (Strictness, error) {
	switch s {
	case "fail":
		return Fail, nil
	case "allow":
		return Allow, nil
	case "ignore":
		return Ignore, nil
	default:
		return 0, fmt.Errorf("unknown strictness policy: %q", s)
	}
}

// ParseOptions configures the grammar and the ingestion pipeline. It is plain
// data owned by the caller; the core only reads it.
type ParseOptions struct {
	// ChunkSize is the size of each read buffer.
	ChunkSize int
	// MaxRowWidth is the fatal upper bound on a single row's byte length.
	MaxRowWidth int
	// MaxIntDigits bounds the digit count of an amount's integer part.
	MaxIntDigits int
	// OnMissingField governs rows lacking a required column.
	OnMissingField Strictness
	// OnExcessField governs rows carrying an amount for a type that must not.
	OnExcessField Strictness
	// OnParseError governs rows the grammar cannot make sense of.
	OnParseError Strictness
	// KeepSpaces disables trimming of whitespace around fields.
	KeepSpaces bool
	// Log receives row-level diagnostics. Defaults to a no-op logger.
	Log zerolog.Logger
}

// DefaultParseOptions mirror the CLI defaults.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		ChunkSize:      16 << 20,
		MaxRowWidth:    4096,
		MaxIntDigits:   200,
		OnMissingField: Fail,
		OnExcessField:  Fail,
		OnParseError:   Fail,
		Log:            zerolog.Nop(),
	}
}
