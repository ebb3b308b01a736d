package payledger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrRowTooLong reports a row longer than the configured maximum width. It is
// always fatal: an unbounded row means unbounded memory, so no strictness
// policy applies to it.
var ErrRowTooLong = errors.New("row exceeds maximum width")

// Process runs the whole pipeline over r: fixed-size chunk reads at growing
// offsets, row-boundary reconstruction, grammar dispatch under the strictness
// policies, lifecycle recording and balance mutation. It returns the
// finalized balance sheet.
//
// The run moves through four phases: waiting for the first row (which may be
// a header), streaming complete rows, draining the final unterminated row
// once the reader is exhausted, and done. No row reaches the grammar before
// it is known to be complete.
func Process(r io.ReaderAt, parser RowParser, opts ParseOptions) (*BalanceSheet, error) {
	if opts.ChunkSize <= 0 || opts.MaxRowWidth <= 0 {
		return nil, fmt.Errorf("invalid options: chunk size %d, max row width %d", opts.ChunkSize, opts.MaxRowWidth)
	}

	journal := NewJournal()
	sheet := NewBalanceSheet()

	buf := make([]byte, opts.ChunkSize)
	// tail holds the partial row carried over from the previous chunk. The
	// pipeline owns it exclusively.
	tail := make([]byte, 0, 128)
	var offset int64
	awaitingHeader := true
	var applied, dropped, skipped int

	commit := func(tx Transaction) error {
		effect, ok := journal.Record(tx, sheet.Get(tx.Client))
		if !ok {
			// Semantic rejection, not an error: the record is structurally
			// fine but the lifecycle refuses it.
			dropped++
			opts.Log.Debug().Stringer("tx", tx).Msg("transaction rejected")
			return nil
		}
		applied++
		return sheet.Apply(tx.Client, effect)
	}

	dispatch := func(row string) error {
		res := parser.ParseRow(opts, row)
		switch res.Status {
		case RowParsed:
			return commit(res.Tx)
		case RowMissingField:
			if opts.OnMissingField == Fail {
				return fmt.Errorf("row %q: missing required field", row)
			}
			skipped++
			opts.Log.Warn().Str("row", row).Msg("skipping row with missing field")
			return nil
		case RowExcessFields:
			switch opts.OnExcessField {
			case Fail:
				return fmt.Errorf("row %q: unexpected amount field", row)
			case Allow:
				return commit(res.Tx)
			default:
				skipped++
				opts.Log.Warn().Str("row", row).Msg("skipping row with unexpected amount")
				return nil
			}
		default:
			if opts.OnParseError == Fail {
				return fmt.Errorf("row %q: cannot parse", row)
			}
			skipped++
			opts.Log.Warn().Str("row", row).Msg("skipping unparsable row")
			return nil
		}
	}

	handleRow := func(row string) error {
		if len(row) > opts.MaxRowWidth {
			return fmt.Errorf("%w: %d bytes at offset %d", ErrRowTooLong, len(row), offset)
		}
		if awaitingHeader {
			awaitingHeader = false
			if parser.ParseHeader(opts, row) {
				opts.Log.Debug().Msg("header row consumed")
				return nil
			}
			// Headerless input: the first row is data.
		}
		return dispatch(row)
	}

	for {
		n, err := r.ReadAt(buf, offset)
		if n > 0 {
			offset += int64(n)
			data := buf[:n]
			for {
				i := bytes.IndexByte(data, '\n')
				if i < 0 {
					tail = append(tail, data...)
					if len(tail) > opts.MaxRowWidth {
						return nil, fmt.Errorf("%w: %d bytes at offset %d", ErrRowTooLong, len(tail), offset)
					}
					break
				}
				row := string(tail) + string(data[:i])
				tail = tail[:0]
				data = data[i+1:]
				if err := handleRow(row); err != nil {
					return nil, err
				}
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read at offset %d: %w", offset, err)
		}
		if n == 0 {
			break
		}
	}

	// Drain: the final row has no terminator but the stream's end completes it.
	if len(tail) > 0 {
		if err := handleRow(string(tail)); err != nil {
			return nil, err
		}
	}

	sheet.ComputeTotals()
	opts.Log.Debug().
		Int("applied", applied).
		Int("rejected", dropped).
		Int("skipped", skipped).
		Msg("input exhausted")
	return sheet, nil
}
