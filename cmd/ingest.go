package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/veyra/payledger"
	"github.com/veyra/payledger/logger"
)

// ingestFlags are the flags shared by every command that reads a transaction
// log. Defaults come from the environment where set.
type ingestFlags struct {
	parser      string
	chunkSize   int
	maxRowWidth int
	maxDigits   int
	onMissing   string
	onExcess    string
	onParse     string
	keepSpaces  bool
	verbose     bool
}

func (p *ingestFlags) SetFlags(f *flag.FlagSet) {
	d := payledger.DefaultParseOptions()
	f.StringVar(&p.parser, "parser", "scan", "Row grammar back-end: scan or csv.")
	f.IntVar(&p.chunkSize, "chunk-size", envInt("PAYLEDGER_CHUNK_SIZE", d.ChunkSize), "Read chunk size in bytes.")
	f.IntVar(&p.maxRowWidth, "max-row-width", envInt("PAYLEDGER_MAX_ROW_WIDTH", d.MaxRowWidth), "Maximum row width in bytes. Longer rows abort the run.")
	f.IntVar(&p.maxDigits, "max-digits", envInt("PAYLEDGER_MAX_DIGITS", d.MaxIntDigits), "Maximum digits in an amount's integer part.")
	f.StringVar(&p.onMissing, "on-missing-field", payledger.Fail.String(), "Policy for rows with a missing field: fail, allow or ignore.")
	f.StringVar(&p.onExcess, "on-excess-field", payledger.Fail.String(), "Policy for rows with an unexpected amount: fail, allow or ignore.")
	f.StringVar(&p.onParse, "on-parse-error", payledger.Fail.String(), "Policy for unparsable rows: fail, allow or ignore.")
	f.BoolVar(&p.keepSpaces, "keep-spaces", false, "Do not trim spaces around fields.")
	f.BoolVar(&p.verbose, "v", false, "Verbose logging.")
}

// options resolves the flags into parse options and a grammar back-end.
func (p *ingestFlags) options() (payledger.ParseOptions, payledger.RowParser, error) {
	opts := payledger.DefaultParseOptions()
	opts.ChunkSize = p.chunkSize
	opts.MaxRowWidth = p.maxRowWidth
	opts.MaxIntDigits = p.maxDigits
	opts.KeepSpaces = p.keepSpaces

	var err error
	if opts.OnMissingField, err = payledger.ParseStrictness(p.onMissing); err != nil {
		return opts, nil, fmt.Errorf("-on-missing-field: %w", err)
	}
	if opts.OnExcessField, err = payledger.ParseStrictness(p.onExcess); err != nil {
		return opts, nil, fmt.Errorf("-on-excess-field: %w", err)
	}
	if opts.OnParseError, err = payledger.ParseStrictness(p.onParse); err != nil {
		return opts, nil, fmt.Errorf("-on-parse-error: %w", err)
	}

	var parser payledger.RowParser
	switch p.parser {
	case "scan":
		parser = payledger.ScanParser{}
	case "csv":
		parser = payledger.CSVParser{}
	default:
		return opts, nil, fmt.Errorf("-parser: unknown back-end %q", p.parser)
	}
	return opts, parser, nil
}

// run settles the named transaction log and returns the finalized sheet.
// Every run gets its own id in the logs.
func (p *ingestFlags) run(filename string) (*payledger.BalanceSheet, error) {
	opts, parser, err := p.options()
	if err != nil {
		return nil, err
	}
	opts.Log = logger.New(p.verbose).With().Str("run", uuid.NewString()).Logger()

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	opts.Log.Debug().Str("file", filename).Str("parser", p.parser).Msg("settling transaction log")
	return payledger.Process(f, parser, opts)
}
