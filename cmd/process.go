package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/veyra/payledger"
)

type processCmd struct {
	ingestFlags
	outputFile string
	format     string

	out io.Writer // defaults to stdout
}

func (*processCmd) Name() string { return "process" }
func (*processCmd) Synopsis() string {
	return "settles a transaction log and writes the balance sheet as CSV"
}
func (*processCmd) Usage() string {
	return `plg process [flags] <transactions.csv>

  Reads the transaction log, applies every transaction in order, and writes
  the final per-account balance sheet as CSV to stdout.

Usage Examples:
# Settle a log with the default strict policies.
$ plg process transactions.csv

# Tolerate malformed rows and apply disputes that carry a stray amount.
$ plg process -on-parse-error ignore -on-excess-field allow transactions.csv

`
}

func (p *processCmd) SetFlags(f *flag.FlagSet) {
	p.ingestFlags.SetFlags(f)
	f.StringVar(&p.outputFile, "o", "", "Write the balance sheet to this file instead of stdout.")
	f.StringVar(&p.format, "format", "csv", "Output format: csv or json.")
}

func (p *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one input file, got %d\n", f.NArg())
		return subcommands.ExitUsageError
	}
	var write func(io.Writer, *payledger.BalanceSheet) error
	switch p.format {
	case "csv":
		write = payledger.WriteBalanceSheet
	case "json":
		write = payledger.WriteBalanceSheetJSON
	default:
		fmt.Fprintf(os.Stderr, "Error: -format: unknown format %q\n", p.format)
		return subcommands.ExitUsageError
	}

	sheet, err := p.run(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	out := p.out
	if out == nil {
		out = os.Stdout
	}
	if p.outputFile != "" {
		f, err := os.Create(p.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		out = f
	}

	if err := write(out, sheet); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing balance sheet: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
