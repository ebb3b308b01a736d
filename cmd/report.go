package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/veyra/payledger/renderer"
)

type reportCmd struct {
	ingestFlags
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "settles a transaction log and renders the balance sheet as a report"
}
func (*reportCmd) Usage() string {
	return `plg report [flags] <transactions.csv>

  Like process, but renders the balance sheet as a human-readable markdown
  report instead of CSV.

`
}

func (p *reportCmd) SetFlags(f *flag.FlagSet) {
	p.ingestFlags.SetFlags(f)
}

func (p *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one input file, got %d\n", f.NArg())
		return subcommands.ExitUsageError
	}

	sheet, err := p.run(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BalanceSheetMarkdown(sheet))
	return subcommands.ExitSuccess
}
