package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/veyra/payledger/cmd"
)

// completions describes the CLI surface for shell completion. Complete
// returns immediately when not invoked by a shell completion hook.
var completions = &complete.Command{
	Sub: map[string]*complete.Command{
		"process": {
			Flags: map[string]complete.Predictor{
				"parser":           predict.Set{"scan", "csv"},
				"chunk-size":       predict.Something,
				"max-row-width":    predict.Something,
				"max-digits":       predict.Something,
				"on-missing-field": predict.Set{"fail", "allow", "ignore"},
				"on-excess-field":  predict.Set{"fail", "allow", "ignore"},
				"on-parse-error":   predict.Set{"fail", "allow", "ignore"},
				"keep-spaces":      predict.Nothing,
				"v":                predict.Nothing,
				"o":                predict.Files("*.csv"),
				"format":           predict.Set{"csv", "json"},
			},
			Args: predict.Files("*.csv"),
		},
		"report": {
			Flags: map[string]complete.Predictor{
				"parser":           predict.Set{"scan", "csv"},
				"on-missing-field": predict.Set{"fail", "allow", "ignore"},
				"on-excess-field":  predict.Set{"fail", "allow", "ignore"},
				"on-parse-error":   predict.Set{"fail", "allow", "ignore"},
				"v":                predict.Nothing,
			},
			Args: predict.Files("*.csv"),
		},
		"gen": {
			Flags: map[string]complete.Predictor{
				"n":      predict.Something,
				"seed":   predict.Something,
				"header": predict.Nothing,
			},
		},
		"topic": {
			Args: predict.Set{"readme", "format", "disputes", "policies", "*"},
		},
	},
}

func main() {
	completions.Complete("plg")
	cmd.LoadEnv()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands() {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
