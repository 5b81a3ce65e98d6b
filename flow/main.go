// Command flow displays a personal finance dashboard and asks the Gemini
// assistant for advice about it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/etnz/finflow/advisor"
	"github.com/etnz/finflow/cmd"
	"github.com/etnz/finflow/config"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion().Complete("flow")

	if err := config.LoadEnvFile(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()

	if sub := flag.Arg(0); sub != "" && !registered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(int(commander.Execute(ctx)))
}

// registered reports whether name is a subcommand of c.
func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		if sc.Name() == name {
			found = true
		}
	})
	return found
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	data := predict.Files("*.jsonl")
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"data":     data,
			"lang":     predict.Set{"es", "en"},
			"currency": predict.Set{"EUR", "USD", "GBP"},
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"dashboard": {Flags: map[string]complete.Predictor{"json": predict.Nothing, "q": predict.Something}},
			"summary":   {},
			"holdings":  {Flags: map[string]complete.Predictor{"s": predict.Set{"AAPL", "TSLA", "NVDA", "MSFT"}}},
			"activity":  {Flags: map[string]complete.Predictor{"n": predict.Something}},
			"publish":   {Flags: map[string]complete.Predictor{"o": predict.Files("*.html"), "advise": predict.Nothing}},
			"advise":    {Flags: map[string]complete.Predictor{"model": predict.Set{advisor.DefaultModel}, "timeout": predict.Something}},
			"console":   {},
			"export":    {Flags: map[string]complete.Predictor{"o": data}},
			"topic":     {Args: predict.Set{"readme", "dashboard", "data", "advice", "console"}},
			"help":      {},
			"commands":  {},
			"flags":     {},
		},
	}
}
