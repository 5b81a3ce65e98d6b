package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finflow"
	"github.com/etnz/finflow/session"
	"github.com/google/subcommands"
)

type consoleCmd struct{}

func (*consoleCmd) Name() string     { return "console" }
func (*consoleCmd) Synopsis() string { return "start an interactive dashboard session" }
func (*consoleCmd) Usage() string {
	return `flow console [<command>...]

  Starts an interactive session on the dashboard. Transactions and prices
  changed in the session are kept in memory only.

  Arguments are executed as commands before reading the standard input.
  Type 'help' in the console for the list of commands.
`
}

func (c *consoleCmd) SetFlags(f *flag.FlagSet) {}

func (c *consoleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	b, err := DecodeBook(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		return subcommands.ExitFailure
	}
	a, err := newAdvisor(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating Gemini client: %v\n", err)
		return subcommands.ExitFailure
	}

	s := session.New(out, os.Stdin, b, a)
	s.History = finflow.SeedHistory(cfg.Currency)
	s.Print = markdownPrinter
	s.Timeout = cfg.Timeout
	s.Logger = a.Logger

	if err := s.Run(ctx, f.Args()...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	// an advice still in flight is not worth waiting for.
	return subcommands.ExitSuccess
}
