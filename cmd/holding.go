package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/finflow"
	"github.com/etnz/finflow/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	symbol string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the holdings of the portfolio" }
func (*holdingsCmd) Usage() string {
	return `flow holdings [-s <symbol>]

  Displays the symbol, name, shares, price, daily change and value of each
  holding.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Only display the holding with this symbol")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, b, d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.symbol != "" {
		h, ok := b.Holding(strings.ToUpper(c.symbol))
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: %v %q\n", finflow.ErrUnknownSymbol, c.symbol)
			return subcommands.ExitUsageError
		}
		d.Holdings = []finflow.Holding{h}
		d.Summary.HoldingsValue = h.Value()
	}
	printMarkdown(renderer.RenderSection(d, renderer.SectionHoldings))
	return subcommands.ExitSuccess
}
