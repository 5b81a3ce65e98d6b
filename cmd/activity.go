package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finflow/renderer"
	"github.com/google/subcommands"
)

// activityCmd holds the flags for the 'activity' subcommand.
type activityCmd struct {
	n int
}

func (*activityCmd) Name() string     { return "activity" }
func (*activityCmd) Synopsis() string { return "display the recent transactions" }
func (*activityCmd) Usage() string {
	return `flow activity [-n <count>]

  Displays the transactions in the order they were recorded.
`
}

func (c *activityCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 0, "Number of transactions to display, all of them if 0")
}

func (c *activityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.n < 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid number of transactions %d\n", c.n)
		return subcommands.ExitUsageError
	}
	_, b, d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.n > 0 {
		d.Activity = b.Recent(c.n)
	}
	printMarkdown(renderer.RenderSection(d, renderer.SectionActivity))
	return subcommands.ExitSuccess
}
