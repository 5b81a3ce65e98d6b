package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finflow/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the summary panel" }
func (*summaryCmd) Usage() string {
	return `flow summary

  Displays the total balance, income, expenses and holdings value.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, _, d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderSection(d, renderer.SectionSummary))
	return subcommands.ExitSuccess
}
