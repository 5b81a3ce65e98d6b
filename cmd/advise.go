package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/finflow/advisor"
	"github.com/etnz/finflow/renderer"
	"github.com/google/subcommands"
)

// adviseCmd holds the flags for the 'advise' subcommand.
type adviseCmd struct {
	model   string
	timeout time.Duration
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "ask the Gemini assistant for a financial advice" }
func (*adviseCmd) Usage() string {
	return `flow advise [-model <model>] [-timeout <duration>]

  Sends the summary, the holdings and the recent transactions to the Gemini
  assistant and displays its advice.

  The API key is read from $GEMINI_API_KEY, $API_KEY or $GOOGLE_API_KEY. When
  none is set nothing is sent and a configuration message is displayed.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "", "Gemini model to use. Defaults to $FINFLOW_MODEL, or "+advisor.DefaultModel)
	f.DurationVar(&c.timeout, "timeout", 0, "Maximum duration of the request. Defaults to $FINFLOW_TIMEOUT, or no limit")
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, b, d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.model != "" {
		cfg.Model = c.model
	}
	if c.timeout > 0 {
		cfg.Timeout = c.timeout
	}

	a, err := newAdvisor(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating Gemini client: %v\n", err)
		return subcommands.ExitFailure
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	d.Advice.Text = a.Advise(ctx, b.Transactions(), b.Holdings(), b.Summary())
	printMarkdown(renderer.RenderSection(d, renderer.SectionAdvice))
	return subcommands.ExitSuccess
}
