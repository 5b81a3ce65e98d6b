package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/finflow/renderer"
	"github.com/google/subcommands"
)

type publishCmd struct {
	output string
	advise bool
}

func (*publishCmd) Name() string { return "publish" }

func (*publishCmd) Synopsis() string { return "generates the dashboard as a standalone HTML page" }

func (*publishCmd) Usage() string {
	return `publish [-o <file>] [-advise]

  Generates the whole dashboard as a single HTML page, readable in any
  browser without network access.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "dashboard.html", "Path of the generated HTML file")
	f.BoolVar(&c.advise, "advise", false, "Ask the Gemini assistant for an advice to include in the page")
}

func (c *publishCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, b, d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load dashboard: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.advise {
		a, err := newAdvisor(ctx, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create Gemini client: %v\n", err)
			return subcommands.ExitFailure
		}
		d.Advice.Text = a.Advise(ctx, b.Transactions(), b.Holdings(), b.Summary())
	}

	page, err := renderer.HTML(string(cfg.Language()), d.Labels.Title, renderer.RenderDashboard(d))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to render HTML: %v\n", err)
		return subcommands.ExitFailure
	}

	if dir := filepath.Dir(c.output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if err := os.WriteFile(c.output, page, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write file %s: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	logger := newLogger()
	logger.Info().Str("file", c.output).Int("bytes", len(page)).Msg("dashboard published")
	return subcommands.ExitSuccess
}
