package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finflow"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the dataset in JSONL format" }
func (*exportCmd) Usage() string {
	return `flow export [-o <file>]

  Writes the holdings and transactions of the dataset, one JSON record per
  line. Without dataset, the demonstration data is exported, which is a
  convenient starting point for a dataset of your own.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Write to this file instead of the standard output")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var buf bytes.Buffer
	if err := finflow.EncodeBook(&buf, b); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding dataset: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.output == "" {
		fmt.Fprint(out, buf.String())
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing dataset: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
