package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/finflow/renderer"
	"github.com/google/subcommands"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	json  bool
	query string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the whole dashboard" }
func (*dashboardCmd) Usage() string {
	return `flow dashboard [-json] [-q <jsonpath>]

  Displays the dashboard: summary, advisor, history, holdings, expenses per
  category and recent activity.

  With -json the dashboard data is printed as JSON instead, and -q selects a
  part of it with a JSONPath expression like '$.summary.totalBalance'.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the dashboard data as JSON")
	f.StringVar(&c.query, "q", "", "JSONPath expression selecting a part of the dashboard data")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, _, d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.json && c.query == "" {
		printMarkdown(renderer.RenderDashboard(d))
		return subcommands.ExitSuccess
	}

	var data any = d
	if c.query != "" {
		data, err = query(d, c.query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error querying dashboard: %v\n", err)
			return subcommands.ExitUsageError
		}
		if s, ok := data.(string); ok {
			fmt.Fprintln(out, s)
			return subcommands.ExitSuccess
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// query evaluates a JSONPath expression on the JSON form of d.
func query(d *renderer.Dashboard, path string) (any, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var obj any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	val, err := jsonpath.Get(path, obj)
	if err != nil {
		return nil, fmt.Errorf("invalid expression %q: %w", path, err)
	}
	// a filter always yields a list, a single answer is printed alone.
	if list, ok := val.([]any); ok && len(list) == 1 {
		return list[0], nil
	}
	return val, nil
}
