// Package cmd implements the CLI application of the finflow dashboard.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/finflow"
	"github.com/etnz/finflow/advisor"
	"github.com/etnz/finflow/config"
	"github.com/etnz/finflow/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "dashboard")
	c.Register(&summaryCmd{}, "dashboard")
	c.Register(&holdingsCmd{}, "dashboard")
	c.Register(&activityCmd{}, "dashboard")
	c.Register(&publishCmd{}, "dashboard")

	c.Register(&adviseCmd{}, "advice")
	c.Register(&consoleCmd{}, "advice")

	c.Register(&exportCmd{}, "data")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("data", "", "Path to a JSONL dataset file. Defaults to $"+config.EnvData+", or the demonstration data")
var lang = flag.String("lang", "", "Language of the dashboard (es, en). Defaults to $"+config.EnvLang+", or es")
var defaultCurrency = flag.String("currency", "", "Reporting currency of the dashboard. Defaults to $"+config.EnvCurrency+", or EUR")

// Verbose enables debug logging.
var Verbose = flag.Bool("v", false, "Enable verbose (debug) logging")

// out is where subcommands print their results.
var out io.Writer = os.Stdout

// loadConfig reads the configuration from the environment, overridden by the global flags.
func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}
	if *lang != "" {
		cfg.Lang = *lang
	}
	if *defaultCurrency != "" {
		cfg.Currency = *defaultCurrency
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DecodeBook loads the book from the configured dataset, or the demonstration
// data if there is none.
func DecodeBook(cfg *config.Config) (*finflow.Book, error) {
	if cfg.DataFile == "" {
		return finflow.Seed(cfg.Currency), nil
	}
	f, err := os.Open(cfg.DataFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open dataset: %w", err)
	}
	defer f.Close()

	b, err := finflow.DecodeBook(f, cfg.Currency)
	if err != nil {
		return nil, fmt.Errorf("cannot decode dataset %q: %w", cfg.DataFile, err)
	}
	return b, nil
}

// loadDashboard loads the configuration and the book, and collects the dashboard data.
func loadDashboard() (*config.Config, *finflow.Book, *renderer.Dashboard, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	b, err := DecodeBook(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, b, renderer.NewDashboard(b, finflow.SeedHistory(cfg.Currency), cfg.Language()), nil
}

// newLogger returns the logger of the application: warnings on stderr, or
// everything with -v.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if *Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// newAdvisor creates the advisor. Without credential it has no generator and
// only answers the missing configuration message.
func newAdvisor(ctx context.Context, cfg *config.Config) (*advisor.Advisor, error) {
	a := &advisor.Advisor{
		APIKey: cfg.APIKey,
		Model:  cfg.Model,
		Lang:   cfg.Language(),
		Logger: newLogger(),
	}
	if !cfg.HasAPIKey() {
		return a, nil
	}
	g, err := advisor.NewGeminiWithKey(ctx, cfg.APIKey)
	if err != nil {
		return nil, err
	}
	a.Generator = g
	return a, nil
}
