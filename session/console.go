// Package session runs the interactive dashboard console.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/etnz/finflow"
	"github.com/etnz/finflow/advisor"
	"github.com/etnz/finflow/date"
	"github.com/etnz/finflow/renderer"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Console is an interactive session on a book.
//
// The book is only used by the console loop. An advice request runs in the
// background on a snapshot of the book taken when it starts, so the book can
// keep changing meanwhile.
type Console struct {
	w io.Writer
	r *bufio.Reader

	Book    *finflow.Book
	History finflow.History
	Advisor *advisor.Advisor
	Lang    finflow.Lang
	// Print writes a markdown document, defaults to writing it as is.
	Print func(w io.Writer, markdown string)
	// Today returns the date of new transactions.
	Today func() date.Date
	// Timeout of an advice request, zero for none.
	Timeout time.Duration
	Logger  zerolog.Logger

	flight *Flight
	mu     sync.Mutex
	advice string
	done   chan struct{} // closed when the last request is over
}

// New creates a new Console reading commands from r and writing to w.
func New(w io.Writer, r io.Reader, b *finflow.Book, a *advisor.Advisor) *Console {
	return &Console{
		w:       w,
		r:       bufio.NewReader(r),
		Book:    b,
		Advisor: a,
		Lang:    a.Lang,
		Print:   func(w io.Writer, md string) { fmt.Fprint(w, md) },
		Today:   date.Today,
		Logger:  zerolog.Nop(),
		flight:  NewFlight(),
	}
}

const prompt = "flow> "

// Run starts the interactive loop. Commands are executed first, then lines
// are read until "bye" or the end of the input.
func (c *Console) Run(ctx context.Context, commands ...string) error {
	fmt.Fprintln(c.w, "Welcome to the finflow console. Type 'help' for the commands, 'bye' to exit.")

	for {
		fmt.Fprint(c.w, prompt)
		var input string

		// Flush commands from the list and then ask for the user.
		if len(commands) > 0 {
			input, commands = commands[0], commands[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(c.w, input)
		} else {
			var err error
			input, err = c.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					fmt.Fprintln(c.w)
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}
		if err := c.Exec(ctx, input); err != nil {
			fmt.Fprintf(c.w, "Error: %v\n", err)
		}
	}
}

// Exec executes a single command line.
func (c *Console) Exec(ctx context.Context, line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "summary":
		c.printSection(renderer.SectionSummary, c.dashboard())
	case "holdings":
		c.printSection(renderer.SectionHoldings, c.dashboard())
	case "history":
		c.printSection(renderer.SectionHistory, c.dashboard())
	case "categories":
		c.printSection(renderer.SectionCategories, c.dashboard())
	case "activity":
		return c.activity(args)
	case "dashboard":
		c.Print(c.w, renderer.RenderDashboard(c.dashboard()))
	case "add":
		return c.add(args)
	case "price":
		return c.price(args)
	case "advise":
		c.advise(ctx)
	case "wait":
		if err := c.Wait(ctx); err != nil {
			return err
		}
		c.printSection(renderer.SectionAdvice, c.dashboard())
	case "advice":
		c.printSection(renderer.SectionAdvice, c.dashboard())
	case "help":
		fmt.Fprint(c.w, help)
	default:
		return fmt.Errorf("unknown command %q, type 'help' for the list of commands", cmd)
	}
	return nil
}

const help = `Commands:
  summary                                    show the summary panel
  holdings                                   show the holdings
  history                                    show the portfolio history
  categories                                 show the expenses per category
  activity [n]                               show the first n transactions
  dashboard                                  show the whole dashboard
  add <income|expense> <amount> <category> <description...>
                                             append a transaction dated today
  price <symbol> <price> [change]            update the price of a holding
  advise                                     ask for an advice in the background
  wait                                       wait for the advice and show it
  advice                                     show the advice panel
  help                                       show this help
  bye                                        exit
`

// dashboard collects the current state of the session.
func (c *Console) dashboard() *renderer.Dashboard {
	d := renderer.NewDashboard(c.Book, c.History, c.Lang)
	c.mu.Lock()
	defer c.mu.Unlock()
	d.Advice.Loading = c.flight.InFlight()
	d.Advice.Text = c.advice
	return d
}

func (c *Console) printSection(s renderer.Section, d *renderer.Dashboard) {
	c.Print(c.w, renderer.RenderSection(d, s))
}

func (c *Console) activity(args []string) error {
	d := c.dashboard()
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid number of transactions %q", args[0])
		}
		d.Activity = c.Book.Recent(n)
	}
	c.printSection(renderer.SectionActivity, d)
	return nil
}

func (c *Console) add(args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("usage: add <income|expense> <amount> <category> <description...>")
	}
	kind, err := finflow.ParseKind(args[0])
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[1], err)
	}
	tx := finflow.NewTransaction(
		c.Book.NextID(),
		c.Today(),
		strings.Join(args[3:], " "),
		finflow.M(amount, c.Book.Currency()),
		kind,
		args[2],
	)
	if err := c.Book.Append(tx); err != nil {
		return err
	}
	c.Logger.Debug().Str("id", tx.ID).Str("kind", string(kind)).Str("amount", tx.Amount.String()).Msg("transaction added")
	c.printSection(renderer.SectionSummary, c.dashboard())
	return nil
}

func (c *Console) price(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("usage: price <symbol> <price> [change]")
	}
	price, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", args[1], err)
	}
	var change float64
	if len(args) == 3 {
		change, err = strconv.ParseFloat(strings.TrimSuffix(args[2], "%"), 64)
		if err != nil {
			return fmt.Errorf("invalid change %q: %w", args[2], err)
		}
	}
	symbol := strings.ToUpper(args[0])
	if err := c.Book.SetPrice(symbol, finflow.M(price, c.Book.Currency()), finflow.Percent(change)); err != nil {
		return err
	}
	c.printSection(renderer.SectionHoldings, c.dashboard())
	return nil
}

// advise starts an advice request in the background, unless one is already
// in flight.
func (c *Console) advise(ctx context.Context) {
	msg := advisor.MessagesFor(c.Lang)
	if !c.flight.TryStart() {
		fmt.Fprintln(c.w, msg.Busy)
		return
	}

	transactions, holdings, summary := c.Book.Transactions(), c.Book.Holdings(), c.Book.Summary()
	done := make(chan struct{})
	c.mu.Lock()
	c.done = done
	c.mu.Unlock()

	go func() {
		defer close(done)
		ctx := ctx
		if c.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, c.Timeout)
			defer cancel()
		}
		text := c.Advisor.Advise(ctx, transactions, holdings, summary)
		c.mu.Lock()
		c.advice = text
		c.mu.Unlock()
		c.flight.Done()
	}()
	fmt.Fprintln(c.w, msg.Loading)
}

// Wait blocks until the last advice request is over.
func (c *Console) Wait(ctx context.Context) error {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Advice returns the last advice received, empty if none.
func (c *Console) Advice() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.advice
}
