package renderer

import (
	"github.com/etnz/finflow"
	"github.com/etnz/finflow/advisor"
)

// Dashboard is the data shown on the dashboard.
// Numbers keep their exact types (Money, Percent, etc.) so that templates
// can use their own renderers (String, SignedString).
type Dashboard struct {
	Labels   Labels                  `json:"-"`
	Cards    []Card                  `json:"-"`
	Summary  finflow.Summary         `json:"summary"`
	Holdings []finflow.Holding       `json:"holdings"`
	Activity []finflow.Transaction   `json:"recentActivity"`
	History  finflow.History         `json:"history"`
	Expenses []finflow.CategoryTotal `json:"expensesByCategory"`
	Advice   Advice                  `json:"advice"`
}

// Card is one figure of the summary panel.
type Card struct {
	Title   string
	Value   finflow.Money
	Trend   string
	TrendUp bool
}

// Arrow returns the trend direction symbol.
func (c Card) Arrow() string {
	if c.TrendUp {
		return "▲"
	}
	return "▼"
}

// Advice is the state of the advisor panel.
type Advice struct {
	Loading     bool   `json:"loading"`
	Text        string `json:"text,omitempty"`
	LoadingText string `json:"-"`
	Placeholder string `json:"-"`
}

// trends are display-only variations shown next to the summary figures, in
// card order. A falling expense trend is marked down even though it is good
// news.
var trends = [...]struct {
	value string
	up    bool
}{
	{"+12.5%", true},
	{"+5.2%", true},
	{"-2.4%", false},
	{"+8.1%", true},
}

// NewDashboard collects everything the dashboard shows about b, with the
// labels in lang.
func NewDashboard(b *finflow.Book, history finflow.History, lang finflow.Lang) *Dashboard {
	l := LabelsFor(lang)
	msg := advisor.MessagesFor(lang)
	s := b.Summary()
	txs := b.Transactions()

	d := &Dashboard{
		Labels:   l,
		Summary:  s,
		Holdings: b.Holdings(),
		Activity: txs,
		History:  history,
		Expenses: finflow.CategoryTotals(txs, finflow.Expense),
		Advice:   Advice{LoadingText: msg.Loading, Placeholder: msg.Placeholder},
	}
	for i, c := range []struct {
		title string
		value finflow.Money
	}{
		{l.TotalBalance, s.TotalBalance},
		{l.Income, s.Income},
		{l.Expenses, s.Expenses},
		{l.HoldingsValue, s.HoldingsValue},
	} {
		d.Cards = append(d.Cards, Card{Title: c.title, Value: c.value, Trend: trends[i].value, TrendUp: trends[i].up})
	}
	return d
}

// PortfolioPerformance is the portfolio change over the history.
func (d *Dashboard) PortfolioPerformance() finflow.Percent {
	p, _ := d.History.Performance()
	return p
}

// MarketPerformance is the market change over the history.
func (d *Dashboard) MarketPerformance() finflow.Percent {
	_, m := d.History.Performance()
	return m
}
