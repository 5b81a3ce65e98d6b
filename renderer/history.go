package renderer

import (
	"bytes"
	"strings"

	md "github.com/nao1215/markdown"
)

// HistoryTable renders the portfolio history against the market.
func (d *Dashboard) HistoryTable() string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{d.Labels.Month, d.Labels.Portfolio, d.Labels.Market},
		Rows:   [][]string{},
	}
	for _, p := range d.History {
		table.Rows = append(table.Rows, []string{
			cell(p.Label),
			p.Portfolio.String(),
			p.Market.String(),
		})
	}
	doc.Table(table)

	return strings.TrimRight(doc.String(), "\n")
}

// CategoryTable renders the expenses per category.
func (d *Dashboard) CategoryTable() string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{d.Labels.Category, d.Labels.Amount, d.Labels.Share},
		Rows:   [][]string{},
	}
	for _, c := range d.Expenses {
		table.Rows = append(table.Rows, []string{
			cell(c.Category),
			c.Amount.String(),
			c.Share.String(),
		})
	}
	doc.Table(table)

	return strings.TrimRight(doc.String(), "\n")
}
