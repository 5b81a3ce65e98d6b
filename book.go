package finflow

import (
	"fmt"
	"slices"
	"strconv"
)

// Book is the in-memory state of the dashboard: an ordered sequence of
// transactions and a set of holdings keyed by symbol.
//
// A Book is owned by its caller and is not safe for concurrent use; pass
// copies (Transactions, Holdings) to goroutines.
type Book struct {
	currency     string
	transactions []Transaction
	holdings     []Holding
	ids          map[string]struct{}
}

// NewBook returns an empty Book reporting in currency.
func NewBook(currency string) *Book {
	return &Book{currency: currency, ids: make(map[string]struct{})}
}

// Currency returns the book's reporting currency.
func (b *Book) Currency() string { return b.currency }

// Append validates and appends transactions at the end of the sequence.
// Nothing is appended if any transaction is invalid.
func (b *Book) Append(txs ...Transaction) error {
	txs = slices.Clone(txs)
	seen := make(map[string]struct{}, len(txs))
	for i, t := range txs {
		if t.Amount.Currency() == "" {
			t.Amount = M(t.Amount.Decimal(), b.currency)
			txs[i] = t
		}
		if err := t.Validate(); err != nil {
			return err
		}
		if t.Amount.Currency() != b.currency {
			return fmt.Errorf("transaction %q: %w: %s in a %s book", t.ID, ErrCurrencyMismatch, t.Amount.Currency(), b.currency)
		}
		_, inBook := b.ids[t.ID]
		_, inBatch := seen[t.ID]
		if inBook || inBatch {
			return fmt.Errorf("transaction %q: %w", t.ID, ErrDuplicateID)
		}
		seen[t.ID] = struct{}{}
	}
	for _, t := range txs {
		b.ids[t.ID] = struct{}{}
		b.transactions = append(b.transactions, t)
	}
	return nil
}

// AddHolding validates and adds a new holding.
func (b *Book) AddHolding(h Holding) error {
	if h.Price.Currency() == "" {
		h.Price = M(h.Price.Decimal(), b.currency)
	}
	if err := h.Validate(); err != nil {
		return err
	}
	if h.Price.Currency() != b.currency {
		return fmt.Errorf("holding %q: %w: %s in a %s book", h.Symbol, ErrCurrencyMismatch, h.Price.Currency(), b.currency)
	}
	if _, exists := b.Holding(h.Symbol); exists {
		return fmt.Errorf("holding %q: %w", h.Symbol, ErrDuplicateSymbol)
	}
	b.holdings = append(b.holdings, h)
	return nil
}

// SetPrice updates the price and daily change of the holding symbol.
func (b *Book) SetPrice(symbol string, price Money, change Percent) error {
	i := slices.IndexFunc(b.holdings, func(h Holding) bool { return h.Symbol == symbol })
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	if price.Currency() == "" {
		price = M(price.Decimal(), b.currency)
	}
	h := b.holdings[i]
	h.Price, h.Change = price, change
	if err := h.Validate(); err != nil {
		return err
	}
	if price.Currency() != b.currency {
		return fmt.Errorf("holding %q: %w: %s in a %s book", symbol, ErrCurrencyMismatch, price.Currency(), b.currency)
	}
	b.holdings[i] = h
	return nil
}

// Holding returns the holding for symbol, if any.
func (b *Book) Holding(symbol string) (Holding, bool) {
	for _, h := range b.holdings {
		if h.Symbol == symbol {
			return h, true
		}
	}
	return Holding{}, false
}

// Transactions returns a copy of the transactions in book order.
func (b *Book) Transactions() []Transaction { return slices.Clone(b.transactions) }

// Holdings returns a copy of the holdings in insertion order.
func (b *Book) Holdings() []Holding { return slices.Clone(b.holdings) }

// Recent returns a copy of the first n transactions in book order. The
// book order is taken as is: transactions are neither parsed nor sorted by date.
func (b *Book) Recent(n int) []Transaction {
	n = max(0, min(n, len(b.transactions)))
	return slices.Clone(b.transactions[:n])
}

// NextID returns an unused numeric transaction id.
func (b *Book) NextID() string {
	for n := len(b.transactions) + 1; ; n++ {
		id := strconv.Itoa(n)
		if _, ok := b.ids[id]; !ok {
			return id
		}
	}
}

// Len returns the number of transactions.
func (b *Book) Len() int { return len(b.transactions) }

// Summary recomputes the summary of the book, in the book's currency.
func (b *Book) Summary() Summary {
	return Summarize(b.transactions, b.holdings).in(b.currency)
}
