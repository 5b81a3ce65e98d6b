package finflow

import "fmt"

// Summary is the aggregate snapshot derived from transactions and holdings.
// It is never stored: recompute it whenever its inputs change.
type Summary struct {
	TotalBalance  Money // (Income - Expenses) + HoldingsValue
	Income        Money
	Expenses      Money
	HoldingsValue Money
}

// Currency returns the currency shared by all amounts and prices, empty if
// none has one. It returns ErrCurrencyMismatch when they are in several
// currencies, which cannot be summed.
func Currency(transactions []Transaction, holdings []Holding) (string, error) {
	var currency string
	check := func(c string) error {
		switch {
		case c == "" || c == currency:
		case currency == "":
			currency = c
		default:
			return fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, currency, c)
		}
		return nil
	}
	for _, t := range transactions {
		if err := check(t.Amount.Currency()); err != nil {
			return "", fmt.Errorf("transaction %q: %w", t.ID, err)
		}
	}
	for _, h := range holdings {
		if err := check(h.Price.Currency()); err != nil {
			return "", fmt.Errorf("holding %q: %w", h.Symbol, err)
		}
	}
	return currency, nil
}

// Summarize computes the Summary of transactions and holdings.
//
// It is pure and does not depend on the order of transactions. Empty inputs
// yield zero totals.
//
// Amounts must share one currency, which a Book guarantees. Inputs from
// elsewhere can be checked with Currency: in several currencies there is no
// total and Summarize returns the zero Summary.
func Summarize(transactions []Transaction, holdings []Holding) Summary {
	var s Summary
	if _, err := Currency(transactions, holdings); err != nil {
		return s
	}
	for _, t := range transactions {
		switch t.Kind {
		case Income:
			s.Income = s.Income.Add(t.Amount)
		case Expense:
			s.Expenses = s.Expenses.Add(t.Amount)
		}
	}
	for _, h := range holdings {
		s.HoldingsValue = s.HoldingsValue.Add(h.Value())
	}
	s.TotalBalance = s.Income.Sub(s.Expenses).Add(s.HoldingsValue)
	return s
}

// Cash returns the cash part of the balance: Income - Expenses.
func (s Summary) Cash() Money { return s.Income.Sub(s.Expenses) }

// in returns a copy of s where currency-less totals are set to currency.
func (s Summary) in(currency string) Summary {
	zero := M(0, currency)
	s.TotalBalance = s.TotalBalance.Add(zero)
	s.Income = s.Income.Add(zero)
	s.Expenses = s.Expenses.Add(zero)
	s.HoldingsValue = s.HoldingsValue.Add(zero)
	return s
}

// MarshalJSON writes the summary with a stable field order.
func (s Summary) MarshalJSON() ([]byte, error) {
	var w recordWriter
	w.Field("totalBalance", s.TotalBalance)
	w.Field("income", s.Income)
	w.Field("expenses", s.Expenses)
	w.Field("holdingsValue", s.HoldingsValue)
	w.Optional("currency", s.TotalBalance.Currency())
	return w.MarshalJSON()
}

// CashBalance returns the sum of signed amounts: income counts positive, expenses negative.
// Like Summarize, it is zero for transactions in several currencies.
func CashBalance(transactions []Transaction) Money {
	var total Money
	if _, err := Currency(transactions, nil); err != nil {
		return total
	}
	for _, t := range transactions {
		total = total.Add(t.Signed())
	}
	return total
}

// CategoryTotal is the total amount of one category for a kind of transaction.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   Money   `json:"amount"`
	Share    Percent `json:"share"` // of the kind's total
}

// CategoryTotals groups transactions of the given kind by category, in
// first-seen order. Transactions in several currencies have no totals.
func CategoryTotals(transactions []Transaction, kind Kind) []CategoryTotal {
	var (
		totals []CategoryTotal
		index  = make(map[string]int)
		sum    Money
	)
	if _, err := Currency(transactions, nil); err != nil {
		return nil
	}
	for _, t := range transactions {
		if t.Kind != kind {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(totals)
			index[t.Category] = i
			totals = append(totals, CategoryTotal{Category: t.Category})
		}
		totals[i].Amount = totals[i].Amount.Add(t.Amount)
		sum = sum.Add(t.Amount)
	}
	for i := range totals {
		totals[i].Share = totals[i].Amount.Ratio(sum)
	}
	return totals
}
