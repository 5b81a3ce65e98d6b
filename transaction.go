package finflow

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/finflow/date"
	"github.com/shopspring/decimal"
)

// Kind tells whether a transaction brings money in or takes it out.
type Kind string

const (
	Income  Kind = "INCOME"
	Expense Kind = "EXPENSE"
)

// ParseKind reads a kind, case insensitive.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToUpper(strings.TrimSpace(s))); k {
	case Income, Expense:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Transaction is a single cash movement. It is never modified once in a Book.
type Transaction struct {
	ID          string
	Date        date.Date
	Description string
	Amount      Money // always positive, Kind gives the direction.
	Kind        Kind
	Category    string
}

// NewTransaction creates a new Transaction.
func NewTransaction(id string, on date.Date, description string, amount Money, kind Kind, category string) Transaction {
	return Transaction{ID: id, Date: on, Description: description, Amount: amount, Kind: kind, Category: category}
}

// Signed returns the amount positive for income and negative for expenses.
func (t Transaction) Signed() Money {
	if t.Kind == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Validate checks the transaction fields.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("transaction id is missing")
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction %q: date is missing", t.ID)
	}
	if t.Kind != Income && t.Kind != Expense {
		return fmt.Errorf("transaction %q: %w: %q", t.ID, ErrUnknownKind, t.Kind)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction %q: %w: amount must be positive, got %s", t.ID, ErrInvalidAmount, t.Amount.Decimal())
	}
	return nil
}

func (t Transaction) write(w *recordWriter) {
	w.Field("id", t.ID)
	w.Field("date", t.Date)
	w.Field("description", t.Description)
	w.Optional("category", t.Category)
	w.Field("type", t.Kind)
	w.Field("amount", t.Amount)
	w.Optional("currency", t.Amount.Currency())
}

// MarshalJSON writes the transaction with a stable field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w recordWriter
	t.write(&w)
	return w.MarshalJSON()
}

// UnmarshalJSON reads the amount and currency as two separate fields.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          string          `json:"id"`
		Date        date.Date       `json:"date"`
		Description string          `json:"description"`
		Category    string          `json:"category"`
		Kind        string          `json:"type"`
		Amount      decimal.Decimal `json:"amount"`
		Currency    string          `json:"currency"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	kind, err := ParseKind(temp.Kind)
	if err != nil {
		return err
	}
	*t = NewTransaction(temp.ID, temp.Date, temp.Description, M(temp.Amount, temp.Currency), kind, temp.Category)
	return nil
}
