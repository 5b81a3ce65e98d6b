package finflow

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Holding is a position in a tradable instrument, keyed by its ticker symbol.
type Holding struct {
	Symbol   string
	Name     string
	Price    Money   // current unit price
	Change   Percent // price change of the day
	Quantity Quantity
}

// NewHolding creates a new Holding.
func NewHolding(symbol, name string, price Money, change Percent, quantity Quantity) Holding {
	return Holding{Symbol: symbol, Name: name, Price: price, Change: change, Quantity: quantity}
}

// Value returns the market value of the holding: price × quantity.
func (h Holding) Value() Money { return h.Price.Mul(h.Quantity) }

// Validate checks that the symbol is set and that price and quantity are not negative.
func (h Holding) Validate() error {
	if strings.TrimSpace(h.Symbol) == "" {
		return errors.New("holding symbol is missing")
	}
	if h.Price.IsNegative() {
		return fmt.Errorf("holding %q: %w: negative price %s", h.Symbol, ErrInvalidAmount, h.Price.Decimal())
	}
	if h.Quantity.IsNegative() {
		return fmt.Errorf("holding %q: %w: negative quantity %s", h.Symbol, ErrInvalidAmount, h.Quantity)
	}
	return nil
}

func (h Holding) write(w *recordWriter) {
	w.Field("symbol", h.Symbol)
	w.Optional("name", h.Name)
	w.Field("price", h.Price)
	w.Optional("currency", h.Price.Currency())
	w.Field("change", h.Change)
	w.Field("holdings", h.Quantity)
}

// MarshalJSON writes the holding with a stable field order.
func (h Holding) MarshalJSON() ([]byte, error) {
	var w recordWriter
	h.write(&w)
	return w.MarshalJSON()
}

// UnmarshalJSON reads the price and its currency as two separate fields.
func (h *Holding) UnmarshalJSON(data []byte) error {
	var temp struct {
		Symbol   string          `json:"symbol"`
		Name     string          `json:"name"`
		Price    decimal.Decimal `json:"price"`
		Currency string          `json:"currency"`
		Change   float64         `json:"change"`
		Quantity Quantity        `json:"holdings"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*h = NewHolding(temp.Symbol, temp.Name, M(temp.Price, temp.Currency), Percent(temp.Change), temp.Quantity)
	return nil
}
