package finflow

import "errors"

var (
	// ErrDuplicateID is returned when a transaction id is already in the book.
	ErrDuplicateID = errors.New("duplicate transaction id")
	// ErrDuplicateSymbol is returned when a holding symbol is already in the book.
	ErrDuplicateSymbol = errors.New("duplicate holding symbol")
	// ErrUnknownSymbol is returned when a price update targets a symbol not held.
	ErrUnknownSymbol = errors.New("unknown holding symbol")
	// ErrInvalidAmount is returned for non-positive transaction amounts and negative prices or quantities.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrUnknownKind is returned for a transaction kind other than INCOME or EXPENSE.
	ErrUnknownKind = errors.New("unknown transaction kind")
	// ErrCurrencyMismatch is returned when a value is not in the book's currency.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)
