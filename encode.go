package finflow

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// RecordType discriminates the lines of a dataset file.
type RecordType string

const (
	RecordTransaction RecordType = "transaction"
	RecordHolding     RecordType = "holding"
)

// DecodeBook reads a dataset in JSONL format: one transaction or holding per
// line, discriminated by their "record" field. Records with no currency are
// in the book's currency. Transactions keep the file order.
func DecodeBook(r io.Reader, currency string) (*Book, error) {
	book := NewBook(currency)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record RecordType `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify record: %w", line, err)
		}

		switch identifier.Record {
		case RecordTransaction:
			var t Transaction
			if err := json.Unmarshal(lineBytes, &t); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if err := book.Append(t); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		case RecordHolding:
			var h Holding
			if err := json.Unmarshal(lineBytes, &h); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if err := book.AddHolding(h); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		default:
			return nil, fmt.Errorf("line %d: unknown record type %q", line, identifier.Record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dataset: %w", err)
	}
	return book, nil
}

// EncodeBook writes all holdings then all transactions of the book, in the
// format read by DecodeBook.
func EncodeBook(w io.Writer, b *Book) error {
	for _, h := range b.holdings {
		var rw recordWriter
		rw.Field("record", RecordHolding)
		h.write(&rw)
		if err := writeLine(w, &rw); err != nil {
			return fmt.Errorf("holding %q: %w", h.Symbol, err)
		}
	}
	for _, t := range b.transactions {
		var rw recordWriter
		rw.Field("record", RecordTransaction)
		t.write(&rw)
		if err := writeLine(w, &rw); err != nil {
			return fmt.Errorf("transaction %q: %w", t.ID, err)
		}
	}
	return nil
}

func writeLine(w io.Writer, rw *recordWriter) error {
	b, err := rw.MarshalJSON()
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
