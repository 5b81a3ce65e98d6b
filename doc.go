// Package finflow is the core of a personal-finance dashboard.
//
// It holds income and expense transactions and stock holdings in a Book,
// and derives from them a Summary: income and expense totals, holdings value
// and total balance. Money arithmetic is exact, based on decimals, and
// amounts are formatted using their ISO-4217 currency.
//
// The core functionalities include:
//   - Book: the caller-owned, in-memory state of the dashboard.
//   - Summarize: a pure aggregation of transactions and holdings.
//   - Category totals and investment history for the dashboard views.
//   - Datasets: reading and writing books as JSONL, one record per line.
//
// This package serves as the foundation of the `flow` command line tool;
// the advisor package turns a Summary into a natural-language report.
package finflow
