package finflow

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func TestSummarize(t *testing.T) {
	testCases := []struct {
		name         string
		transactions []Transaction
		holdings     []Holding
		want         Summary
	}{
		{
			name: "empty",
			want: Summary{},
		},
		{
			name: "example",
			transactions: []Transaction{
				income("1", 3500),
				expense("2", 1200),
				expense("3", 150),
			},
			holdings: []Holding{
				NewHolding("AAPL", "Apple Inc.", EUR(175.43), 1.25, Q(10)),
			},
			want: Summary{
				Income:        EUR(3500),
				Expenses:      EUR(1350),
				HoldingsValue: EUR(1754.30),
				TotalBalance:  EUR(3904.30),
			},
		},
		{
			name:         "expenses only",
			transactions: []Transaction{expense("1", 40), expense("2", 60)},
			want: Summary{
				Income:        NO(0),
				Expenses:      EUR(100),
				HoldingsValue: NO(0),
				TotalBalance:  EUR(-100),
			},
		},
		{
			name: "holdings only",
			holdings: []Holding{
				NewHolding("TSLA", "Tesla Inc.", EUR(240.50), -0.85, Q(5)),
				NewHolding("NVDA", "NVIDIA Corp.", EUR(460.10), 2.15, Q(8)),
				NewHolding("ZERO", "Nothing held", EUR(10), 0, Q(0)),
			},
			want: Summary{
				Income:        NO(0),
				Expenses:      NO(0),
				HoldingsValue: EUR(4883.30),
				TotalBalance:  EUR(4883.30),
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Summarize(tc.transactions, tc.holdings)
			if !got.Income.Equal(tc.want.Income) {
				t.Errorf("Income = %v, want %v", got.Income, tc.want.Income)
			}
			if !got.Expenses.Equal(tc.want.Expenses) {
				t.Errorf("Expenses = %v, want %v", got.Expenses, tc.want.Expenses)
			}
			if !got.HoldingsValue.Equal(tc.want.HoldingsValue) {
				t.Errorf("HoldingsValue = %v, want %v", got.HoldingsValue, tc.want.HoldingsValue)
			}
			if !got.TotalBalance.Equal(tc.want.TotalBalance) {
				t.Errorf("TotalBalance = %v, want %v", got.TotalBalance, tc.want.TotalBalance)
			}
		})
	}
}

// randomBook generates n random transactions and m random holdings, all in EUR.
func randomBook(r *rand.Rand, n, m int) ([]Transaction, []Holding) {
	txs := make([]Transaction, 0, n)
	for i := range n {
		amount := float64(r.Intn(100000)+1) / 100
		if r.Intn(2) == 0 {
			txs = append(txs, income(fmt.Sprint(i), amount))
		} else {
			txs = append(txs, expense(fmt.Sprint(i), amount))
		}
	}
	holdings := make([]Holding, 0, m)
	for i := range m {
		price := float64(r.Intn(100000)) / 100
		holdings = append(holdings, NewHolding(fmt.Sprintf("S%d", i), "", EUR(price), 0, Q(r.Intn(50))))
	}
	return txs, holdings
}

func TestSummarizeProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := range 50 {
		txs, holdings := randomBook(r, r.Intn(30), r.Intn(6))
		s := Summarize(txs, holdings)

		// income - expenses is the sum of signed amounts.
		if cash := CashBalance(txs); !s.Cash().Decimal().Equal(cash.Decimal()) {
			t.Errorf("#%d: Income-Expenses = %v, want %v", i, s.Cash(), cash)
		}

		// holdings value is the sum of price × quantity, never negative here.
		var value Money
		for _, h := range holdings {
			value = value.Add(h.Price.Mul(h.Quantity))
		}
		if !s.HoldingsValue.Decimal().Equal(value.Decimal()) {
			t.Errorf("#%d: HoldingsValue = %v, want %v", i, s.HoldingsValue, value)
		}
		if s.HoldingsValue.IsNegative() {
			t.Errorf("#%d: HoldingsValue = %v, want >= 0", i, s.HoldingsValue)
		}

		// the total balance does not depend on the order of transactions.
		shuffled := append([]Transaction(nil), txs...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		if got := Summarize(shuffled, holdings); !got.TotalBalance.Decimal().Equal(s.TotalBalance.Decimal()) {
			t.Errorf("#%d: TotalBalance after shuffle = %v, want %v", i, got.TotalBalance, s.TotalBalance)
		}
	}
}

func TestCategoryTotals(t *testing.T) {
	txs := []Transaction{
		expense("1", 1200),
		income("2", 3500),
		NewTransaction("3", expense("3", 0).Date, "Supermercado", EUR(150), Expense, "Alimentación"),
		NewTransaction("4", expense("4", 0).Date, "Mercado", EUR(250), Expense, "Alimentación"),
		expense("5", 400),
	}
	got := CategoryTotals(txs, Expense)
	want := []CategoryTotal{
		{Category: "Vivienda", Amount: EUR(1600), Share: 80},
		{Category: "Alimentación", Amount: EUR(400), Share: 20},
	}
	if len(got) != len(want) {
		t.Fatalf("CategoryTotals() returned %d categories, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Category != want[i].Category || !got[i].Amount.Equal(want[i].Amount) || !got[i].Share.Equal(want[i].Share) {
			t.Errorf("CategoryTotals()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	if got := CategoryTotals(nil, Income); len(got) != 0 {
		t.Errorf("CategoryTotals(nil) = %v, want empty", got)
	}
}

func TestHistoryPerformance(t *testing.T) {
	h := SeedHistory("EUR")
	portfolio, market := h.Performance()
	if !portfolio.Equal(27.5) {
		t.Errorf("portfolio performance = %v, want 27.50%%", portfolio)
	}
	if want := Percent(350.0 / 4100 * 100); !market.Equal(want) {
		t.Errorf("market performance = %v, want %v", market, want)
	}
	if p, m := (History{}).Performance(); p != 0 || m != 0 {
		t.Errorf("empty history performance = %v, %v, want 0", p, m)
	}
}

func TestCurrency(t *testing.T) {
	testCases := []struct {
		name         string
		transactions []Transaction
		holdings     []Holding
		want         string
		wantErr      bool
	}{
		{name: "empty"},
		{name: "no currency", transactions: []Transaction{NewTransaction("1", income("1", 0).Date, "", NO(10), Income, "")}},
		{name: "weak and euro", transactions: []Transaction{NewTransaction("1", income("1", 0).Date, "", NO(10), Income, ""), income("2", 5)}, want: "EUR"},
		{name: "euro", transactions: []Transaction{income("1", 100)}, holdings: []Holding{NewHolding("AAPL", "", EUR(10), 0, Q(1))}, want: "EUR"},
		{name: "mixed", transactions: []Transaction{income("1", 100)}, holdings: []Holding{NewHolding("AAPL", "", M(10, "USD"), 0, Q(1))}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Currency(tc.transactions, tc.holdings)
			if tc.wantErr {
				if !errors.Is(err, ErrCurrencyMismatch) {
					t.Fatalf("Currency() error = %v, want %v", err, ErrCurrencyMismatch)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Errorf("Currency() = %q, %v, want %q", got, err, tc.want)
			}
		})
	}
}

func TestSummarizeMixedCurrencies(t *testing.T) {
	txs := []Transaction{income("1", 100), NewTransaction("2", income("2", 0).Date, "Cena", M(10, "USD"), Expense, "Ocio")}
	holdings := []Holding{NewHolding("AAPL", "Apple Inc.", M(10, "USD"), 0, Q(1))}

	if got := Summarize(txs[:1], holdings); !got.TotalBalance.IsZero() || !got.Income.IsZero() {
		t.Errorf("Summarize(mixed) = %+v, want the zero Summary", got)
	}
	if got := CashBalance(txs); !got.IsZero() {
		t.Errorf("CashBalance(mixed) = %v, want zero", got)
	}
	if got := CategoryTotals(txs, Expense); got != nil {
		t.Errorf("CategoryTotals(mixed) = %v, want nil", got)
	}
}
