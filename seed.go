package finflow

import "github.com/etnz/finflow/date"

// Seed returns the demonstration book used when no dataset file is given.
func Seed(currency string) *Book {
	b := NewBook(currency)
	err := b.Append(
		NewTransaction("1", date.MustParse("2023-10-01"), "Salario Mensual", M(3500, currency), Income, "Salario"),
		NewTransaction("2", date.MustParse("2023-10-03"), "Alquiler", M(1200, currency), Expense, "Vivienda"),
		NewTransaction("3", date.MustParse("2023-10-05"), "Supermercado", M(150, currency), Expense, "Alimentación"),
		NewTransaction("4", date.MustParse("2023-10-10"), "Dividendo AAPL", M(45, currency), Income, "Inversiones"),
		NewTransaction("5", date.MustParse("2023-10-12"), "Gimnasio", M(40, currency), Expense, "Salud"),
	)
	if err != nil {
		panic(err)
	}
	for _, h := range []Holding{
		NewHolding("AAPL", "Apple Inc.", M(175.43, currency), 1.25, Q(10)),
		NewHolding("TSLA", "Tesla Inc.", M(240.50, currency), -0.85, Q(5)),
		NewHolding("NVDA", "NVIDIA Corp.", M(460.10, currency), 2.15, Q(8)),
		NewHolding("MSFT", "Microsoft", M(330.20, currency), 0.45, Q(12)),
	} {
		if err := b.AddHolding(h); err != nil {
			panic(err)
		}
	}
	return b
}

// SeedHistory returns the demonstration portfolio history against the market.
func SeedHistory(currency string) History {
	point := func(label string, portfolio, market int) HistoryPoint {
		return HistoryPoint{Label: label, Portfolio: M(portfolio, currency), Market: M(market, currency)}
	}
	return History{
		point("Ene", 4000, 4100),
		point("Feb", 4200, 4150),
		point("Mar", 4100, 4200),
		point("Abr", 4400, 4250),
		point("May", 4600, 4300),
		point("Jun", 4800, 4400),
		point("Jul", 5100, 4450),
	}
}
