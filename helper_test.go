package finflow

import "github.com/etnz/finflow/date"

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

func income(id string, amount float64) Transaction {
	return NewTransaction(id, date.MustParse("2023-10-01"), "income "+id, EUR(amount), Income, "Salario")
}

func expense(id string, amount float64) Transaction {
	return NewTransaction(id, date.MustParse("2023-10-02"), "expense "+id, EUR(amount), Expense, "Vivienda")
}
