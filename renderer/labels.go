package renderer

import "github.com/etnz/finflow"

// Labels are the fixed texts of the dashboard in one language.
type Labels struct {
	Title           string
	Summary         string
	Indicator       string
	Value           string
	Trend           string
	TotalBalance    string
	Income          string
	Expenses        string
	HoldingsValue   string
	Advisor         string
	History         string
	HistorySubtitle string
	Month           string
	Portfolio       string
	Market          string
	Holdings        string
	Symbol          string
	Name            string
	Shares          string
	Price           string
	Change          string
	Total           string
	Categories      string
	Category        string
	Amount          string
	Share           string
	Activity        string
	Date            string
	Description     string
	Status          string
	Completed       string
}

var labels = map[finflow.Lang]Labels{
	finflow.Spanish: {
		Title:           "FinanzasFlow",
		Summary:         "Resumen",
		Indicator:       "Indicador",
		Value:           "Valor",
		Trend:           "Tendencia",
		TotalBalance:    "Balance Total",
		Income:          "Ingresos (Mes)",
		Expenses:        "Gastos (Mes)",
		HoldingsValue:   "Valor Portafolio",
		Advisor:         "Asistente Financiero Gemini",
		History:         "Evolución de Inversiones",
		HistorySubtitle: "Comparativa Portafolio vs Mercado",
		Month:           "Mes",
		Portfolio:       "Tu Portafolio",
		Market:          "Mercado",
		Holdings:        "Mis Acciones",
		Symbol:          "Símbolo",
		Name:            "Nombre",
		Shares:          "Acciones",
		Price:           "Precio",
		Change:          "Variación",
		Total:           "Total",
		Categories:      "Gastos por Categoría",
		Category:        "Categoría",
		Amount:          "Cantidad",
		Share:           "Porcentaje",
		Activity:        "Movimientos Recientes",
		Date:            "Fecha",
		Description:     "Descripción",
		Status:          "Estado",
		Completed:       "Completado",
	},
	finflow.English: {
		Title:           "FinanzasFlow",
		Summary:         "Summary",
		Indicator:       "Indicator",
		Value:           "Value",
		Trend:           "Trend",
		TotalBalance:    "Total Balance",
		Income:          "Income (Month)",
		Expenses:        "Expenses (Month)",
		HoldingsValue:   "Portfolio Value",
		Advisor:         "Gemini Financial Assistant",
		History:         "Investment Evolution",
		HistorySubtitle: "Portfolio vs Market",
		Month:           "Month",
		Portfolio:       "Your Portfolio",
		Market:          "Market",
		Holdings:        "My Stocks",
		Symbol:          "Symbol",
		Name:            "Name",
		Shares:          "Shares",
		Price:           "Price",
		Change:          "Change",
		Total:           "Total",
		Categories:      "Expenses by Category",
		Category:        "Category",
		Amount:          "Amount",
		Share:           "Share",
		Activity:        "Recent Activity",
		Date:            "Date",
		Description:     "Description",
		Status:          "Status",
		Completed:       "Completed",
	},
}

// LabelsFor returns the labels in lang, falling back to the default language.
func LabelsFor(lang finflow.Lang) Labels {
	if l, ok := labels[lang]; ok {
		return l
	}
	return labels[finflow.DefaultLang]
}
