package advisor

import "github.com/etnz/finflow"

// RecentCount is the number of transactions sent along with an advice request.
const RecentCount = 10

// Position is the projection of a holding sent to the model.
type Position struct {
	Symbol   string           `json:"symbol"`
	Holdings finflow.Quantity `json:"holdings"`
	Value    finflow.Money    `json:"value"`
}

// Request is the financial data an advice is asked about.
type Request struct {
	Summary        finflow.Summary       `json:"summary"`
	Portfolio      []Position            `json:"portfolio"`
	RecentActivity []finflow.Transaction `json:"recentActivity"`
}

// NewRequest projects holdings and keeps the first RecentCount transactions
// in the order given.
func NewRequest(transactions []finflow.Transaction, holdings []finflow.Holding, summary finflow.Summary) Request {
	portfolio := make([]Position, 0, len(holdings))
	for _, h := range holdings {
		portfolio = append(portfolio, Position{Symbol: h.Symbol, Holdings: h.Quantity, Value: h.Value()})
	}
	recent := transactions[:min(RecentCount, len(transactions))]
	return Request{
		Summary:        summary,
		Portfolio:      portfolio,
		RecentActivity: append([]finflow.Transaction{}, recent...),
	}
}
