package finflow

// HistoryPoint is the value of the portfolio and of a market benchmark at a
// point in time, identified by a short label (usually a month).
type HistoryPoint struct {
	Label     string `json:"label"`
	Portfolio Money  `json:"portfolio"`
	Market    Money  `json:"market"`
}

// History is a chronological series of HistoryPoint.
type History []HistoryPoint

// Performance returns the relative change of the portfolio and of the market
// between the first and the last point.
func (h History) Performance() (portfolio, market Percent) {
	if len(h) < 2 {
		return 0, 0
	}
	first, last := h[0], h[len(h)-1]
	return last.Portfolio.Sub(first.Portfolio).Ratio(first.Portfolio),
		last.Market.Sub(first.Market).Ratio(first.Market)
}
