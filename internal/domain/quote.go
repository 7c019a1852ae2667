package domain

// Quote is the normalized market quote shape. Provider wire formats
// (e.g. Alpha Vantage's numbered string keys) are converted to this at
// the marketdata boundary and never leak past it.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Volume        int64   `json:"volume"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Open          float64 `json:"open"`
	PreviousClose float64 `json:"previousClose"`
}

// SearchResult is one match from symbol search.
type SearchResult struct {
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Region     string `json:"region"`
	Currency   string `json:"currency"`
	MatchScore string `json:"matchScore"`
}

// TopMovers holds the day's biggest gainers and losers.
type TopMovers struct {
	Gainers []Quote `json:"gainers"`
	Losers  []Quote `json:"losers"`
}
