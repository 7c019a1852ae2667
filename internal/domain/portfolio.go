package domain

import "time"

// Holding is one portfolio position in a single ticker symbol.
// Derived fields (TotalValue, Gain, GainPercent) are recomputed from
// Quantity/AveragePrice/CurrentPrice on every mutation, never set directly.
type Holding struct {
	ID           string    `json:"id"`
	Symbol       string    `json:"symbol"`
	Name         string    `json:"name"`
	Quantity     float64   `json:"quantity"`
	AveragePrice float64   `json:"averagePrice"`
	CurrentPrice float64   `json:"currentPrice"`
	TotalValue   float64   `json:"totalValue"`
	Gain         float64   `json:"gain"`
	GainPercent  float64   `json:"gainPercent"`
	PurchaseDate time.Time `json:"purchaseDate"`
}

// Portfolio is the complete ledger: all holdings plus aggregate totals.
// Symbols are unique across Items; Items keep insertion order.
type Portfolio struct {
	TotalValue       float64   `json:"totalValue"`
	TotalGain        float64   `json:"totalGain"`
	TotalGainPercent float64   `json:"totalGainPercent"`
	Items            []Holding `json:"items"`
}

// EmptyPortfolio returns the zero-value ledger used before any buy and
// after a reset.
func EmptyPortfolio() *Portfolio {
	return &Portfolio{Items: []Holding{}}
}
