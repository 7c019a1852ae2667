// Package finmath holds the pure position math. Every function clamps
// non-finite inputs and results to zero: these values are formatted
// straight into currency strings by clients, so NaN/Inf must never reach
// persisted state.
package finmath

import "math"

// Finite returns v, or 0 when v is NaN or infinite.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// PositionValue is quantity * price.
func PositionValue(quantity, price float64) float64 {
	return Finite(quantity * price)
}

// Gain is the unrealized gain of a position: (current - avg) * quantity.
func Gain(quantity, avgPrice, currentPrice float64) float64 {
	return Finite((currentPrice - avgPrice) * quantity)
}

// GainPercent is the percent gain over cost basis. Zero cost basis (or a
// non-finite operand) yields 0, not Inf.
func GainPercent(avgPrice, currentPrice float64) float64 {
	if avgPrice <= 0 || math.IsNaN(avgPrice) || math.IsInf(avgPrice, 0) {
		return 0
	}
	return Finite((currentPrice - avgPrice) / avgPrice * 100)
}

// WeightedAverage merges a new buy into an existing position's cost basis.
// Always quantity-weighted; never last-price-wins.
func WeightedAverage(existingQty, existingAvg, addedQty, addedPrice float64) float64 {
	total := existingQty + addedQty
	if total <= 0 {
		return 0
	}
	return Finite((existingQty*existingAvg + addedQty*addedPrice) / total)
}
