package portfolio

import "errors"

var (
	ErrInvalidQuantity = errors.New("Quantity must be a positive number")
	ErrInvalidSymbol   = errors.New("Invalid stock symbol")
)
