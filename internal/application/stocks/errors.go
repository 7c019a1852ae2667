package stocks

import "errors"

var (
	ErrInvalidSymbol    = errors.New("Invalid ticker symbol")
	ErrKeywordsRequired = errors.New("Search keywords are required")
)
