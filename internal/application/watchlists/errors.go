package watchlists

import "errors"

var (
	ErrWatchlistNotFound = errors.New("Watchlist not found")
	ErrDefaultWatchlist  = errors.New("Cannot delete the default watchlist")
	ErrNameRequired      = errors.New("Watchlist name is required")
	ErrInvalidSymbol     = errors.New("Invalid stock symbol")
)
