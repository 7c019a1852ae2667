package domain

import "time"

// WatchlistItem is a lightweight price snapshot of a tracked symbol.
// No cost-basis fields; purely display/tracking state.
type WatchlistItem struct {
	ID            string    `json:"id"`
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	AddedDate     time.Time `json:"addedDate"`
}

// Watchlist is a named, user-curated collection of tracked symbols.
// Names need not be unique; symbols are unique within one watchlist.
type Watchlist struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Items     []WatchlistItem `json:"items"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	IsDefault bool            `json:"isDefault,omitempty"`
}

// WatchlistState is the persisted registry snapshot: the full collection
// plus which watchlist is currently active. ActiveWatchlistID is empty
// only when Watchlists is empty.
type WatchlistState struct {
	Watchlists        []Watchlist `json:"watchlists"`
	ActiveWatchlistID string      `json:"activeWatchlistId"`
}

// EmptyWatchlistState returns the registry state before first use.
func EmptyWatchlistState() *WatchlistState {
	return &WatchlistState{Watchlists: []Watchlist{}}
}
