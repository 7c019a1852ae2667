// Package watchlists owns the registry: the user's named watchlists plus
// which one is active. Mutations follow the same snapshot discipline as
// the ledger: read latest state, transform, persist the whole collection.
package watchlists

import (
	"context"
	"strings"
	"time"

	"stoxify-backend/internal/domain"
	"stoxify-backend/internal/infrastructure/store"
	"stoxify-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultWatchlistName = "My Watchlist"

// Service encapsulates registry operations.
type Service struct {
	Store *store.Store
}

// ItemInput is the client-supplied part of a watchlist entry.
type ItemInput struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

// List returns the registry, seeding a default watchlist on first use so
// the app always has somewhere to add symbols. A dangling active id falls
// back to the first watchlist.
func (s *Service) List(ctx context.Context, userID uuid.UUID) (*domain.WatchlistState, error) {
	state, err := s.Store.LoadWatchlists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = domain.EmptyWatchlistState()
	}
	if len(state.Watchlists) == 0 {
		now := time.Now().UTC()
		def := domain.Watchlist{
			ID:        uuid.New().String(),
			Name:      defaultWatchlistName,
			Items:     []domain.WatchlistItem{},
			CreatedAt: now,
			UpdatedAt: now,
			IsDefault: true,
		}
		state.Watchlists = []domain.Watchlist{def}
		state.ActiveWatchlistID = def.ID
		if err := s.Store.SaveWatchlists(ctx, userID, state); err != nil {
			return nil, err
		}
		log.Info().Str("user_id", userID.String()).Msg("seeded default watchlist")
		return state, nil
	}
	if changed := normalizeActive(state); changed {
		if err := s.Store.SaveWatchlists(ctx, userID, state); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// Create appends a new empty watchlist and makes it active.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, name string) (*domain.WatchlistState, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	state, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	w := domain.Watchlist{
		ID:        uuid.New().String(),
		Name:      name,
		Items:     []domain.WatchlistItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	state.Watchlists = append(state.Watchlists, w)
	state.ActiveWatchlistID = w.ID

	if err := s.Store.SaveWatchlists(ctx, userID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Rename updates a watchlist's name. Missing id is a no-op.
func (s *Service) Rename(ctx context.Context, userID uuid.UUID, watchlistID, name string) (*domain.WatchlistState, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	state, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range state.Watchlists {
		if state.Watchlists[i].ID == watchlistID {
			state.Watchlists[i].Name = name
			state.Watchlists[i].UpdatedAt = time.Now().UTC()
			break
		}
	}

	if err := s.Store.SaveWatchlists(ctx, userID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Delete removes a watchlist. The default watchlist cannot be deleted.
// Deleting the active watchlist moves the active reference to the first
// remaining watchlist, or clears it. Missing id is a no-op.
func (s *Service) Delete(ctx context.Context, userID uuid.UUID, watchlistID string) (*domain.WatchlistState, error) {
	state, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := state.Watchlists[:0]
	for _, w := range state.Watchlists {
		if w.ID == watchlistID {
			if w.IsDefault {
				return nil, ErrDefaultWatchlist
			}
			continue
		}
		kept = append(kept, w)
	}
	state.Watchlists = kept
	normalizeActive(state)

	if err := s.Store.SaveWatchlists(ctx, userID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// AddItem appends a symbol snapshot to the target watchlist unless the
// symbol is already present (idempotent add).
func (s *Service) AddItem(ctx context.Context, userID uuid.UUID, watchlistID string, in ItemInput) (*domain.WatchlistState, error) {
	symbol := validation.NormalizeSymbol(in.Symbol)
	if !validation.IsValidSymbol(symbol) {
		return nil, ErrInvalidSymbol
	}

	state, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range state.Watchlists {
		if state.Watchlists[i].ID != watchlistID {
			continue
		}
		found = true
		w := &state.Watchlists[i]
		exists := false
		for _, item := range w.Items {
			if item.Symbol == symbol {
				exists = true
				break
			}
		}
		if !exists {
			w.Items = append(w.Items, domain.WatchlistItem{
				ID:            uuid.New().String(),
				Symbol:        symbol,
				Name:          in.Name,
				Price:         in.Price,
				Change:        in.Change,
				ChangePercent: in.ChangePercent,
				AddedDate:     time.Now().UTC(),
			})
		}
		w.UpdatedAt = time.Now().UTC()
		break
	}
	if !found {
		return nil, ErrWatchlistNotFound
	}

	if err := s.Store.SaveWatchlists(ctx, userID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// RemoveItem filters a symbol out of the target watchlist. Missing
// watchlist or symbol is a no-op.
func (s *Service) RemoveItem(ctx context.Context, userID uuid.UUID, watchlistID, symbol string) (*domain.WatchlistState, error) {
	symbol = validation.NormalizeSymbol(symbol)

	state, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range state.Watchlists {
		if state.Watchlists[i].ID != watchlistID {
			continue
		}
		w := &state.Watchlists[i]
		items := w.Items[:0]
		for _, item := range w.Items {
			if item.Symbol != symbol {
				items = append(items, item)
			}
		}
		w.Items = items
		w.UpdatedAt = time.Now().UTC()
		break
	}

	if err := s.Store.SaveWatchlists(ctx, userID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SetActive switches the active watchlist. The id must resolve to an
// existing watchlist; the registry never stores a dangling reference.
func (s *Service) SetActive(ctx context.Context, userID uuid.UUID, watchlistID string) (*domain.WatchlistState, error) {
	state, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	exists := false
	for _, w := range state.Watchlists {
		if w.ID == watchlistID {
			exists = true
			break
		}
	}
	if !exists {
		return nil, ErrWatchlistNotFound
	}

	state.ActiveWatchlistID = watchlistID
	if err := s.Store.SaveWatchlists(ctx, userID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// ApplyQuotes updates price/change/changePercent on every item whose
// symbol has a quote, across all watchlists. Items without a matching
// quote are untouched. Used by the refresh cycle.
func (s *Service) ApplyQuotes(ctx context.Context, userID uuid.UUID, quotes []domain.Quote) (*domain.WatchlistState, error) {
	state, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	bySymbol := make(map[string]domain.Quote, len(quotes))
	for _, q := range quotes {
		bySymbol[validation.NormalizeSymbol(q.Symbol)] = q
	}

	touched := false
	for i := range state.Watchlists {
		w := &state.Watchlists[i]
		for j := range w.Items {
			q, ok := bySymbol[w.Items[j].Symbol]
			if !ok {
				continue
			}
			w.Items[j].Price = q.Price
			w.Items[j].Change = q.Change
			w.Items[j].ChangePercent = q.ChangePercent
			touched = true
		}
	}
	if !touched {
		return state, nil
	}

	if err := s.Store.SaveWatchlists(ctx, userID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Symbols returns every distinct symbol tracked across all watchlists.
func (s *Service) Symbols(ctx context.Context, userID uuid.UUID) ([]string, error) {
	state, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var symbols []string
	for _, w := range state.Watchlists {
		for _, item := range w.Items {
			if !seen[item.Symbol] {
				seen[item.Symbol] = true
				symbols = append(symbols, item.Symbol)
			}
		}
	}
	return symbols, nil
}

// normalizeActive repairs the active reference: empty or dangling ids fall
// back to the first watchlist, or "" when none remain. Reports whether
// anything changed.
func normalizeActive(state *domain.WatchlistState) bool {
	if len(state.Watchlists) == 0 {
		if state.ActiveWatchlistID != "" {
			state.ActiveWatchlistID = ""
			return true
		}
		return false
	}
	for _, w := range state.Watchlists {
		if w.ID == state.ActiveWatchlistID {
			return false
		}
	}
	state.ActiveWatchlistID = state.Watchlists[0].ID
	return true
}
