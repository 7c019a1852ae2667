// Package quotes is the reconciliation layer: it pulls fresh quotes from
// the market data provider and merges them into the ledger and the
// watchlist registry. A provider failure leaves both untouched — there is
// never a partial update from a failed fetch.
package quotes

import (
	"context"

	"stoxify-backend/internal/application/portfolio"
	"stoxify-backend/internal/application/watchlists"
	"stoxify-backend/internal/domain"
	"stoxify-backend/internal/marketdata"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Service wires the provider to the ledger and registry services.
type Service struct {
	Provider   marketdata.Provider
	Portfolio  *portfolio.Service
	Watchlists *watchlists.Service
}

// Result is the post-refresh state of both subsystems plus the quotes
// that were applied.
type Result struct {
	Portfolio  *domain.Portfolio      `json:"portfolio"`
	Watchlists *domain.WatchlistState `json:"watchlists"`
	Quotes     []domain.Quote         `json:"quotes"`
}

// Refresh fetches quotes for the given symbols and applies them. With no
// symbols given it refreshes everything the user tracks: the union of
// ledger and watchlist symbols. Symbols the provider cannot resolve are
// skipped; matching holdings/items keep their last known price.
func (s *Service) Refresh(ctx context.Context, userID uuid.UUID, symbols []string) (*Result, error) {
	if len(symbols) == 0 {
		var err error
		symbols, err = s.trackedSymbols(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	if len(symbols) == 0 {
		// Nothing tracked; return current state without a provider call.
		p, err := s.Portfolio.Get(ctx, userID)
		if err != nil {
			return nil, err
		}
		w, err := s.Watchlists.List(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &Result{Portfolio: p, Watchlists: w, Quotes: []domain.Quote{}}, nil
	}

	fetched, err := s.Provider.GetQuotes(ctx, symbols)
	if err != nil {
		log.Warn().Str("user_id", userID.String()).Err(err).Msg("quote refresh failed, state unchanged")
		return nil, err
	}

	p, err := s.Portfolio.UpdatePrices(ctx, userID, fetched)
	if err != nil {
		return nil, err
	}
	w, err := s.Watchlists.ApplyQuotes(ctx, userID, fetched)
	if err != nil {
		return nil, err
	}
	return &Result{Portfolio: p, Watchlists: w, Quotes: fetched}, nil
}

func (s *Service) trackedSymbols(ctx context.Context, userID uuid.UUID) ([]string, error) {
	p, err := s.Portfolio.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var symbols []string
	for _, h := range p.Items {
		if !seen[h.Symbol] {
			seen[h.Symbol] = true
			symbols = append(symbols, h.Symbol)
		}
	}
	watched, err := s.Watchlists.Symbols(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, symbol := range watched {
		if !seen[symbol] {
			seen[symbol] = true
			symbols = append(symbols, symbol)
		}
	}
	return symbols, nil
}
