// Package stocks exposes read-only market data lookups over the provider.
package stocks

import (
	"context"
	"strings"

	"stoxify-backend/internal/domain"
	"stoxify-backend/internal/marketdata"
	"stoxify-backend/internal/pkg/validation"
)

type Service struct {
	Provider marketdata.Provider
}

// Quote fetches a single quote. The symbol is validated before any
// provider call so malformed input never reaches the upstream API.
func (s *Service) Quote(ctx context.Context, symbol string) (*domain.Quote, error) {
	if !validation.IsValidSymbol(symbol) {
		return nil, ErrInvalidSymbol
	}
	return s.Provider.GetQuote(ctx, validation.NormalizeSymbol(symbol))
}

// Quotes fetches a batch of quotes. Invalid symbols are rejected up front;
// valid but unresolvable ones are simply omitted from the result.
func (s *Service) Quotes(ctx context.Context, symbols []string) ([]domain.Quote, error) {
	normalized := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		if !validation.IsValidSymbol(symbol) {
			return nil, ErrInvalidSymbol
		}
		normalized = append(normalized, validation.NormalizeSymbol(symbol))
	}
	return s.Provider.GetQuotes(ctx, normalized)
}

func (s *Service) Search(ctx context.Context, keywords string) ([]domain.SearchResult, error) {
	if strings.TrimSpace(keywords) == "" {
		return nil, ErrKeywordsRequired
	}
	return s.Provider.Search(ctx, keywords)
}

func (s *Service) TopMovers(ctx context.Context) (*domain.TopMovers, error) {
	return s.Provider.TopMovers(ctx)
}

// Popular returns quotes for the curated popular list.
func (s *Service) Popular(ctx context.Context) ([]domain.Quote, error) {
	return s.Provider.GetQuotes(ctx, marketdata.PopularSymbols())
}

// Indices returns quotes for the major index proxies.
func (s *Service) Indices(ctx context.Context) ([]domain.Quote, error) {
	return s.Provider.GetQuotes(ctx, marketdata.IndexSymbols())
}
