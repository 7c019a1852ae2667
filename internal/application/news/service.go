// Package news exposes market and per-ticker news over the provider.
package news

import (
	"context"
	"errors"

	"stoxify-backend/internal/domain"
	"stoxify-backend/internal/marketdata"
	"stoxify-backend/internal/pkg/validation"
)

var ErrInvalidTicker = errors.New("Invalid ticker symbol")

const defaultLimit = 20

type Service struct {
	Provider marketdata.Provider
}

// Market returns general market news, optionally filtered by topics.
func (s *Service) Market(ctx context.Context, topics []string, limit int) (*domain.NewsFeed, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return s.Provider.MarketNews(ctx, topics, limit)
}

// Tickers returns news scoped to the given ticker symbols.
func (s *Service) Tickers(ctx context.Context, tickers []string, limit int) (*domain.NewsFeed, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	normalized := make([]string, 0, len(tickers))
	for _, ticker := range tickers {
		if !validation.IsValidSymbol(ticker) {
			return nil, ErrInvalidTicker
		}
		normalized = append(normalized, validation.NormalizeSymbol(ticker))
	}
	if len(normalized) == 0 {
		return s.Provider.MarketNews(ctx, nil, limit)
	}
	return s.Provider.TickerNews(ctx, normalized, limit)
}
