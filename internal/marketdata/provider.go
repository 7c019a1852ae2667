// Package marketdata is the boundary to the quote/news provider. Wire
// formats (Alpha Vantage's numbered string keys) are normalized into the
// domain shapes here and never leak into the ledger or registry.
package marketdata

import (
	"context"
	"errors"

	"stoxify-backend/internal/domain"
)

var (
	ErrSymbolNotFound = errors.New("Stock symbol not found")
	ErrRateLimited    = errors.New("API call frequency limit reached. Please try again later.")
	ErrNoAPIKey       = errors.New("Invalid or missing API key")
	ErrProvider       = errors.New("market data provider failure")
)

// Provider serves normalized quotes, search results and news.
// GetQuotes returns one quote per resolvable symbol; unresolved symbols
// are silently omitted, never erred individually.
type Provider interface {
	GetQuote(ctx context.Context, symbol string) (*domain.Quote, error)
	GetQuotes(ctx context.Context, symbols []string) ([]domain.Quote, error)
	Search(ctx context.Context, keywords string) ([]domain.SearchResult, error)
	MarketNews(ctx context.Context, topics []string, limit int) (*domain.NewsFeed, error)
	TickerNews(ctx context.Context, tickers []string, limit int) (*domain.NewsFeed, error)
	TopMovers(ctx context.Context) (*domain.TopMovers, error)
}

// PopularSymbols is the curated list shown on the home screen.
func PopularSymbols() []string {
	return []string{
		"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA",
		"META", "NVDA", "AMD", "NFLX", "ORCL",
		"CRM", "ADBE", "PYPL", "INTC", "IBM",
	}
}

// IndexSymbols is the market index ETF list.
func IndexSymbols() []string {
	return []string{"SPY", "QQQ", "DIA", "IWM", "VTI"}
}
