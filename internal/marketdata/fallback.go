package marketdata

import (
	"context"

	"stoxify-backend/internal/domain"

	"github.com/rs/zerolog/log"
)

// Fallback tries the live client first and serves demo data when no key is
// configured or the live call fails — the app should never show an empty
// screen because of a provider outage. Search is the exception: a live
// failure there means "no results" and is surfaced, not masked.
type Fallback struct {
	Client *AlphaVantageClient
	Mock   *MockProvider
}

func (f *Fallback) live() bool {
	return f.Client != nil && f.Client.HasValidKey()
}

func (f *Fallback) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	if f.live() {
		q, err := f.Client.GetQuote(ctx, symbol)
		if err == nil {
			return q, nil
		}
		log.Warn().Str("symbol", symbol).Err(err).Msg("live quote failed, trying demo data")
	}
	return f.Mock.GetQuote(ctx, symbol)
}

func (f *Fallback) GetQuotes(ctx context.Context, symbols []string) ([]domain.Quote, error) {
	if f.live() {
		quotes, err := f.Client.GetQuotes(ctx, symbols)
		if err == nil {
			return quotes, nil
		}
		log.Warn().Int("symbols", len(symbols)).Err(err).Msg("live quotes failed, serving demo data")
	}
	return f.Mock.GetQuotes(ctx, symbols)
}

func (f *Fallback) Search(ctx context.Context, keywords string) ([]domain.SearchResult, error) {
	if f.live() {
		return f.Client.Search(ctx, keywords)
	}
	return f.Mock.Search(ctx, keywords)
}

func (f *Fallback) MarketNews(ctx context.Context, topics []string, limit int) (*domain.NewsFeed, error) {
	if f.live() {
		feed, err := f.Client.MarketNews(ctx, topics, limit)
		if err == nil {
			return feed, nil
		}
		log.Warn().Err(err).Msg("live news failed, serving demo data")
	}
	return f.Mock.MarketNews(ctx, topics, limit)
}

func (f *Fallback) TickerNews(ctx context.Context, tickers []string, limit int) (*domain.NewsFeed, error) {
	if f.live() {
		feed, err := f.Client.TickerNews(ctx, tickers, limit)
		if err == nil {
			return feed, nil
		}
		log.Warn().Err(err).Msg("live ticker news failed, serving demo data")
	}
	return f.Mock.TickerNews(ctx, tickers, limit)
}

func (f *Fallback) TopMovers(ctx context.Context) (*domain.TopMovers, error) {
	if f.live() {
		movers, err := f.Client.TopMovers(ctx)
		if err == nil {
			return movers, nil
		}
		log.Warn().Err(err).Msg("live movers failed, serving demo data")
	}
	return f.Mock.TopMovers(ctx)
}
