package quotes

import (
	"context"
	"errors"
	"testing"

	"stoxify-backend/internal/application/portfolio"
	"stoxify-backend/internal/application/watchlists"
	"stoxify-backend/internal/domain"
	"stoxify-backend/internal/infrastructure/store"
	"stoxify-backend/internal/marketdata"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeProvider returns canned quotes or a canned error.
type fakeProvider struct {
	quotes  []domain.Quote
	err     error
	queried []string
}

func (f *fakeProvider) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	return nil, marketdata.ErrSymbolNotFound
}

func (f *fakeProvider) GetQuotes(ctx context.Context, symbols []string) ([]domain.Quote, error) {
	f.queried = symbols
	if f.err != nil {
		return nil, f.err
	}
	return f.quotes, nil
}

func (f *fakeProvider) Search(ctx context.Context, keywords string) ([]domain.SearchResult, error) {
	return nil, nil
}

func (f *fakeProvider) MarketNews(ctx context.Context, topics []string, limit int) (*domain.NewsFeed, error) {
	return &domain.NewsFeed{}, nil
}

func (f *fakeProvider) TickerNews(ctx context.Context, tickers []string, limit int) (*domain.NewsFeed, error) {
	return &domain.NewsFeed{}, nil
}

func (f *fakeProvider) TopMovers(ctx context.Context) (*domain.TopMovers, error) {
	return &domain.TopMovers{}, nil
}

func setupRefresh(t *testing.T, p *fakeProvider) (*Service, uuid.UUID) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&store.Snapshot{}))
	st := &store.Store{DB: db}
	return &Service{
		Provider:   p,
		Portfolio:  &portfolio.Service{Store: st},
		Watchlists: &watchlists.Service{Store: st},
	}, uuid.New()
}

func TestRefresh_AppliesQuotesToLedgerAndWatchlists(t *testing.T) {
	provider := &fakeProvider{quotes: []domain.Quote{
		{Symbol: "AAPL", Price: 180, Change: 2, ChangePercent: 1.1},
	}}
	s, userID := setupRefresh(t, provider)
	ctx := context.Background()

	_, err := s.Portfolio.AddHolding(ctx, userID, portfolio.AddInput{Symbol: "AAPL", Quantity: 5, Price: 150, CurrentPrice: 150})
	require.NoError(t, err)
	state, err := s.Watchlists.List(ctx, userID)
	require.NoError(t, err)
	_, err = s.Watchlists.AddItem(ctx, userID, state.ActiveWatchlistID, watchlists.ItemInput{Symbol: "AAPL", Price: 150})
	require.NoError(t, err)

	result, err := s.Refresh(ctx, userID, nil)
	require.NoError(t, err)

	assert.Equal(t, 900.0, result.Portfolio.TotalValue)
	assert.Equal(t, 180.0, result.Watchlists.Watchlists[0].Items[0].Price)
	assert.Equal(t, 1.1, result.Watchlists.Watchlists[0].Items[0].ChangePercent)
	assert.ElementsMatch(t, []string{"AAPL"}, provider.queried)
}

func TestRefresh_ProviderErrorLeavesStateUntouched(t *testing.T) {
	provider := &fakeProvider{err: errors.New("network down")}
	s, userID := setupRefresh(t, provider)
	ctx := context.Background()

	before, err := s.Portfolio.AddHolding(ctx, userID, portfolio.AddInput{Symbol: "AAPL", Quantity: 5, Price: 150, CurrentPrice: 150})
	require.NoError(t, err)

	_, err = s.Refresh(ctx, userID, []string{"AAPL"})
	require.Error(t, err)

	after, err := s.Portfolio.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRefresh_UnionOfTrackedSymbols(t *testing.T) {
	provider := &fakeProvider{quotes: []domain.Quote{}}
	s, userID := setupRefresh(t, provider)
	ctx := context.Background()

	_, err := s.Portfolio.AddHolding(ctx, userID, portfolio.AddInput{Symbol: "AAPL", Quantity: 1, Price: 150, CurrentPrice: 150})
	require.NoError(t, err)
	state, err := s.Watchlists.List(ctx, userID)
	require.NoError(t, err)
	_, err = s.Watchlists.AddItem(ctx, userID, state.ActiveWatchlistID, watchlists.ItemInput{Symbol: "AAPL"})
	require.NoError(t, err)
	_, err = s.Watchlists.AddItem(ctx, userID, state.ActiveWatchlistID, watchlists.ItemInput{Symbol: "NVDA"})
	require.NoError(t, err)

	_, err = s.Refresh(ctx, userID, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"AAPL", "NVDA"}, provider.queried)
}

func TestRefresh_NothingTrackedSkipsProvider(t *testing.T) {
	provider := &fakeProvider{err: errors.New("should not be called")}
	s, userID := setupRefresh(t, provider)

	result, err := s.Refresh(context.Background(), userID, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Quotes)
	assert.Nil(t, provider.queried)
}

func TestRefresh_UnmatchedHoldingsKeepLastPrice(t *testing.T) {
	provider := &fakeProvider{quotes: []domain.Quote{{Symbol: "AAPL", Price: 180}}}
	s, userID := setupRefresh(t, provider)
	ctx := context.Background()

	_, err := s.Portfolio.AddHolding(ctx, userID, portfolio.AddInput{Symbol: "AAPL", Quantity: 1, Price: 150, CurrentPrice: 150})
	require.NoError(t, err)
	_, err = s.Portfolio.AddHolding(ctx, userID, portfolio.AddInput{Symbol: "DELISTED", Quantity: 1, Price: 10, CurrentPrice: 12})
	require.NoError(t, err)

	result, err := s.Refresh(ctx, userID, nil)
	require.NoError(t, err)

	require.Len(t, result.Portfolio.Items, 2)
	assert.Equal(t, 180.0, result.Portfolio.Items[0].CurrentPrice)
	assert.Equal(t, 12.0, result.Portfolio.Items[1].CurrentPrice)
}
