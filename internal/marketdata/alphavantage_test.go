package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "ABCD1234EFGH5678"

func newTestClient(t *testing.T, handler http.HandlerFunc) *AlphaVantageClient {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAlphaVantageClient(srv.URL, testKey, 5*time.Second)
}

func TestGetQuote_NormalizesNumberedKeys(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GLOBAL_QUOTE", r.URL.Query().Get("function"))
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, testKey, r.URL.Query().Get("apikey"))
		w.Write([]byte(`{"Global Quote": {
			"01. symbol": "AAPL",
			"02. open": "190.20",
			"03. high": "193.80",
			"04. low": "189.90",
			"05. price": "192.35",
			"06. volume": "52400000",
			"08. previous close": "190.20",
			"09. change": "2.15",
			"10. change percent": "1.1303%"
		}}`))
	})

	q, err := c.GetQuote(context.Background(), "aapl")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", q.Symbol)
	assert.Equal(t, 192.35, q.Price)
	assert.Equal(t, 2.15, q.Change)
	assert.InDelta(t, 1.1303, q.ChangePercent, 1e-9)
	assert.Equal(t, int64(52400000), q.Volume)
	assert.Equal(t, 190.20, q.PreviousClose)
}

func TestGetQuote_EmptyPayloadMeansUnknownSymbol(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Global Quote": {}}`))
	})
	_, err := c.GetQuote(context.Background(), "ZZZZ")
	assert.ErrorIs(t, err, ErrSymbolNotFound)
}

func TestRequest_ErrorMessageInBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Error Message": "Invalid API call."}`))
	})
	_, err := c.GetQuote(context.Background(), "AAPL")
	assert.ErrorIs(t, err, ErrSymbolNotFound)
}

func TestRequest_NoteMeansRateLimited(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Note": "Thank you for using Alpha Vantage!"}`))
	})
	_, err := c.GetQuote(context.Background(), "AAPL")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestRequest_MissingKeyRejectedLocally(t *testing.T) {
	c := NewAlphaVantageClient("http://example.invalid", "", time.Second)
	_, err := c.GetQuote(context.Background(), "AAPL")
	assert.ErrorIs(t, err, ErrNoAPIKey)

	c = NewAlphaVantageClient("http://example.invalid", "demo", time.Second)
	_, err = c.GetQuote(context.Background(), "AAPL")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestGetQuotes_OmitsUnresolvedSymbols(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("symbol") == "AAPL" {
			w.Write([]byte(`{"Global Quote": {"01. symbol": "AAPL", "05. price": "192.35"}}`))
			return
		}
		w.Write([]byte(`{"Global Quote": {}}`))
	})

	quotes, err := c.GetQuotes(context.Background(), []string{"AAPL", "ZZZZ"})
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "AAPL", quotes[0].Symbol)
}

func TestSearch_NormalizesMatches(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "SYMBOL_SEARCH", r.URL.Query().Get("function"))
		w.Write([]byte(`{"bestMatches": [{
			"1. symbol": "AAPL",
			"2. name": "Apple Inc",
			"3. type": "Equity",
			"4. region": "United States",
			"8. currency": "USD",
			"9. matchScore": "1.0000"
		}]}`))
	})

	results, err := c.Search(context.Background(), "apple")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "AAPL", results[0].Symbol)
	assert.Equal(t, "Apple Inc", results[0].Name)
	assert.Equal(t, "1.0000", results[0].MatchScore)
}

func TestTopMovers_CapsAtFive(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"top_gainers": [
				{"ticker": "A", "price": "10", "change_amount": "1", "change_percentage": "11.1%", "volume": "100"},
				{"ticker": "B", "price": "10", "change_amount": "1", "change_percentage": "11.1%", "volume": "100"},
				{"ticker": "C", "price": "10", "change_amount": "1", "change_percentage": "11.1%", "volume": "100"},
				{"ticker": "D", "price": "10", "change_amount": "1", "change_percentage": "11.1%", "volume": "100"},
				{"ticker": "E", "price": "10", "change_amount": "1", "change_percentage": "11.1%", "volume": "100"},
				{"ticker": "F", "price": "10", "change_amount": "1", "change_percentage": "11.1%", "volume": "100"}
			],
			"top_losers": [
				{"ticker": "X", "price": "20", "change_amount": "-2", "change_percentage": "-9.1%", "volume": "200"}
			]
		}`))
	})

	movers, err := c.TopMovers(context.Background())
	require.NoError(t, err)
	assert.Len(t, movers.Gainers, 5)
	require.Len(t, movers.Losers, 1)
	assert.Equal(t, "X", movers.Losers[0].Symbol)
	assert.InDelta(t, -9.1, movers.Losers[0].ChangePercent, 1e-9)
	assert.Equal(t, 22.0, movers.Losers[0].PreviousClose)
}

func TestMockProvider_GetQuotesOmitsUnknown(t *testing.T) {
	m := &MockProvider{}
	quotes, err := m.GetQuotes(context.Background(), []string{"AAPL", "NOPE", "nvda"})
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "AAPL", quotes[0].Symbol)
	assert.Equal(t, "NVDA", quotes[1].Symbol)
}

func TestMockProvider_SearchByNameFragment(t *testing.T) {
	m := &MockProvider{}
	results, err := m.Search(context.Background(), "micro")
	require.NoError(t, err)
	symbols := make([]string, 0, len(results))
	for _, r := range results {
		symbols = append(symbols, r.Symbol)
	}
	assert.Contains(t, symbols, "MSFT")
	assert.Contains(t, symbols, "AMD")

	_, err = m.Search(context.Background(), "zzzzzz")
	assert.ErrorIs(t, err, ErrSymbolNotFound)
}

func TestFallback_ServesMockWithoutKey(t *testing.T) {
	f := &Fallback{
		Client: NewAlphaVantageClient("http://example.invalid", "", time.Second),
		Mock:   &MockProvider{},
	}
	q, err := f.GetQuote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", q.Symbol)

	feed, err := f.MarketNews(context.Background(), nil, 2)
	require.NoError(t, err)
	assert.True(t, feed.UsingMockData)
	assert.Len(t, feed.Items, 2)
}
