package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stoxify-backend/internal/domain"
	"stoxify-backend/internal/pkg/validation"
)

// AlphaVantageClient talks to the Alpha Vantage HTTP API. The payload
// uses numbered string keys ("01. symbol", "05. price"); everything is
// parsed and normalized here.
type AlphaVantageClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewAlphaVantageClient builds a client with the given timeout.
func NewAlphaVantageClient(baseURL, apiKey string, timeout time.Duration) *AlphaVantageClient {
	return &AlphaVantageClient{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// HasValidKey reports whether a usable API key is configured.
func (c *AlphaVantageClient) HasValidKey() bool {
	return validation.IsValidAPIKey(c.APIKey)
}

// globalQuotePayload is the raw "Global Quote" wire shape.
type globalQuotePayload struct {
	Symbol        string `json:"01. symbol"`
	Open          string `json:"02. open"`
	High          string `json:"03. high"`
	Low           string `json:"04. low"`
	Price         string `json:"05. price"`
	Volume        string `json:"06. volume"`
	PreviousClose string `json:"08. previous close"`
	Change        string `json:"09. change"`
	ChangePercent string `json:"10. change percent"`
}

type searchMatchPayload struct {
	Symbol     string `json:"1. symbol"`
	Name       string `json:"2. name"`
	Type       string `json:"3. type"`
	Region     string `json:"4. region"`
	Currency   string `json:"8. currency"`
	MatchScore string `json:"9. matchScore"`
}

type moverPayload struct {
	Ticker           string `json:"ticker"`
	Price            string `json:"price"`
	ChangeAmount     string `json:"change_amount"`
	ChangePercentage string `json:"change_percentage"`
	Volume           string `json:"volume"`
}

// GetQuote fetches and normalizes one quote.
func (c *AlphaVantageClient) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	symbol = validation.NormalizeSymbol(symbol)
	body, err := c.request(ctx, url.Values{
		"function": {"GLOBAL_QUOTE"},
		"symbol":   {symbol},
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		GlobalQuote globalQuotePayload `json:"Global Quote"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode quote: %v", ErrProvider, err)
	}
	if payload.GlobalQuote.Symbol == "" {
		return nil, ErrSymbolNotFound
	}
	return normalizeQuote(payload.GlobalQuote), nil
}

// GetQuotes fetches quotes one by one. Symbols the provider cannot
// resolve are omitted from the result; any other failure aborts.
func (c *AlphaVantageClient) GetQuotes(ctx context.Context, symbols []string) ([]domain.Quote, error) {
	quotes := make([]domain.Quote, 0, len(symbols))
	for _, symbol := range symbols {
		q, err := c.GetQuote(ctx, symbol)
		if err == ErrSymbolNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, *q)
	}
	return quotes, nil
}

// Search runs symbol search.
func (c *AlphaVantageClient) Search(ctx context.Context, keywords string) ([]domain.SearchResult, error) {
	body, err := c.request(ctx, url.Values{
		"function": {"SYMBOL_SEARCH"},
		"keywords": {keywords},
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		BestMatches []searchMatchPayload `json:"bestMatches"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode search: %v", ErrProvider, err)
	}
	results := make([]domain.SearchResult, 0, len(payload.BestMatches))
	for _, m := range payload.BestMatches {
		results = append(results, domain.SearchResult{
			Symbol:     m.Symbol,
			Name:       m.Name,
			Type:       m.Type,
			Region:     m.Region,
			Currency:   m.Currency,
			MatchScore: m.MatchScore,
		})
	}
	return results, nil
}

// MarketNews fetches the news-sentiment feed for topics.
func (c *AlphaVantageClient) MarketNews(ctx context.Context, topics []string, limit int) (*domain.NewsFeed, error) {
	if len(topics) == 0 {
		topics = []string{"financial_markets"}
	}
	return c.news(ctx, url.Values{
		"function": {"NEWS_SENTIMENT"},
		"topics":   {strings.Join(topics, ",")},
		"limit":    {strconv.Itoa(limit)},
		"sort":     {"LATEST"},
	})
}

// TickerNews fetches the news-sentiment feed for specific tickers.
func (c *AlphaVantageClient) TickerNews(ctx context.Context, tickers []string, limit int) (*domain.NewsFeed, error) {
	return c.news(ctx, url.Values{
		"function": {"NEWS_SENTIMENT"},
		"tickers":  {strings.Join(tickers, ",")},
		"limit":    {strconv.Itoa(limit)},
		"sort":     {"LATEST"},
	})
}

func (c *AlphaVantageClient) news(ctx context.Context, params url.Values) (*domain.NewsFeed, error) {
	body, err := c.request(ctx, params)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Feed []domain.NewsItem `json:"feed"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode news: %v", ErrProvider, err)
	}
	return &domain.NewsFeed{Items: payload.Feed}, nil
}

// TopMovers fetches the day's top gainers and losers.
func (c *AlphaVantageClient) TopMovers(ctx context.Context) (*domain.TopMovers, error) {
	body, err := c.request(ctx, url.Values{
		"function": {"TOP_GAINERS_LOSERS"},
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		TopGainers []moverPayload `json:"top_gainers"`
		TopLosers  []moverPayload `json:"top_losers"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode movers: %v", ErrProvider, err)
	}
	return &domain.TopMovers{
		Gainers: normalizeMovers(payload.TopGainers, 5),
		Losers:  normalizeMovers(payload.TopLosers, 5),
	}, nil
}

func (c *AlphaVantageClient) request(ctx context.Context, params url.Values) ([]byte, error) {
	if !c.HasValidKey() {
		return nil, ErrNoAPIKey
	}
	params.Set("apikey", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrProvider, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	// The API signals errors inside a 200 body.
	var probe struct {
		ErrorMessage string `json:"Error Message"`
		Note         string `json:"Note"`
	}
	if err := json.Unmarshal(body, &probe); err == nil {
		if probe.ErrorMessage != "" {
			return nil, ErrSymbolNotFound
		}
		if probe.Note != "" {
			return nil, ErrRateLimited
		}
	}
	return body, nil
}

func normalizeQuote(p globalQuotePayload) *domain.Quote {
	return &domain.Quote{
		Symbol:        p.Symbol,
		Name:          p.Symbol,
		Price:         parseFloat(p.Price),
		Change:        parseFloat(p.Change),
		ChangePercent: parseFloat(strings.TrimSuffix(p.ChangePercent, "%")),
		Volume:        parseInt(p.Volume),
		High:          parseFloat(p.High),
		Low:           parseFloat(p.Low),
		Open:          parseFloat(p.Open),
		PreviousClose: parseFloat(p.PreviousClose),
	}
}

func normalizeMovers(movers []moverPayload, max int) []domain.Quote {
	if len(movers) > max {
		movers = movers[:max]
	}
	out := make([]domain.Quote, 0, len(movers))
	for _, m := range movers {
		price := parseFloat(m.Price)
		change := parseFloat(m.ChangeAmount)
		out = append(out, domain.Quote{
			Symbol:        m.Ticker,
			Name:          m.Ticker,
			Price:         price,
			Change:        change,
			ChangePercent: parseFloat(strings.TrimSuffix(m.ChangePercentage, "%")),
			Volume:        parseInt(m.Volume),
			High:          price,
			Low:           price,
			Open:          price,
			PreviousClose: price - change,
		})
	}
	return out
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func parseInt(s string) int64 {
	v, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return v
}
