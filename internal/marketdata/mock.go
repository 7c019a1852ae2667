package marketdata

import (
	"context"
	"strings"

	"stoxify-backend/internal/domain"
	"stoxify-backend/internal/pkg/validation"
)

// MockProvider serves deterministic demo data so the app works without an
// API key. Quotes for unknown symbols are omitted from GetQuotes, matching
// the provider contract.
type MockProvider struct{}

var mockQuotes = map[string]domain.Quote{
	"AAPL":  {Symbol: "AAPL", Name: "Apple Inc", Price: 192.35, Change: 2.15, ChangePercent: 1.13, Volume: 52400000, High: 193.80, Low: 189.90, Open: 190.20, PreviousClose: 190.20},
	"GOOGL": {Symbol: "GOOGL", Name: "Alphabet Inc", Price: 167.89, Change: 5.23, ChangePercent: 3.21, Volume: 15600000, High: 169.50, Low: 162.66, Open: 162.66, PreviousClose: 162.66},
	"MSFT":  {Symbol: "MSFT", Name: "Microsoft Corporation", Price: 428.70, Change: -1.32, ChangePercent: -0.31, Volume: 17900000, High: 432.10, Low: 426.50, Open: 430.02, PreviousClose: 430.02},
	"AMZN":  {Symbol: "AMZN", Name: "Amazon.com Inc", Price: 186.40, Change: 1.05, ChangePercent: 0.57, Volume: 30100000, High: 187.90, Low: 184.20, Open: 185.35, PreviousClose: 185.35},
	"TSLA":  {Symbol: "TSLA", Name: "Tesla Inc", Price: 178.25, Change: 7.35, ChangePercent: 4.30, Volume: 28900000, High: 180.50, Low: 170.90, Open: 170.90, PreviousClose: 170.90},
	"META":  {Symbol: "META", Name: "Meta Platforms Inc", Price: 512.30, Change: 18.75, ChangePercent: 3.80, Volume: 19800000, High: 515.20, Low: 493.55, Open: 493.55, PreviousClose: 493.55},
	"NVDA":  {Symbol: "NVDA", Name: "NVIDIA Corporation", Price: 432.50, Change: 25.80, ChangePercent: 6.35, Volume: 42500000, High: 435.20, Low: 405.30, Open: 408.70, PreviousClose: 406.70},
	"AMD":   {Symbol: "AMD", Name: "Advanced Micro Devices", Price: 156.75, Change: 8.45, ChangePercent: 5.70, Volume: 31200000, High: 158.90, Low: 147.30, Open: 148.30, PreviousClose: 148.30},
	"NFLX":  {Symbol: "NFLX", Name: "Netflix Inc", Price: 456.20, Change: -28.90, ChangePercent: -5.96, Volume: 18700000, High: 485.10, Low: 456.20, Open: 485.10, PreviousClose: 485.10},
	"PYPL":  {Symbol: "PYPL", Name: "PayPal Holdings Inc", Price: 78.45, Change: -4.12, ChangePercent: -4.99, Volume: 22300000, High: 82.57, Low: 78.45, Open: 82.57, PreviousClose: 82.57},
	"INTC":  {Symbol: "INTC", Name: "Intel Corporation", Price: 23.15, Change: -1.05, ChangePercent: -4.34, Volume: 67800000, High: 24.20, Low: 23.15, Open: 24.20, PreviousClose: 24.20},
	"IBM":   {Symbol: "IBM", Name: "International Business Machines", Price: 204.35, Change: -8.25, ChangePercent: -3.88, Volume: 4200000, High: 212.60, Low: 204.35, Open: 212.60, PreviousClose: 212.60},
	"JPM":   {Symbol: "JPM", Name: "JPMorgan Chase & Co", Price: 198.60, Change: 0.85, ChangePercent: 0.43, Volume: 8200000, High: 199.90, Low: 196.80, Open: 197.75, PreviousClose: 197.75},
	"CRM":   {Symbol: "CRM", Name: "Salesforce Inc", Price: 298.70, Change: -10.50, ChangePercent: -3.40, Volume: 8900000, High: 309.20, Low: 298.70, Open: 309.20, PreviousClose: 309.20},
	"V":     {Symbol: "V", Name: "Visa Inc", Price: 276.10, Change: 1.60, ChangePercent: 0.58, Volume: 5600000, High: 277.40, Low: 273.90, Open: 274.50, PreviousClose: 274.50},
}

func (m *MockProvider) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	q, ok := mockQuotes[validation.NormalizeSymbol(symbol)]
	if !ok {
		return nil, ErrSymbolNotFound
	}
	return &q, nil
}

func (m *MockProvider) GetQuotes(ctx context.Context, symbols []string) ([]domain.Quote, error) {
	quotes := make([]domain.Quote, 0, len(symbols))
	for _, symbol := range symbols {
		if q, ok := mockQuotes[validation.NormalizeSymbol(symbol)]; ok {
			quotes = append(quotes, q)
		}
	}
	return quotes, nil
}

func (m *MockProvider) Search(ctx context.Context, keywords string) ([]domain.SearchResult, error) {
	kw := strings.ToLower(strings.TrimSpace(keywords))
	var results []domain.SearchResult
	for _, symbol := range PopularSymbols() {
		q, ok := mockQuotes[symbol]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(q.Symbol), kw) || strings.Contains(strings.ToLower(q.Name), kw) {
			results = append(results, domain.SearchResult{
				Symbol:   q.Symbol,
				Name:     q.Name,
				Type:     "Equity",
				Region:   "United States",
				Currency: "USD",
			})
		}
	}
	if len(results) == 0 {
		return nil, ErrSymbolNotFound
	}
	return results, nil
}

func (m *MockProvider) MarketNews(ctx context.Context, topics []string, limit int) (*domain.NewsFeed, error) {
	feed := []domain.NewsItem{
		{
			Title:          "Demo: Tech Stocks Show Strong Performance (Mock Data)",
			URL:            "https://stoxify.app/demo-news-1",
			TimePublished:  "20250703T150000",
			Authors:        []string{"Stoxify Demo"},
			Summary:        "This is demo data. Technology stocks continue to show strong performance in today's trading session. Add a valid API key to see real news.",
			Source:         "Stoxify Demo",
			SourceDomain:   "stoxify.app",
			Topics:         []domain.NewsTopic{{Topic: "Technology", RelevanceScore: "0.9"}},
			SentimentScore: 0.25,
			SentimentLabel: "Somewhat-Bullish",
		},
		{
			Title:          "Demo: Economic Indicators Point to Steady Growth (Mock Data)",
			URL:            "https://stoxify.app/demo-news-2",
			TimePublished:  "20250703T140000",
			Authors:        []string{"Stoxify Demo"},
			Summary:        "This is demo data. Recent economic indicators suggest a steady growth trajectory.",
			Source:         "Stoxify Demo",
			SourceDomain:   "stoxify.app",
			Topics:         []domain.NewsTopic{{Topic: "Economy", RelevanceScore: "0.95"}},
			SentimentScore: 0.4,
			SentimentLabel: "Bullish",
		},
		{
			Title:          "Demo: Market Analysis Shows Mixed Signals (Mock Data)",
			URL:            "https://stoxify.app/demo-news-3",
			TimePublished:  "20250703T120000",
			Authors:        []string{"Stoxify Demo"},
			Summary:        "This is demo data. Current market analysis reveals mixed signals across different sectors.",
			Source:         "Stoxify Demo",
			SourceDomain:   "stoxify.app",
			Topics:         []domain.NewsTopic{{Topic: "Markets", RelevanceScore: "0.85"}},
			SentimentScore: -0.1,
			SentimentLabel: "Somewhat-Bearish",
		},
	}
	if limit > 0 && limit < len(feed) {
		feed = feed[:limit]
	}
	return &domain.NewsFeed{Items: feed, UsingMockData: true}, nil
}

func (m *MockProvider) TickerNews(ctx context.Context, tickers []string, limit int) (*domain.NewsFeed, error) {
	return m.MarketNews(ctx, nil, limit)
}

func (m *MockProvider) TopMovers(ctx context.Context) (*domain.TopMovers, error) {
	gainers := []domain.Quote{mockQuotes["NVDA"], mockQuotes["AMD"], mockQuotes["TSLA"], mockQuotes["META"], mockQuotes["GOOGL"]}
	losers := []domain.Quote{mockQuotes["NFLX"], mockQuotes["PYPL"], mockQuotes["INTC"], mockQuotes["IBM"], mockQuotes["CRM"]}
	return &domain.TopMovers{Gainers: gainers, Losers: losers}, nil
}
