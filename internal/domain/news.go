package domain

// NewsTopic is a topic tag with its relevance to the article.
type NewsTopic struct {
	Topic          string `json:"topic"`
	RelevanceScore string `json:"relevance_score"`
}

// TickerSentiment is per-ticker sentiment attached to an article.
type TickerSentiment struct {
	Ticker         string `json:"ticker"`
	RelevanceScore string `json:"relevance_score"`
	SentimentScore string `json:"ticker_sentiment_score"`
	SentimentLabel string `json:"ticker_sentiment_label"`
}

// NewsItem is one normalized market news article.
type NewsItem struct {
	Title            string            `json:"title"`
	URL              string            `json:"url"`
	TimePublished    string            `json:"time_published"`
	Authors          []string          `json:"authors"`
	Summary          string            `json:"summary"`
	BannerImage      string            `json:"banner_image"`
	Source           string            `json:"source"`
	SourceDomain     string            `json:"source_domain"`
	Topics           []NewsTopic       `json:"topics"`
	SentimentScore   float64           `json:"overall_sentiment_score"`
	SentimentLabel   string            `json:"overall_sentiment_label"`
	TickerSentiments []TickerSentiment `json:"ticker_sentiment"`
}

// NewsFeed is a list of articles plus whether it came from demo data.
type NewsFeed struct {
	Items         []NewsItem `json:"items"`
	UsingMockData bool       `json:"usingMockData,omitempty"`
}
