package outbound

import (
	"context"
	"time"
)

// CoinInsightsInput is everything the model needs to analyse one coin: the
// identity, the live price and the recent headlines already fetched upstream.
type CoinInsightsInput struct {
	CoinID       string
	CoinName     string
	CurrentPrice float64
	Articles     []NewsArticle
}

type CoinInsights struct {
	CoinID         string    `json:"coin_id"`
	CoinName       string    `json:"coin_name"`
	CurrentPrice   float64   `json:"current_price"`
	GeneratedAt    time.Time `json:"generated_at"`
	Summary        string    `json:"summary"`
	Sentiment      string    `json:"sentiment"`
	KeyPoints      []string  `json:"key_points"`
	RiskLevel      string    `json:"risk_level"`
	Recommendation string    `json:"recommendation"`
	NewsSources    int       `json:"news_sources"`
}

// InsightsProvider generates investment commentary for a coin. Deployments
// without an AI key run the placeholder implementation, so callers must not
// assume a model sits behind this.
type InsightsProvider interface {
	GenerateCoinInsights(ctx context.Context, input CoinInsightsInput) (*CoinInsights, error)
}
