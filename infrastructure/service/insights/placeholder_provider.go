package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/cryptofolio/cryptofolio/application/port/outbound"
)

// PlaceholderProvider serves deployments without a Gemini key. It produces a
// deterministic neutral report so the insights endpoints keep working in
// development and tests.
type PlaceholderProvider struct{}

func NewPlaceholderProvider() *PlaceholderProvider {
	return &PlaceholderProvider{}
}

func (p *PlaceholderProvider) GenerateCoinInsights(_ context.Context, input outbound.CoinInsightsInput) (*outbound.CoinInsights, error) {
	return &outbound.CoinInsights{
		CoinID:       input.CoinID,
		CoinName:     input.CoinName,
		CurrentPrice: input.CurrentPrice,
		GeneratedAt:  time.Now().UTC(),
		Summary:      fmt.Sprintf("Analysis for %s - API keys not configured", input.CoinID),
		Sentiment:    "neutral",
		KeyPoints: []string{
			"Configure API keys for real-time insights",
		},
		RiskLevel:      "medium",
		Recommendation: "Do your own research before investing",
		NewsSources:    0,
	}, nil
}
