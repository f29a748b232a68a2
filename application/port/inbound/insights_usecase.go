package inbound

import (
	"context"
	"time"

	"github.com/cryptofolio/cryptofolio/application/port/outbound"
)

// PortfolioAnalysisResponse is a rule-based portfolio health report. Unlike
// coin insights there is no model behind it.
type PortfolioAnalysisResponse struct {
	PortfolioID     int64     `json:"portfolio_id"`
	TotalValue      float64   `json:"total_value"`
	HoldingsCount   int       `json:"holdings_count"`
	Diversification string    `json:"diversification"`
	RiskLevel       string    `json:"risk_level"`
	Recommendations []string  `json:"recommendations"`
	GeneratedAt     time.Time `json:"generated_at"`
}

type InsightsUseCase interface {
	CoinInsights(ctx context.Context, coinID string) (*outbound.CoinInsights, error)
	PortfolioAnalysis(ctx context.Context, userID, portfolioID int64) (*PortfolioAnalysisResponse, error)
}
