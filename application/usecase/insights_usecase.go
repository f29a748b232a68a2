package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cryptofolio/cryptofolio/application/port/inbound"
	"github.com/cryptofolio/cryptofolio/application/port/outbound"
	"github.com/cryptofolio/cryptofolio/infrastructure/service/logger"
)

const insightsNewsLimit = 5

type InsightsUseCase struct {
	provider  outbound.InsightsProvider
	market    inbound.MarketUseCase
	portfolio inbound.PortfolioUseCase
	logger    logger.Logger
}

func NewInsightsUseCase(
	provider outbound.InsightsProvider,
	market inbound.MarketUseCase,
	portfolio inbound.PortfolioUseCase,
	log logger.Logger,
) *InsightsUseCase {
	return &InsightsUseCase{
		provider:  provider,
		market:    market,
		portfolio: portfolio,
		logger:    log,
	}
}

// CoinInsights builds the provider input from live coin details and recent
// headlines. A failed news fetch degrades to an analysis without articles
// instead of failing the request.
func (uc *InsightsUseCase) CoinInsights(ctx context.Context, coinID string) (*outbound.CoinInsights, error) {
	if coinID == "" {
		return nil, errors.New("coin_id is required")
	}

	details, err := uc.market.GetCoinDetails(ctx, coinID)
	if err != nil {
		return nil, err
	}

	articles, err := uc.market.GetCoinNews(ctx, coinID, insightsNewsLimit)
	if err != nil {
		uc.logger.Warn(ctx, "news unavailable for insights", map[string]interface{}{
			"coin_id": coinID,
			"error":   err.Error(),
		})
		articles = nil
	}

	insights, err := uc.provider.GenerateCoinInsights(ctx, outbound.CoinInsightsInput{
		CoinID:       coinID,
		CoinName:     details.Name,
		CurrentPrice: details.CurrentPrice,
		Articles:     articles,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate insights for %s: %w", coinID, err)
	}
	return insights, nil
}

// PortfolioAnalysis is a rule-based health report over the priced holdings.
// Ownership enforcement comes from the portfolio valuation call.
func (uc *InsightsUseCase) PortfolioAnalysis(ctx context.Context, userID, portfolioID int64) (*inbound.PortfolioAnalysisResponse, error) {
	value, err := uc.portfolio.Value(ctx, userID, portfolioID)
	if err != nil {
		return nil, err
	}

	holdingsCount := len(value.Holdings)

	diversification := "low"
	if holdingsCount >= 5 {
		diversification = "good"
	}
	riskLevel := "medium"
	if holdingsCount < 3 {
		riskLevel = "high"
	}

	var recommendations []string
	if holdingsCount < 3 {
		recommendations = append(recommendations, "Consider diversifying into more assets")
	}
	if value.TotalValue < 1000 {
		recommendations = append(recommendations, "Small portfolio - focus on major cryptocurrencies")
	}
	if len(recommendations) == 0 {
		recommendations = []string{"Portfolio looks balanced"}
	}

	return &inbound.PortfolioAnalysisResponse{
		PortfolioID:     portfolioID,
		TotalValue:      value.TotalValue,
		HoldingsCount:   holdingsCount,
		Diversification: diversification,
		RiskLevel:       riskLevel,
		Recommendations: recommendations,
		GeneratedAt:     time.Now().UTC(),
	}, nil
}
