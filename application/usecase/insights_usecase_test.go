package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cryptofolio/cryptofolio/application/port/inbound"
	"github.com/cryptofolio/cryptofolio/application/port/outbound"
	"github.com/cryptofolio/cryptofolio/domain/entity"
)

func newInsightsFixture() (*MockInsightsProvider, *MockMarketUseCase, *MockPortfolioUseCase, *InsightsUseCase) {
	provider := new(MockInsightsProvider)
	market := new(MockMarketUseCase)
	portfolio := new(MockPortfolioUseCase)
	uc := NewInsightsUseCase(provider, market, portfolio, nopLogger{})
	return provider, market, portfolio, uc
}

func TestCoinInsights(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		provider, market, _, uc := newInsightsFixture()

		market.On("GetCoinDetails", ctx, "bitcoin").Return(&outbound.CoinDetails{
			ID:           "bitcoin",
			Name:         "Bitcoin",
			CurrentPrice: 65000,
		}, nil)
		articles := []outbound.NewsArticle{
			{Title: "Bitcoin climbs", Source: "Example News"},
			{Title: "ETF inflows continue", Source: "Example News"},
		}
		market.On("GetCoinNews", ctx, "bitcoin", 5).Return(articles, nil)
		provider.On("GenerateCoinInsights", ctx, outbound.CoinInsightsInput{
			CoinID:       "bitcoin",
			CoinName:     "Bitcoin",
			CurrentPrice: 65000,
			Articles:     articles,
		}).Return(&outbound.CoinInsights{
			CoinID:      "bitcoin",
			CoinName:    "Bitcoin",
			Summary:     "Strong momentum",
			Sentiment:   "bullish",
			NewsSources: 2,
		}, nil)

		insights, err := uc.CoinInsights(ctx, "bitcoin")

		assert.NoError(t, err)
		assert.Equal(t, "bullish", insights.Sentiment)
		assert.Equal(t, 2, insights.NewsSources)
		provider.AssertExpectations(t)
	})

	t.Run("CoinNotFound", func(t *testing.T) {
		provider, market, _, uc := newInsightsFixture()
		market.On("GetCoinDetails", ctx, "nope").Return(nil, outbound.ErrCoinNotFound)

		insights, err := uc.CoinInsights(ctx, "nope")

		assert.Nil(t, insights)
		assert.ErrorIs(t, err, outbound.ErrCoinNotFound)
		provider.AssertNotCalled(t, "GenerateCoinInsights", mock.Anything, mock.Anything)
	})

	t.Run("NewsFailureDegrades", func(t *testing.T) {
		provider, market, _, uc := newInsightsFixture()

		market.On("GetCoinDetails", ctx, "bitcoin").Return(&outbound.CoinDetails{
			ID:           "bitcoin",
			Name:         "Bitcoin",
			CurrentPrice: 65000,
		}, nil)
		market.On("GetCoinNews", ctx, "bitcoin", 5).Return(nil, errors.New("news api down"))
		provider.On("GenerateCoinInsights", ctx, mock.MatchedBy(func(input outbound.CoinInsightsInput) bool {
			return input.CoinID == "bitcoin" && len(input.Articles) == 0
		})).Return(&outbound.CoinInsights{
			CoinID:      "bitcoin",
			Summary:     "No recent coverage",
			NewsSources: 0,
		}, nil)

		insights, err := uc.CoinInsights(ctx, "bitcoin")

		assert.NoError(t, err)
		assert.Equal(t, 0, insights.NewsSources)
	})

	t.Run("ProviderFailure", func(t *testing.T) {
		provider, market, _, uc := newInsightsFixture()

		market.On("GetCoinDetails", ctx, "bitcoin").Return(&outbound.CoinDetails{
			ID:   "bitcoin",
			Name: "Bitcoin",
		}, nil)
		market.On("GetCoinNews", ctx, "bitcoin", 5).Return([]outbound.NewsArticle{}, nil)
		provider.On("GenerateCoinInsights", ctx, mock.Anything).Return(nil, errors.New("model unavailable"))

		insights, err := uc.CoinInsights(ctx, "bitcoin")

		assert.Nil(t, insights)
		assert.Error(t, err)
	})

	t.Run("EmptyCoinID", func(t *testing.T) {
		_, market, _, uc := newInsightsFixture()

		insights, err := uc.CoinInsights(ctx, "")

		assert.Nil(t, insights)
		assert.Error(t, err)
		market.AssertNotCalled(t, "GetCoinDetails", mock.Anything, mock.Anything)
	})
}

func TestPortfolioAnalysis(t *testing.T) {
	ctx := context.Background()

	holdings := func(n int) []inbound.HoldingValue {
		out := make([]inbound.HoldingValue, n)
		for i := range out {
			out[i] = inbound.HoldingValue{Holding: entity.Holding{CoinID: "coin"}, Value: 100}
		}
		return out
	}

	t.Run("SmallPortfolioIsHighRisk", func(t *testing.T) {
		_, _, portfolio, uc := newInsightsFixture()
		portfolio.On("Value", ctx, int64(1), int64(10)).Return(&inbound.PortfolioValueResponse{
			PortfolioID: 10,
			TotalValue:  500,
			Holdings:    holdings(2),
		}, nil)

		analysis, err := uc.PortfolioAnalysis(ctx, 1, 10)

		assert.NoError(t, err)
		assert.Equal(t, "low", analysis.Diversification)
		assert.Equal(t, "high", analysis.RiskLevel)
		assert.Contains(t, analysis.Recommendations, "Consider diversifying into more assets")
		assert.Contains(t, analysis.Recommendations, "Small portfolio - focus on major cryptocurrencies")
	})

	t.Run("DiversifiedPortfolio", func(t *testing.T) {
		_, _, portfolio, uc := newInsightsFixture()
		portfolio.On("Value", ctx, int64(1), int64(10)).Return(&inbound.PortfolioValueResponse{
			PortfolioID: 10,
			TotalValue:  25000,
			Holdings:    holdings(6),
		}, nil)

		analysis, err := uc.PortfolioAnalysis(ctx, 1, 10)

		assert.NoError(t, err)
		assert.Equal(t, "good", analysis.Diversification)
		assert.Equal(t, "medium", analysis.RiskLevel)
		assert.Equal(t, []string{"Portfolio looks balanced"}, analysis.Recommendations)
		assert.Equal(t, 6, analysis.HoldingsCount)
		assert.Equal(t, 25000.0, analysis.TotalValue)
	})

	t.Run("MidSizeHoldingsStayMediumRisk", func(t *testing.T) {
		_, _, portfolio, uc := newInsightsFixture()
		portfolio.On("Value", ctx, int64(1), int64(10)).Return(&inbound.PortfolioValueResponse{
			PortfolioID: 10,
			TotalValue:  5000,
			Holdings:    holdings(4),
		}, nil)

		analysis, err := uc.PortfolioAnalysis(ctx, 1, 10)

		assert.NoError(t, err)
		assert.Equal(t, "low", analysis.Diversification)
		assert.Equal(t, "medium", analysis.RiskLevel)
		assert.Equal(t, []string{"Portfolio looks balanced"}, analysis.Recommendations)
	})

	t.Run("NotFoundPassesThrough", func(t *testing.T) {
		_, _, portfolio, uc := newInsightsFixture()
		portfolio.On("Value", ctx, int64(1), int64(99)).Return(nil, outbound.ErrPortfolioNotFound)

		analysis, err := uc.PortfolioAnalysis(ctx, 1, 99)

		assert.Nil(t, analysis)
		assert.ErrorIs(t, err, outbound.ErrPortfolioNotFound)
	})
}
