package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/cryptofolio/cryptofolio/application/port/inbound"
	"github.com/cryptofolio/cryptofolio/application/port/outbound"
	"github.com/cryptofolio/cryptofolio/infrastructure/service/logger"
)

const defaultNewsLimit = 5

type MarketUseCase struct {
	provider outbound.MarketDataProvider
	news     outbound.NewsProvider
	cache    outbound.PriceCache
	logger   logger.Logger
}

func NewMarketUseCase(
	provider outbound.MarketDataProvider,
	news outbound.NewsProvider,
	cache outbound.PriceCache,
	log logger.Logger,
) *MarketUseCase {
	return &MarketUseCase{
		provider: provider,
		news:     news,
		cache:    cache,
		logger:   log,
	}
}

// GetCoinPrice serves from the cache when possible. Cache errors degrade to
// a provider call; a failed cache write never fails the lookup.
func (uc *MarketUseCase) GetCoinPrice(ctx context.Context, coinID string) (*inbound.CoinPriceResponse, error) {
	if coinID == "" {
		return nil, errors.New("coin_id is required")
	}

	if uc.cache != nil {
		if price, err := uc.cache.GetPrice(ctx, coinID); err == nil {
			return &inbound.CoinPriceResponse{CoinID: coinID, PriceUSD: price, Currency: "usd"}, nil
		} else if !errors.Is(err, outbound.ErrCacheMiss) {
			uc.logger.Warn(ctx, "price cache read failed", map[string]interface{}{
				"coin_id": coinID,
				"error":   err.Error(),
			})
		}
	}

	price, err := uc.provider.GetCoinPrice(ctx, coinID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price for %s: %w", coinID, err)
	}

	if uc.cache != nil {
		if err := uc.cache.SetPrice(ctx, coinID, price); err != nil {
			uc.logger.Warn(ctx, "price cache write failed", map[string]interface{}{
				"coin_id": coinID,
				"error":   err.Error(),
			})
		}
	}

	return &inbound.CoinPriceResponse{CoinID: coinID, PriceUSD: price, Currency: "usd"}, nil
}

func (uc *MarketUseCase) SearchCoins(ctx context.Context, query string) ([]outbound.CoinSearchResult, error) {
	if len(query) < 2 {
		return nil, errors.New("query must be at least 2 characters")
	}
	results, err := uc.provider.SearchCoins(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("coin search failed: %w", err)
	}
	return results, nil
}

func (uc *MarketUseCase) GetCoinDetails(ctx context.Context, coinID string) (*outbound.CoinDetails, error) {
	if coinID == "" {
		return nil, errors.New("coin_id is required")
	}
	details, err := uc.provider.GetCoinDetails(ctx, coinID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch details for %s: %w", coinID, err)
	}
	return details, nil
}

func (uc *MarketUseCase) GetCoinNews(ctx context.Context, coinID string, limit int) ([]outbound.NewsArticle, error) {
	if coinID == "" {
		return nil, errors.New("coin_id is required")
	}
	if limit <= 0 {
		limit = defaultNewsLimit
	}
	articles, err := uc.news.GetCoinNews(ctx, coinID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news for %s: %w", coinID, err)
	}
	return articles, nil
}
