package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cryptofolio/cryptofolio/application/port/outbound"
)

func TestGetCoinPrice_CacheHitSkipsProvider(t *testing.T) {
	ctx := context.Background()
	provider := new(MockMarketDataProvider)
	news := new(MockNewsProvider)
	cache := new(MockPriceCache)

	cache.On("GetPrice", ctx, "bitcoin").Return(float64(30000), nil)

	uc := NewMarketUseCase(provider, news, cache, nopLogger{})
	resp, err := uc.GetCoinPrice(ctx, "bitcoin")

	assert.NoError(t, err)
	assert.Equal(t, float64(30000), resp.PriceUSD)
	assert.Equal(t, "usd", resp.Currency)
	provider.AssertNotCalled(t, "GetCoinPrice", mock.Anything, mock.Anything)
}

func TestGetCoinPrice_CacheMissFillsCache(t *testing.T) {
	ctx := context.Background()
	provider := new(MockMarketDataProvider)
	news := new(MockNewsProvider)
	cache := new(MockPriceCache)

	cache.On("GetPrice", ctx, "bitcoin").Return(float64(0), outbound.ErrCacheMiss)
	provider.On("GetCoinPrice", ctx, "bitcoin").Return(float64(31000), nil)
	cache.On("SetPrice", ctx, "bitcoin", float64(31000)).Return(nil)

	uc := NewMarketUseCase(provider, news, cache, nopLogger{})
	resp, err := uc.GetCoinPrice(ctx, "bitcoin")

	assert.NoError(t, err)
	assert.Equal(t, float64(31000), resp.PriceUSD)
	cache.AssertExpectations(t)
}

func TestGetCoinPrice_CacheFailureDegrades(t *testing.T) {
	ctx := context.Background()
	provider := new(MockMarketDataProvider)
	news := new(MockNewsProvider)
	cache := new(MockPriceCache)

	cache.On("GetPrice", ctx, "bitcoin").Return(float64(0), errors.New("redis down"))
	provider.On("GetCoinPrice", ctx, "bitcoin").Return(float64(32000), nil)
	cache.On("SetPrice", ctx, "bitcoin", float64(32000)).Return(errors.New("redis down"))

	uc := NewMarketUseCase(provider, news, cache, nopLogger{})
	resp, err := uc.GetCoinPrice(ctx, "bitcoin")

	// Cache errors never fail the lookup.
	assert.NoError(t, err)
	assert.Equal(t, float64(32000), resp.PriceUSD)
}

func TestGetCoinPrice_NoCacheConfigured(t *testing.T) {
	ctx := context.Background()
	provider := new(MockMarketDataProvider)
	news := new(MockNewsProvider)

	provider.On("GetCoinPrice", ctx, "bitcoin").Return(float64(29000), nil)

	uc := NewMarketUseCase(provider, news, nil, nopLogger{})
	resp, err := uc.GetCoinPrice(ctx, "bitcoin")

	assert.NoError(t, err)
	assert.Equal(t, float64(29000), resp.PriceUSD)
}

func TestSearchCoins_ShortQuery(t *testing.T) {
	provider := new(MockMarketDataProvider)
	news := new(MockNewsProvider)

	uc := NewMarketUseCase(provider, news, nil, nopLogger{})
	_, err := uc.SearchCoins(context.Background(), "b")

	assert.Error(t, err)
	provider.AssertNotCalled(t, "SearchCoins", mock.Anything, mock.Anything)
}

func TestGetCoinNews_DefaultLimit(t *testing.T) {
	ctx := context.Background()
	provider := new(MockMarketDataProvider)
	news := new(MockNewsProvider)

	news.On("GetCoinNews", ctx, "bitcoin", defaultNewsLimit).Return([]outbound.NewsArticle{
		{Title: "headline"},
	}, nil)

	uc := NewMarketUseCase(provider, news, nil, nopLogger{})
	articles, err := uc.GetCoinNews(ctx, "bitcoin", 0)

	assert.NoError(t, err)
	assert.Len(t, articles, 1)
	news.AssertExpectations(t)
}
