package outbound

import (
	"context"
	"errors"
	"time"
)

var (
	ErrCoinNotFound  = errors.New("coin not found")
	ErrPriceNotFound = errors.New("price not found")
	ErrCacheMiss     = errors.New("cache miss")
)

type CoinSearchResult struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type CoinDetails struct {
	ID             string  `json:"id"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	CurrentPrice   float64 `json:"current_price"`
	MarketCap      float64 `json:"market_cap"`
	PriceChange24h float64 `json:"price_change_24h"`
}

type NewsArticle struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	URL         string    `json:"url"`
}

// MarketDataProvider is the external price feed (CoinGecko).
type MarketDataProvider interface {
	GetCoinPrice(ctx context.Context, coinID string) (float64, error)
	GetCoinPrices(ctx context.Context, coinIDs []string) (map[string]float64, error)
	SearchCoins(ctx context.Context, query string) ([]CoinSearchResult, error)
	GetCoinDetails(ctx context.Context, coinID string) (*CoinDetails, error)
}

type NewsProvider interface {
	GetCoinNews(ctx context.Context, coinName string, limit int) ([]NewsArticle, error)
}

// PriceCache fronts the market data provider. Implementations return
// ErrCacheMiss when a key is absent; cache failures must not fail a lookup.
type PriceCache interface {
	GetPrice(ctx context.Context, coinID string) (float64, error)
	SetPrice(ctx context.Context, coinID string, price float64) error
}
