package inbound

import (
	"context"

	"github.com/cryptofolio/cryptofolio/application/port/outbound"
)

type CoinPriceResponse struct {
	CoinID   string  `json:"coin_id"`
	PriceUSD float64 `json:"price_usd"`
	Currency string  `json:"currency"`
}

type MarketUseCase interface {
	GetCoinPrice(ctx context.Context, coinID string) (*CoinPriceResponse, error)
	SearchCoins(ctx context.Context, query string) ([]outbound.CoinSearchResult, error)
	GetCoinDetails(ctx context.Context, coinID string) (*outbound.CoinDetails, error)
	GetCoinNews(ctx context.Context, coinID string, limit int) ([]outbound.NewsArticle, error)
}
