package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cryptofolio/cryptofolio/application/port/outbound"
	"github.com/cryptofolio/cryptofolio/infrastructure/service/logger"
)

const defaultTimeout = 10 * time.Second

// CoinGeckoClient talks to the CoinGecko REST API. The pro API key is passed
// as a query parameter when configured.
type CoinGeckoClient struct {
	baseURL    string
	apiKey     string
	logger     logger.Logger
	httpClient *http.Client
}

func NewCoinGeckoClient(baseURL, apiKey string, log logger.Logger) *CoinGeckoClient {
	return &CoinGeckoClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		logger:  log,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

func (c *CoinGeckoClient) GetCoinPrice(ctx context.Context, coinID string) (float64, error) {
	prices, err := c.GetCoinPrices(ctx, []string{coinID})
	if err != nil {
		return 0, err
	}
	price, ok := prices[coinID]
	if !ok {
		return 0, outbound.ErrPriceNotFound
	}
	return price, nil
}

func (c *CoinGeckoClient) GetCoinPrices(ctx context.Context, coinIDs []string) (map[string]float64, error) {
	params := url.Values{}
	params.Set("ids", strings.Join(coinIDs, ","))
	params.Set("vs_currencies", "usd")

	var payload map[string]map[string]float64
	if err := c.get(ctx, "/simple/price", params, &payload); err != nil {
		return nil, err
	}

	prices := make(map[string]float64, len(payload))
	for id, currencies := range payload {
		if usd, ok := currencies["usd"]; ok {
			prices[id] = usd
		}
	}
	return prices, nil
}

func (c *CoinGeckoClient) SearchCoins(ctx context.Context, query string) ([]outbound.CoinSearchResult, error) {
	params := url.Values{}
	params.Set("query", query)

	var payload struct {
		Coins []outbound.CoinSearchResult `json:"coins"`
	}
	if err := c.get(ctx, "/search", params, &payload); err != nil {
		return nil, err
	}
	return payload.Coins, nil
}

func (c *CoinGeckoClient) GetCoinDetails(ctx context.Context, coinID string) (*outbound.CoinDetails, error) {
	params := url.Values{}
	params.Set("localization", "false")
	params.Set("tickers", "false")
	params.Set("market_data", "true")
	params.Set("community_data", "false")
	params.Set("developer_data", "false")

	var payload struct {
		ID         string `json:"id"`
		Symbol     string `json:"symbol"`
		Name       string `json:"name"`
		MarketData struct {
			CurrentPrice   map[string]float64 `json:"current_price"`
			MarketCap      map[string]float64 `json:"market_cap"`
			PriceChange24h float64            `json:"price_change_24h"`
		} `json:"market_data"`
	}
	if err := c.get(ctx, "/coins/"+url.PathEscape(coinID), params, &payload); err != nil {
		return nil, err
	}

	return &outbound.CoinDetails{
		ID:             payload.ID,
		Symbol:         payload.Symbol,
		Name:           payload.Name,
		CurrentPrice:   payload.MarketData.CurrentPrice["usd"],
		MarketCap:      payload.MarketData.MarketCap["usd"],
		PriceChange24h: payload.MarketData.PriceChange24h,
	}, nil
}

func (c *CoinGeckoClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if c.apiKey != "" {
		params.Set("x_cg_pro_api_key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create coingecko request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("coingecko request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return outbound.ErrCoinNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("coingecko returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode coingecko response: %w", err)
	}
	return nil
}
