package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cryptofolio/cryptofolio/application/port/outbound"
	"github.com/cryptofolio/cryptofolio/infrastructure/service/logger"
)

const (
	defaultTimeout = 10 * time.Second
	lookbackDays   = 7
)

// NewsAPIClient fetches coin headlines from newsapi.org, restricted to the
// last seven days and sorted by publication time.
type NewsAPIClient struct {
	baseURL    string
	apiKey     string
	logger     logger.Logger
	httpClient *http.Client
}

func NewNewsAPIClient(baseURL, apiKey string, log logger.Logger) *NewsAPIClient {
	return &NewsAPIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		logger:  log,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

func (c *NewsAPIClient) GetCoinNews(ctx context.Context, coinName string, limit int) ([]outbound.NewsArticle, error) {
	from := time.Now().UTC().AddDate(0, 0, -lookbackDays).Format("2006-01-02")

	params := url.Values{}
	params.Set("q", coinName+" cryptocurrency")
	params.Set("from", from)
	params.Set("sortBy", "publishedAt")
	params.Set("language", "en")
	params.Set("pageSize", strconv.Itoa(limit))
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create news request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news api returned status %d", resp.StatusCode)
	}

	var payload struct {
		Articles []struct {
			Title       string    `json:"title"`
			Description string    `json:"description"`
			PublishedAt time.Time `json:"publishedAt"`
			URL         string    `json:"url"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode news response: %w", err)
	}

	articles := make([]outbound.NewsArticle, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		articles = append(articles, outbound.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
			URL:         a.URL,
		})
	}

	c.logger.Debug(ctx, "fetched coin news", map[string]interface{}{
		"coin":  coinName,
		"count": len(articles),
	})
	return articles, nil
}
