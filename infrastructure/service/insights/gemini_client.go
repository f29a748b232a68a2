package insights

import (
	"bytes"
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

const defaultTimeout = 30 * time.Second

// GeminiClient generates coin commentary through the Gemini REST API. The
// model is asked for a JSON object; when it answers with prose anyway the
// response is degraded into a plain-text summary instead of erroring out.
type GeminiClient struct {
	baseURL    string
	apiKey     string
	model      string
	logger     logger.Logger
	httpClient *http.Client
}

func NewGeminiClient(baseURL, apiKey, model string, log logger.Logger) *GeminiClient {
	return &GeminiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		logger:  log,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type insightsPayload struct {
	Summary        string   `json:"summary"`
	Sentiment      string   `json:"sentiment"`
	KeyPoints      []string `json:"key_points"`
	RiskLevel      string   `json:"risk_level"`
	Recommendation string   `json:"recommendation"`
}

func (c *GeminiClient) GenerateCoinInsights(ctx context.Context, input outbound.CoinInsightsInput) (*outbound.CoinInsights, error) {
	text, err := c.generate(ctx, buildPrompt(input))
	if err != nil {
		return nil, err
	}

	payload, ok := parseInsightsJSON(text)
	if !ok {
		c.logger.Warn(ctx, "gemini returned non-JSON insights, falling back to text parse", map[string]interface{}{
			"coin_id": input.CoinID,
		})
		payload = parseInsightsText(text)
	}

	return &outbound.CoinInsights{
		CoinID:         input.CoinID,
		CoinName:       input.CoinName,
		CurrentPrice:   input.CurrentPrice,
		GeneratedAt:    time.Now().UTC(),
		Summary:        payload.Summary,
		Sentiment:      payload.Sentiment,
		KeyPoints:      payload.KeyPoints,
		RiskLevel:      payload.RiskLevel,
		Recommendation: payload.Recommendation,
		NewsSources:    len(input.Articles),
	}, nil
}

func buildPrompt(input outbound.CoinInsightsInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a cryptocurrency analyst. Analyze %s (%s), currently trading at $%.2f.\n\n",
		input.CoinName, input.CoinID, input.CurrentPrice)

	if len(input.Articles) > 0 {
		b.WriteString("Recent headlines:\n")
		for _, article := range input.Articles {
			fmt.Fprintf(&b, "- %s (%s)\n", article.Title, article.Source)
		}
		b.WriteString("\n")
	}

	b.WriteString("Respond with a JSON object only, using exactly these keys:\n")
	b.WriteString(`{"summary": "2-3 sentence market summary", "sentiment": "bullish|bearish|neutral", `)
	b.WriteString(`"key_points": ["up to 4 short points"], "risk_level": "low|medium|high", `)
	b.WriteString(`"recommendation": "one sentence, not financial advice"}`)
	return b.String()
}

// parseInsightsJSON extracts the object between the first and last brace so
// that fenced or prefixed model output still parses.
func parseInsightsJSON(text string) (insightsPayload, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return insightsPayload{}, false
	}

	var payload insightsPayload
	if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil {
		return insightsPayload{}, false
	}
	if payload.Summary == "" {
		return insightsPayload{}, false
	}
	return payload, true
}

func parseInsightsText(text string) insightsPayload {
	summary := strings.TrimSpace(text)
	if len(summary) > 300 {
		summary = summary[:300]
	}

	var points []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-* "))
		if line == "" {
			continue
		}
		points = append(points, line)
		if len(points) == 4 {
			break
		}
	}

	return insightsPayload{
		Summary:        summary,
		Sentiment:      "neutral",
		KeyPoints:      points,
		RiskLevel:      "medium",
		Recommendation: "Do your own research before investing",
	}
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode gemini request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(c.model), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var payload geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return payload.Candidates[0].Content.Parts[0].Text, nil
}
