// Package oddsapi fetches head-to-head betting prices from The Odds
// API (v4). Odds enrichment is optional for the report, so the
// Fetcher wrapper in this package never surfaces errors: every failure
// degrades to an empty listing.
package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jcamargo/pronosbot/internal/pkg/config"
	"github.com/jcamargo/pronosbot/internal/pkg/models"
)

type Client struct {
	baseURL string
	apiKey  string
	regions string
	client  *http.Client
}

func NewClient(cfg config.OddsAPIConfig) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.the-odds-api.com"
	}
	regions := cfg.Regions
	if regions == "" {
		regions = "us,eu,uk"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		regions: regions,
		client:  &http.Client{Timeout: timeout},
	}
}

// HasCredential reports whether an API key is configured. Without one
// there is no point issuing requests.
func (c *Client) HasCredential() bool {
	return c.apiKey != ""
}

// OddsRaw fetches the current h2h odds listing for a sport key and
// returns the raw JSON body.
// GET /v4/sports/{key}/odds?apiKey=...&regions=...&markets=h2h&dateFormat=iso
func (c *Client) OddsRaw(ctx context.Context, sportKey string) ([]byte, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("regions", c.regions)
	params.Set("markets", "h2h")
	params.Set("dateFormat", "iso")
	u := fmt.Sprintf("%s/v4/sports/%s/odds?%s", c.baseURL, url.PathEscape(sportKey), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

// DecodeOdds parses an odds listing body into events.
func DecodeOdds(data []byte) ([]models.OddsEvent, error) {
	var events []models.OddsEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("decode odds: %w", err)
	}
	return events, nil
}
