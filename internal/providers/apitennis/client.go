// Package apitennis fetches today's tennis matches from api-tennis.com
// and keeps the ones involving a rostered player.
package apitennis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jcamargo/pronosbot/internal/match"
	"github.com/jcamargo/pronosbot/internal/pkg/config"
	"github.com/jcamargo/pronosbot/internal/pkg/models"
)

type Client struct {
	baseURL string
	apiKey  string
	players match.Roster
	client  *http.Client
}

func NewClient(cfg config.APITennisConfig, players match.Roster) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api-tennis.com"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		players: players,
		client:  &http.Client{Timeout: timeout},
	}
}

type matchesResponse struct {
	Data []wireMatch `json:"data"`
}

// wireMatch tolerates the provider's schema drift: players arrive as
// player1/player2 or home/away, and time as unix seconds or ISO text.
type wireMatch struct {
	Player1 string          `json:"player1"`
	Player2 string          `json:"player2"`
	Home    string          `json:"home"`
	Away    string          `json:"away"`
	Time    json.RawMessage `json:"time"`
}

// MatchesToday fetches the provider's "today" listing and maps matches
// with a rostered player to raw events.
// GET /v1/matches?date=today&apikey=...
func (c *Client) MatchesToday(ctx context.Context) ([]models.RawEvent, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("no API key configured")
	}
	params := url.Values{}
	params.Set("date", "today")
	params.Set("apikey", c.apiKey)
	u := fmt.Sprintf("%s/v1/matches?%s", c.baseURL, params.Encode())

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
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	var payload matchesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode matches: %w", err)
	}

	var events []models.RawEvent
	for _, m := range payload.Data {
		p1 := m.Player1
		if p1 == "" {
			p1 = m.Home
		}
		p2 := m.Player2
		if p2 == "" {
			p2 = m.Away
		}
		if p1 == "" || p2 == "" {
			continue
		}
		if c.players.Len() > 0 && !c.players.Contains(p1) && !c.players.Contains(p2) {
			continue
		}
		events = append(events, models.RawEvent{
			Home:     p1,
			Away:     p2,
			Kickoff:  ParseMatchTime(m.Time),
			Category: models.Tennis,
		})
	}
	return events, nil
}

// ParseMatchTime decodes the provider's match time, which may be unix
// seconds (number or quoted number) or an ISO-8601 string, possibly
// without an offset (assumed UTC). Anything else is "unknown".
func ParseMatchTime(raw json.RawMessage) time.Time {
	if len(raw) == 0 {
		return time.Time{}
	}

	var asNumber float64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		if asNumber <= 0 {
			return time.Time{}
		}
		return time.Unix(int64(asNumber), 0).UTC()
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err != nil {
		return time.Time{}
	}
	asString = strings.TrimSpace(asString)
	if asString == "" {
		return time.Time{}
	}
	if secs, err := strconv.ParseInt(asString, 10, 64); err == nil && secs > 0 {
		return time.Unix(secs, 0).UTC()
	}
	if t, err := time.Parse(time.RFC3339, asString); err == nil {
		return t
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", asString, time.UTC); err == nil {
		return t
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", asString, time.UTC); err == nil {
		return t
	}
	return time.Time{}
}
