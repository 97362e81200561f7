// Package sportsdb fetches UFC event cards from TheSportsDB. It
// complements the odds feed for MMA: cards the odds provider does not
// price yet still belong in the report, without probabilities.
package sportsdb

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
	client  *http.Client
}

func NewClient(cfg config.SportsDBConfig) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://www.thesportsdb.com"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type eventsResponse struct {
	Events []wireEvent `json:"events"`
}

type wireEvent struct {
	StrEvent    string `json:"strEvent"`
	DateEvent   string `json:"dateEvent"`
	StrTime     string `json:"strTime"`
	StrHomeTeam string `json:"strHomeTeam"`
	StrAwayTeam string `json:"strAwayTeam"`
}

// UFCEventsDay fetches UFC events for the given local date
// (YYYY-MM-DD) and maps them to raw events; the card title travels in
// Competition. Event times are best-effort and assumed UTC.
// GET /api/v1/json/{key}/eventsday.php?d=...&s=UFC
func (c *Client) UFCEventsDay(ctx context.Context, date string) ([]models.RawEvent, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("no API key configured")
	}
	params := url.Values{}
	params.Set("d", date)
	params.Set("s", "UFC")
	u := fmt.Sprintf("%s/api/v1/json/%s/eventsday.php?%s", c.baseURL, url.PathEscape(c.apiKey), params.Encode())

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

	var payload eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}

	events := make([]models.RawEvent, 0, len(payload.Events))
	for _, e := range payload.Events {
		title := e.StrEvent
		if title == "" {
			title = "UFC Event"
		}
		f1 := e.StrHomeTeam
		if f1 == "" {
			f1 = e.StrEvent
		}
		events = append(events, models.RawEvent{
			Home:        f1,
			Away:        e.StrAwayTeam,
			Kickoff:     parseEventTime(e.DateEvent, e.StrTime),
			Category:    models.MMA,
			Competition: title,
		})
	}
	return events, nil
}

func parseEventTime(date, clock string) time.Time {
	if date == "" {
		return time.Time{}
	}
	if clock != "" {
		if t, err := time.ParseInLocation("2006-01-02 15:04:05", date+" "+clock, time.UTC); err == nil {
			return t
		}
		if t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.UTC); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation("2006-01-02", date, time.UTC); err == nil {
		return t
	}
	return time.Time{}
}
