// Package footballdata fetches the day's fixtures from
// football-data.org (v4). It is the preferred football results source;
// api-sports is the fallback.
package footballdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jcamargo/pronosbot/internal/match"
	"github.com/jcamargo/pronosbot/internal/pkg/config"
	"github.com/jcamargo/pronosbot/internal/pkg/models"
)

type Client struct {
	baseURL string
	apiKey  string
	teams   match.Roster
	client  *http.Client
}

// NewClient builds a client. teams filters fixtures to ones involving
// a listed national side; an empty roster lets everything through.
func NewClient(cfg config.FootballDataConfig, teams match.Roster) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.football-data.org"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		teams:   teams,
		client:  &http.Client{Timeout: timeout},
	}
}

type matchesResponse struct {
	Matches []wireMatch `json:"matches"`
}

type wireMatch struct {
	Competition struct {
		Name string `json:"name"`
	} `json:"competition"`
	HomeTeam struct {
		Name string `json:"name"`
	} `json:"homeTeam"`
	AwayTeam struct {
		Name string `json:"name"`
	} `json:"awayTeam"`
	UTCDate string `json:"utcDate"`
}

// Matches fetches fixtures for the given local date (YYYY-MM-DD) and
// maps them to raw events. Individual records with unusable fields are
// skipped; the rest of the batch is still returned.
// GET /v4/matches?dateFrom=...&dateTo=...
func (c *Client) Matches(ctx context.Context, date string) ([]models.RawEvent, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("no API token configured")
	}
	u := fmt.Sprintf("%s/v4/matches?dateFrom=%s&dateTo=%s", c.baseURL, date, date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("X-Auth-Token", c.apiKey)
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

	events := make([]models.RawEvent, 0, len(payload.Matches))
	for _, m := range payload.Matches {
		if m.HomeTeam.Name == "" || m.AwayTeam.Name == "" {
			continue
		}
		if c.teams.Len() > 0 && !c.teams.Contains(m.HomeTeam.Name) && !c.teams.Contains(m.AwayTeam.Name) {
			continue
		}
		events = append(events, models.RawEvent{
			Home:        m.HomeTeam.Name,
			Away:        m.AwayTeam.Name,
			Kickoff:     parseUTCDate(m.UTCDate),
			Category:    models.Football,
			Competition: m.Competition.Name,
		})
	}
	return events, nil
}

// parseUTCDate parses an ISO-8601 kickoff; a timestamp without an
// offset is assumed UTC. Unparseable input becomes the zero time,
// which downstream treats as "kickoff unknown".
func parseUTCDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC); err == nil {
		return t
	}
	return time.Time{}
}
