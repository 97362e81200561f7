// Package apisports fetches the day's fixtures from api-sports (v3).
// It is the legacy fallback used when football-data.org returns
// nothing; only national-team fixtures are kept.
package apisports

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

func NewClient(cfg config.APISportsConfig, teams match.Roster) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://v3.football.api-sports.io"
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

type fixturesResponse struct {
	Response []wireFixture `json:"response"`
}

type wireFixture struct {
	Fixture struct {
		Date string `json:"date"`
	} `json:"fixture"`
	League struct {
		Name string `json:"name"`
	} `json:"league"`
	Teams struct {
		Home wireTeam `json:"home"`
		Away wireTeam `json:"away"`
	} `json:"teams"`
}

type wireTeam struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	National bool   `json:"national"`
}

// Fixtures fetches fixtures for the given local date (YYYY-MM-DD),
// keeping national-team games whose country is on the roster.
// GET /fixtures?date=...
func (c *Client) Fixtures(ctx context.Context, date string) ([]models.RawEvent, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("no API key configured")
	}
	u := fmt.Sprintf("%s/fixtures?date=%s", c.baseURL, date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("x-apisports-key", c.apiKey)
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

	var payload fixturesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	events := make([]models.RawEvent, 0, len(payload.Response))
	for _, f := range payload.Response {
		home := f.Teams.Home
		away := f.Teams.Away
		if home.Name == "" || away.Name == "" {
			continue
		}
		if !home.National && !away.National {
			continue
		}
		if c.teams.Len() > 0 && !c.teams.Contains(home.Country) && !c.teams.Contains(away.Country) {
			continue
		}
		kickoff := time.Time{}
		if t, err := time.Parse(time.RFC3339, f.Fixture.Date); err == nil {
			kickoff = t
		}
		events = append(events, models.RawEvent{
			Home:        home.Name,
			Away:        away.Name,
			Kickoff:     kickoff,
			Category:    models.Football,
			Competition: f.League.Name,
		})
	}
	return events, nil
}
