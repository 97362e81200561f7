package apitennis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jcamargo/pronosbot/internal/match"
	"github.com/jcamargo/pronosbot/internal/pkg/config"
)

const tennisPayload = `{
  "data": [
    {"player1": "Jannik Sinner", "player2": "Carlos Alcaraz", "time": 1717272000},
    {"home": "N. Djokovic", "away": "H. Rune", "time": "2024-06-01T18:00:00Z"},
    {"player1": "Somebody Else", "player2": "Another Player", "time": 1717272000},
    {"player1": "Casper Ruud", "player2": ""}
  ]
}`

func TestMatchesToday_RosterFilterAndSchemaDrift(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("apikey"); got != "k" {
			t.Errorf("apikey = %q, want k", got)
		}
		if got := r.URL.Query().Get("date"); got != "today" {
			t.Errorf("date = %q, want today", got)
		}
		w.Write([]byte(tennisPayload))
	}))
	defer srv.Close()

	players := match.NewRoster("Sinner", "Djokovic", "Alcaraz", "Rune")
	c := NewClient(config.APITennisConfig{BaseURL: srv.URL, APIKey: "k"}, players)

	events, err := c.MatchesToday(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Sinner-Alcaraz kept (unix time), Djokovic-Rune kept via the
	// home/away schema (ISO time), the unrostered pair dropped, the
	// one-sided record skipped.
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2: %+v", len(events), events)
	}
	if events[0].Home != "Jannik Sinner" {
		t.Errorf("events[0].Home = %q", events[0].Home)
	}
	want := time.Unix(1717272000, 0).UTC()
	if !events[0].Kickoff.Equal(want) {
		t.Errorf("unix kickoff = %v, want %v", events[0].Kickoff, want)
	}
	if events[1].Home != "N. Djokovic" {
		t.Errorf("events[1].Home = %q", events[1].Home)
	}
}

func TestParseMatchTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"unix number", `1717272000`, time.Unix(1717272000, 0).UTC()},
		{"quoted unix", `"1717272000"`, time.Unix(1717272000, 0).UTC()},
		{"iso with offset", `"2024-06-01T18:00:00Z"`, time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)},
		{"iso without offset assumed utc", `"2024-06-01T18:00:00"`, time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)},
		{"space separated", `"2024-06-01 18:00:00"`, time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)},
		{"garbage", `"whenever"`, time.Time{}},
		{"null", `null`, time.Time{}},
		{"zero", `0`, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMatchTime(json.RawMessage(tt.raw))
			if !got.Equal(tt.want) {
				t.Errorf("ParseMatchTime(%s) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
