package sportsdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jcamargo/pronosbot/internal/pkg/config"
)

const eventsPayload = `{
  "events": [
    {
      "strEvent": "UFC 300: Pereira vs Hill",
      "dateEvent": "2024-06-01",
      "strTime": "22:00:00",
      "strHomeTeam": "Alex Pereira",
      "strAwayTeam": "Jamahal Hill"
    },
    {
      "strEvent": "UFC Fight Night",
      "dateEvent": "2024-06-01",
      "strTime": "",
      "strHomeTeam": "",
      "strAwayTeam": ""
    }
  ]
}`

func TestUFCEventsDay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("s"); got != "UFC" {
			t.Errorf("s = %q, want UFC", got)
		}
		if got := r.URL.Query().Get("d"); got != "2024-06-01" {
			t.Errorf("d = %q", got)
		}
		w.Write([]byte(eventsPayload))
	}))
	defer srv.Close()

	c := NewClient(config.SportsDBConfig{BaseURL: srv.URL + "/", APIKey: "3"})
	events, err := c.UFCEventsDay(context.Background(), "2024-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Home != "Alex Pereira" || events[0].Away != "Jamahal Hill" {
		t.Errorf("fighters = %q / %q", events[0].Home, events[0].Away)
	}
	if events[0].Competition != "UFC 300: Pereira vs Hill" {
		t.Errorf("competition = %q", events[0].Competition)
	}
	want := time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC)
	if !events[0].Kickoff.Equal(want) {
		t.Errorf("kickoff = %v, want %v", events[0].Kickoff, want)
	}

	// Card without a clock still gets the date.
	if events[1].Kickoff.IsZero() {
		t.Error("date-only event should have a non-zero kickoff")
	}
	// Missing home fighter falls back to the card title.
	if events[1].Home != "UFC Fight Night" {
		t.Errorf("fallback home = %q", events[1].Home)
	}
}

func TestUFCEventsDay_NoCredential(t *testing.T) {
	c := NewClient(config.SportsDBConfig{})
	if _, err := c.UFCEventsDay(context.Background(), "2024-06-01"); err == nil {
		t.Error("expected error without credential")
	}
}
