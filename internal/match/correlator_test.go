package match

import (
	"testing"
	"time"

	"github.com/jcamargo/pronosbot/internal/pkg/models"
)

func TestCorrelator_Find_EmptyCandidates(t *testing.T) {
	c := NewCorrelator(SubstringPairMatcher{})
	if got := c.Find(nil, "A", "B", time.Time{}); got != nil {
		t.Errorf("Find on empty list = %+v, want nil", got)
	}
}

func TestCorrelator_Find_OrderIndependentWithinWindow(t *testing.T) {
	c := NewCorrelator(SubstringPairMatcher{})
	commence := time.Date(2024, 6, 1, 21, 0, 0, 0, time.UTC)
	candidates := []models.OddsEvent{
		{HomeTeam: "Colombia", AwayTeam: "Brazil", CommenceTime: commence},
	}

	// Participants given in the opposite order, target 2h off kickoff.
	got := c.Find(candidates, "Brazil", "Colombia", commence.Add(2*time.Hour))
	if got == nil {
		t.Fatal("expected a match within the 24h window, got nil")
	}
	if got.HomeTeam != "Colombia" || got.AwayTeam != "Brazil" {
		t.Errorf("matched wrong entry: %+v", got)
	}

	// Same names but 25h away: outside tolerance, no match.
	if got := c.Find(candidates, "Brazil", "Colombia", commence.Add(25*time.Hour)); got != nil {
		t.Errorf("expected nil beyond 24h tolerance, got %+v", got)
	}
}

func TestCorrelator_Find_MissingTimeDisablesWindow(t *testing.T) {
	c := NewCorrelator(SubstringPairMatcher{})
	commence := time.Date(2024, 6, 1, 21, 0, 0, 0, time.UTC)

	// No target time: name match alone suffices.
	candidates := []models.OddsEvent{
		{HomeTeam: "Colombia", AwayTeam: "Brazil", CommenceTime: commence},
	}
	if got := c.Find(candidates, "Colombia", "Brazil", time.Time{}); got == nil {
		t.Error("missing target time must disable the time filter")
	}

	// No candidate commence time: same rule.
	candidates = []models.OddsEvent{
		{HomeTeam: "Colombia", AwayTeam: "Brazil"},
	}
	if got := c.Find(candidates, "Colombia", "Brazil", commence.Add(72*time.Hour)); got == nil {
		t.Error("missing commence time must disable the time filter")
	}
}

func TestCorrelator_Find_FirstQualifyingWins(t *testing.T) {
	c := NewCorrelator(SubstringPairMatcher{})
	commence := time.Date(2024, 6, 1, 21, 0, 0, 0, time.UTC)
	candidates := []models.OddsEvent{
		{ID: "other", HomeTeam: "Argentina", AwayTeam: "Chile", CommenceTime: commence},
		{ID: "stale", HomeTeam: "Colombia", AwayTeam: "Brazil", CommenceTime: commence.Add(-48 * time.Hour)},
		{ID: "first", HomeTeam: "Colombia", AwayTeam: "Brazil", CommenceTime: commence},
		{ID: "second", HomeTeam: "Colombia", AwayTeam: "Brazil", CommenceTime: commence.Add(time.Hour)},
	}

	got := c.Find(candidates, "Colombia", "Brazil", commence)
	if got == nil {
		t.Fatal("expected a match, got nil")
	}
	if got.ID != "first" {
		t.Errorf("expected first qualifying candidate, got %q", got.ID)
	}
}
