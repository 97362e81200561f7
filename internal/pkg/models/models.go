package models

import (
	"time"
)

// RawEvent is a sporting event as reported by a results provider.
// A zero Kickoff means the provider did not give a usable timestamp.
type RawEvent struct {
	Home        string
	Away        string
	Kickoff     time.Time
	Category    Category
	Competition string
}

// OddsEvent is one event from the odds provider's listing.
// JSON tags follow The Odds API v4 wire format.
type OddsEvent struct {
	ID           string      `json:"id"`
	SportTitle   string      `json:"sport_title"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	CommenceTime time.Time   `json:"commence_time"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// Bookmaker is one bookmaker's quote set inside an odds event.
type Bookmaker struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Markets []Market `json:"markets"`
}

// Market is a single betting market. Only the "h2h" key is consumed.
type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

// Outcome is one priced outcome of a market. Price is a decimal odd.
type Outcome struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Probabilities maps an outcome name (as quoted by the bookmaker) to
// an implied probability on the percent scale, rounded to one decimal.
// An empty map means "no odds available" and is a normal state, not an
// error: the report must render it as such, never as a zero claim.
type Probabilities map[string]float64

// MatchRecord is the enriched per-event record handed to the report
// assembler. KickoffLocal is in America/Bogota; zero means unknown.
type MatchRecord struct {
	Home         string
	Away         string
	Competition  string
	Category     Category
	KickoffLocal time.Time
	Probs        Probabilities
}
