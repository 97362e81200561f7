package report

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jcamargo/pronosbot/internal/match"
	"github.com/jcamargo/pronosbot/internal/pkg/localtime"
	"github.com/jcamargo/pronosbot/internal/pkg/models"
)

// maxMMAEvents caps the MMA section; cards can list a dozen-plus
// fights and the report only needs the headliners.
const maxMMAEvents = 10

// OddsSource provides the odds listing for a category. Implementations
// are fail-soft: an empty slice is the only failure mode.
type OddsSource interface {
	FetchOdds(ctx context.Context, category models.Category) []models.OddsEvent
}

// FootballResults is the preferred football fixtures source.
type FootballResults interface {
	Matches(ctx context.Context, date string) ([]models.RawEvent, error)
}

// FootballFallback is the legacy fixtures source tried when the
// preferred one yields nothing.
type FootballFallback interface {
	Fixtures(ctx context.Context, date string) ([]models.RawEvent, error)
}

// TennisResults provides today's tennis matches.
type TennisResults interface {
	MatchesToday(ctx context.Context) ([]models.RawEvent, error)
}

// UFCResults provides the day's UFC cards.
type UFCResults interface {
	UFCEventsDay(ctx context.Context, date string) ([]models.RawEvent, error)
}

// Pipeline builds the per-category match records that feed the report.
// Failures never escape it: a category whose providers are down simply
// produces an empty section.
type Pipeline struct {
	odds       OddsSource
	football   FootballResults
	fallback   FootballFallback
	tennis     TennisResults
	ufc        UFCResults
	correlator *match.Correlator
}

func NewPipeline(
	odds OddsSource,
	football FootballResults,
	fallback FootballFallback,
	tennis TennisResults,
	ufc UFCResults,
	correlator *match.Correlator,
) *Pipeline {
	return &Pipeline{
		odds:       odds,
		football:   football,
		fallback:   fallback,
		tennis:     tennis,
		ufc:        ufc,
		correlator: correlator,
	}
}

// Run builds all category sections. Categories fetch concurrently
// since they share no state, but the returned map is always consumed in
// AllCategories order, so the report layout is stable regardless of
// completion order.
func (p *Pipeline) Run(ctx context.Context, now time.Time) map[models.Category][]models.MatchRecord {
	runID := uuid.NewString()
	start := time.Now()
	log := slog.With("run_id", runID)
	log.Info("Report pipeline started")

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		sections = make(map[models.Category][]models.MatchRecord, 3)
	)
	build := func(category models.Category, fn func(context.Context) []models.MatchRecord) {
		defer wg.Done()
		records := fn(ctx)
		mu.Lock()
		sections[category] = records
		mu.Unlock()
		log.Info("Category section built", "category", category, "records", len(records))
	}

	wg.Add(3)
	go build(models.Football, func(ctx context.Context) []models.MatchRecord {
		return p.footballSection(ctx, now)
	})
	go build(models.Tennis, p.tennisSection)
	go build(models.MMA, func(ctx context.Context) []models.MatchRecord {
		return p.mmaSection(ctx, now)
	})
	wg.Wait()

	log.Info("Report pipeline finished", "duration", time.Since(start))
	return sections
}

// footballSection fetches today's fixtures (preferred source first,
// legacy fallback second) and enriches each with market probabilities.
func (p *Pipeline) footballSection(ctx context.Context, now time.Time) []models.MatchRecord {
	date := localtime.Today(now)

	events, err := p.football.Matches(ctx, date)
	if err != nil {
		slog.Warn("football-data fetch failed", "error", err)
	}
	if len(events) == 0 && p.fallback != nil {
		events, err = p.fallback.Fixtures(ctx, date)
		if err != nil {
			slog.Warn("api-sports fetch failed", "error", err)
			events = nil
		}
	}
	if len(events) == 0 {
		return nil
	}

	odds := p.odds.FetchOdds(ctx, models.Football)
	return p.enrich(events, odds)
}

// tennisSection fetches today's rostered tennis matches and enriches
// them.
func (p *Pipeline) tennisSection(ctx context.Context) []models.MatchRecord {
	events, err := p.tennis.MatchesToday(ctx)
	if err != nil {
		slog.Warn("api-tennis fetch failed", "error", err)
		return nil
	}
	if len(events) == 0 {
		return nil
	}

	odds := p.odds.FetchOdds(ctx, models.Tennis)
	return p.enrich(events, odds)
}

// enrich correlates each event against the odds listing and attaches
// the extracted probability distribution. Events with no correlated
// odds still produce a record with an empty distribution.
func (p *Pipeline) enrich(events []models.RawEvent, odds []models.OddsEvent) []models.MatchRecord {
	records := make([]models.MatchRecord, 0, len(events))
	for _, ev := range events {
		entry := p.correlator.Find(odds, ev.Home, ev.Away, ev.Kickoff)
		records = append(records, models.MatchRecord{
			Home:         ev.Home,
			Away:         ev.Away,
			Competition:  ev.Competition,
			Category:     ev.Category,
			KickoffLocal: localtime.ToBogota(ev.Kickoff),
			Probs:        match.ExtractProbabilities(entry),
		})
	}
	return records
}

// mmaSection treats the odds feed as its primary source: UFC-titled
// entries commencing today become records with fighters taken from the
// first h2h outcome pair. TheSportsDB cards the feed does not price
// are appended afterwards, deduped by card title.
func (p *Pipeline) mmaSection(ctx context.Context, now time.Time) []models.MatchRecord {
	today := localtime.ToBogota(now)
	var records []models.MatchRecord

	for _, ev := range p.odds.FetchOdds(ctx, models.MMA) {
		if !strings.Contains(match.Normalize(ev.SportTitle), "ufc") {
			continue
		}
		if ev.CommenceTime.IsZero() {
			continue
		}
		local := localtime.ToBogota(ev.CommenceTime)
		if local.Year() != today.Year() || local.YearDay() != today.YearDay() {
			continue
		}

		f1, f2 := ev.HomeTeam, ev.AwayTeam
		if a, b, ok := firstH2HPair(&ev); ok {
			f1, f2 = a, b
		}
		if f1 == "" || f2 == "" {
			continue
		}
		records = append(records, models.MatchRecord{
			Home:         f1,
			Away:         f2,
			Competition:  ev.SportTitle,
			Category:     models.MMA,
			KickoffLocal: local,
			Probs:        match.ExtractProbabilities(&ev),
		})
	}

	if p.ufc != nil {
		cards, err := p.ufc.UFCEventsDay(ctx, localtime.Today(now))
		if err != nil {
			slog.Warn("TheSportsDB fetch failed", "error", err)
		}
		for _, card := range cards {
			if hasCard(records, card.Competition) {
				continue
			}
			records = append(records, models.MatchRecord{
				Home:         card.Home,
				Away:         card.Away,
				Competition:  card.Competition,
				Category:     models.MMA,
				KickoffLocal: localtime.ToBogota(card.Kickoff),
				Probs:        models.Probabilities{},
			})
		}
	}

	if len(records) > maxMMAEvents {
		records = records[:maxMMAEvents]
	}
	return records
}

// firstH2HPair returns the first two h2h outcome names of the entry.
func firstH2HPair(ev *models.OddsEvent) (string, string, bool) {
	for _, bm := range ev.Bookmakers {
		for _, mk := range bm.Markets {
			if mk.Key == "h2h" && len(mk.Outcomes) >= 2 {
				return mk.Outcomes[0].Name, mk.Outcomes[1].Name, true
			}
		}
	}
	return "", "", false
}

func hasCard(records []models.MatchRecord, title string) bool {
	want := match.Normalize(title)
	if want == "" {
		return false
	}
	for _, r := range records {
		if match.Normalize(r.Competition) == want {
			return true
		}
	}
	return false
}
