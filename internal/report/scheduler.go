package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/jcamargo/pronosbot/internal/pkg/localtime"
)

// Scheduler fires the report at fixed local Colombia times each day.
type Scheduler struct {
	times []dayTime
	run   func(ctx context.Context, now time.Time)
}

type dayTime struct {
	hour, minute int
}

// NewScheduler parses "15:04"-formatted local send times. At least one
// valid time is required.
func NewScheduler(sendTimes []string, run func(ctx context.Context, now time.Time)) (*Scheduler, error) {
	var times []dayTime
	for _, s := range sendTimes {
		t, err := time.Parse("15:04", s)
		if err != nil {
			return nil, fmt.Errorf("invalid send time %q: %w", s, err)
		}
		times = append(times, dayTime{hour: t.Hour(), minute: t.Minute()})
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("no send times configured")
	}
	sort.Slice(times, func(i, j int) bool {
		if times[i].hour != times[j].hour {
			return times[i].hour < times[j].hour
		}
		return times[i].minute < times[j].minute
	})
	return &Scheduler{times: times, run: run}, nil
}

// Start blocks until ctx is done, invoking the run callback at each
// configured local time.
func (s *Scheduler) Start(ctx context.Context) {
	slog.Info("Report scheduler started", "send_times", len(s.times))
	for {
		now := time.Now()
		next := s.nextRun(now)
		slog.Info("Next report scheduled", "at", next.Format(time.RFC3339))

		select {
		case <-ctx.Done():
			slog.Info("Report scheduler stopped")
			return
		case <-time.After(next.Sub(now)):
			s.run(ctx, time.Now())
		}
	}
}

// nextRun returns the first configured local time strictly after now.
func (s *Scheduler) nextRun(now time.Time) time.Time {
	local := now.In(localtime.Bogota)
	for _, dt := range s.times {
		candidate := time.Date(local.Year(), local.Month(), local.Day(), dt.hour, dt.minute, 0, 0, localtime.Bogota)
		if candidate.After(local) {
			return candidate
		}
	}
	// All of today's slots have passed; first slot tomorrow.
	first := s.times[0]
	tomorrow := local.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), first.hour, first.minute, 0, 0, localtime.Bogota)
}
