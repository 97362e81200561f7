package report

import (
	"context"
	"testing"
	"time"

	"github.com/jcamargo/pronosbot/internal/pkg/localtime"
)

func TestNewScheduler_Validation(t *testing.T) {
	noop := func(context.Context, time.Time) {}

	if _, err := NewScheduler(nil, noop); err == nil {
		t.Error("expected error with no send times")
	}
	if _, err := NewScheduler([]string{"25:99"}, noop); err == nil {
		t.Error("expected error on invalid time")
	}
	if _, err := NewScheduler([]string{"08:00", "20:00"}, noop); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestScheduler_NextRun(t *testing.T) {
	s, err := NewScheduler([]string{"20:00", "08:00", "14:00"}, func(context.Context, time.Time) {})
	if err != nil {
		t.Fatal(err)
	}

	at := func(hour, min int) time.Time {
		return time.Date(2024, 6, 1, hour, min, 0, 0, localtime.Bogota)
	}

	tests := []struct {
		now  time.Time
		want time.Time
	}{
		{at(6, 30), at(8, 0)},
		{at(8, 0), at(14, 0)}, // exact slot time fires the next slot
		{at(13, 59), at(14, 0)},
		{at(21, 0), at(8, 0).AddDate(0, 0, 1)},
	}
	for _, tt := range tests {
		got := s.nextRun(tt.now)
		if !got.Equal(tt.want) {
			t.Errorf("nextRun(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
}
