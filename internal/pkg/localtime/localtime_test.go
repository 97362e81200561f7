package localtime

import (
	"testing"
	"time"
)

func TestToBogota(t *testing.T) {
	utc := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	got := ToBogota(utc)
	if got.Hour() != 15 {
		t.Errorf("ToBogota(20:00 UTC).Hour() = %d, want 15", got.Hour())
	}
	if !got.Equal(utc) {
		t.Error("conversion must not change the instant")
	}
	if !ToBogota(time.Time{}).IsZero() {
		t.Error("zero time must stay zero")
	}
}

func TestFormat(t *testing.T) {
	utc := time.Date(2024, 6, 1, 20, 30, 0, 0, time.UTC)
	if got := Format(utc); got != "2024-06-01 15:30" {
		t.Errorf("Format = %q, want %q", got, "2024-06-01 15:30")
	}
	if got := Format(time.Time{}); got != "?" {
		t.Errorf("Format(zero) = %q, want ?", got)
	}
}

func TestToday(t *testing.T) {
	// 02:00 UTC is still the previous day in Bogota.
	utc := time.Date(2024, 6, 2, 2, 0, 0, 0, time.UTC)
	if got := Today(utc); got != "2024-06-01" {
		t.Errorf("Today = %q, want 2024-06-01", got)
	}
}
