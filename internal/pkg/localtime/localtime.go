// Package localtime converts provider timestamps to the report timezone.
// All report times are rendered in Colombia time (America/Bogota).
package localtime

import (
	"time"
)

// Bogota is the timezone every report timestamp is rendered in.
var Bogota = mustLoad("America/Bogota")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		// tzdata is compiled in on our deploy targets; a failure here
		// means a broken build environment, not a runtime condition.
		panic(err)
	}
	return loc
}

// ToBogota converts t to Colombia time. Zero time stays zero.
// Providers that omit an offset are parsed as UTC before reaching here.
func ToBogota(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(Bogota)
}

// Format renders a timestamp the way the report shows it.
// Unknown (zero) times render as "?" so absence stays visible.
func Format(t time.Time) string {
	if t.IsZero() {
		return "?"
	}
	return ToBogota(t).Format("2006-01-02 15:04")
}

// Today returns the current date in Colombia time as YYYY-MM-DD.
// Results providers are queried for "today" in this local date.
func Today(now time.Time) string {
	return now.In(Bogota).Format("2006-01-02")
}
