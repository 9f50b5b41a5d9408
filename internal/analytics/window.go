// Package analytics implements the sales aggregation engine behind the
// admin dashboard and the exportable sales reports: time window resolution,
// calendar bucketing, grouped aggregation over order facts, gap filling and
// report totals. Everything in this package is a pure computation over
// already-fetched documents; fetching belongs to the repositories.
package analytics

import "time"

// Granularity is the bucketing unit of a report window.
type Granularity int

const (
	GranularityDay Granularity = iota
	GranularityWeek
	GranularityMonth
	GranularityYear
)

// String returns the time-frame name for the granularity.
func (g Granularity) String() string {
	switch g {
	case GranularityWeek:
		return "weekly"
	case GranularityMonth:
		return "monthly"
	case GranularityYear:
		return "yearly"
	default:
		return "daily"
	}
}

// Window is a closed [Start, End] time range. The zero value means
// unbounded (lifetime).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window. An unbounded window
// contains everything.
func (w Window) Contains(t time.Time) bool {
	if w.Start.IsZero() && w.End.IsZero() {
		return true
	}
	if t.Before(w.Start) {
		return false
	}
	return !t.After(w.End)
}

// ResolveWindow maps a symbolic time frame onto a concrete rolling window
// ending at now, together with the bucket granularity. The window policy is
// fixed: yearly covers the last 5 years, monthly the last 12 months, weekly
// the last 90 days and daily the last 30 days. Unrecognized time frames
// silently fall back to the daily policy so the dashboard always renders.
func ResolveWindow(timeFrame string, now time.Time) (Window, Granularity) {
	switch timeFrame {
	case "yearly":
		return Window{Start: now.AddDate(-5, 0, 0), End: now}, GranularityYear
	case "monthly":
		return Window{Start: now.AddDate(0, -11, 0), End: now}, GranularityMonth
	case "weekly":
		return Window{Start: now.AddDate(0, 0, -90), End: now}, GranularityWeek
	default:
		return Window{Start: now.AddDate(0, 0, -30), End: now}, GranularityDay
	}
}
