package analytics

import "time"

// BucketKey identifies one calendar period at a given granularity. Only the
// fields the granularity carries are set: year alone for yearly, year+month
// for monthly, year+week for weekly, year+month+day for daily. Keys of the
// same granularity are totally ordered.
type BucketKey struct {
	Granularity Granularity
	Year        int
	Month       int
	Week        int
	Day         int
}

// Compare orders two keys of the same granularity. It returns a negative
// value when k precedes other, zero when equal, positive otherwise.
func (k BucketKey) Compare(other BucketKey) int {
	if k.Year != other.Year {
		return k.Year - other.Year
	}
	if k.Month != other.Month {
		return k.Month - other.Month
	}
	if k.Week != other.Week {
		return k.Week - other.Week
	}
	return k.Day - other.Day
}

// BucketPeriod pairs a bucket key with the calendar-day anchor of its
// period: January 1st for years, the 1st for months, the Monday of the week
// for weeks and the day itself for days.
type BucketPeriod struct {
	Key   BucketKey
	Start time.Time
}

// weekAnchor computes the Monday-based week number of t by shifting to the
// Thursday of the containing week and counting weeks from that year's
// January 1st. The returned year is the year of the shifted Thursday, which
// keeps week keys ordered across year boundaries.
func weekAnchor(t time.Time) (year, week int) {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	d = d.AddDate(0, 0, 4-wd)
	yearStart := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(d.Sub(yearStart).Hours() / 24)
	return d.Year(), (days+7)/7
}

// weekStart returns the Monday of the week containing t, at midnight in t's
// location.
func weekStart(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return time.Date(t.Year(), t.Month(), t.Day()-(wd-1), 0, 0, 0, 0, t.Location())
}

// BucketOf truncates a timestamp to the key of its containing period.
func BucketOf(t time.Time, g Granularity) BucketKey {
	switch g {
	case GranularityYear:
		return BucketKey{Granularity: g, Year: t.Year()}
	case GranularityMonth:
		return BucketKey{Granularity: g, Year: t.Year(), Month: int(t.Month())}
	case GranularityWeek:
		y, w := weekAnchor(t)
		return BucketKey{Granularity: g, Year: y, Week: w}
	default:
		return BucketKey{Granularity: g, Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
	}
}

// Enumerate produces every period from w.Start to w.End inclusive, in
// ascending order, stepping by exactly one granularity unit. Steps use
// calendar arithmetic so month and year boundaries stay aligned across
// variable period lengths. The first key equals BucketOf(w.Start, g) and
// the last equals BucketOf(w.End, g); the sequence is contiguous with no
// skipped periods.
func Enumerate(w Window, g Granularity) []BucketPeriod {
	var periods []BucketPeriod

	switch g {
	case GranularityYear:
		cursor := time.Date(w.Start.Year(), time.January, 1, 0, 0, 0, 0, w.Start.Location())
		for cursor.Year() <= w.End.Year() {
			periods = append(periods, BucketPeriod{Key: BucketOf(cursor, g), Start: cursor})
			cursor = cursor.AddDate(1, 0, 0)
		}
	case GranularityMonth:
		cursor := time.Date(w.Start.Year(), w.Start.Month(), 1, 0, 0, 0, 0, w.Start.Location())
		last := time.Date(w.End.Year(), w.End.Month(), 1, 0, 0, 0, 0, w.End.Location())
		for !cursor.After(last) {
			periods = append(periods, BucketPeriod{Key: BucketOf(cursor, g), Start: cursor})
			cursor = cursor.AddDate(0, 1, 0)
		}
	case GranularityWeek:
		cursor := weekStart(w.Start)
		for !cursor.After(w.End) {
			periods = append(periods, BucketPeriod{Key: BucketOf(cursor, g), Start: cursor})
			cursor = cursor.AddDate(0, 0, 7)
		}
	default:
		cursor := time.Date(w.Start.Year(), w.Start.Month(), w.Start.Day(), 0, 0, 0, 0, w.Start.Location())
		for !cursor.After(w.End) {
			periods = append(periods, BucketPeriod{Key: BucketOf(cursor, g), Start: cursor})
			cursor = cursor.AddDate(0, 0, 1)
		}
	}

	return periods
}
