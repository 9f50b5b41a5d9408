package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBucketOfDayMonthYear(t *testing.T) {
	ts := time.Date(2024, 3, 9, 17, 45, 2, 0, time.UTC)

	assert.Equal(t, BucketKey{Granularity: GranularityDay, Year: 2024, Month: 3, Day: 9}, BucketOf(ts, GranularityDay))
	assert.Equal(t, BucketKey{Granularity: GranularityMonth, Year: 2024, Month: 3}, BucketOf(ts, GranularityMonth))
	assert.Equal(t, BucketKey{Granularity: GranularityYear, Year: 2024}, BucketOf(ts, GranularityYear))
}

func TestBucketOfWeekSharedAcrossWeekdays(t *testing.T) {
	// Monday through Sunday of the same week map to one key.
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	want := BucketOf(monday, GranularityWeek)

	for i := 1; i < 7; i++ {
		got := BucketOf(monday.AddDate(0, 0, i), GranularityWeek)
		assert.Equal(t, want, got, "day offset %d", i)
	}
}

func TestBucketOfWeekYearBoundary(t *testing.T) {
	// Sunday 2023-12-31 belongs to the week whose Thursday is 2023-12-28,
	// while Monday 2024-01-01 starts the week of Thursday 2024-01-04.
	sunday := BucketOf(time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC), GranularityWeek)
	monday := BucketOf(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), GranularityWeek)

	assert.Equal(t, BucketKey{Granularity: GranularityWeek, Year: 2023, Week: 52}, sunday)
	assert.Equal(t, BucketKey{Granularity: GranularityWeek, Year: 2024, Week: 1}, monday)
	assert.Negative(t, sunday.Compare(monday))
}

func TestBucketOfWeekLateDecemberRollsForward(t *testing.T) {
	// Monday 2024-12-30 shifts to Thursday 2025-01-02, so the key belongs
	// to 2025 even though the date is still in 2024.
	got := BucketOf(time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), GranularityWeek)
	assert.Equal(t, BucketKey{Granularity: GranularityWeek, Year: 2025, Week: 1}, got)
}

func TestEnumerateYears(t *testing.T) {
	w := Window{
		Start: time.Date(2019, 6, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	periods := Enumerate(w, GranularityYear)

	assert.Len(t, periods, 6)
	for i, p := range periods {
		assert.Equal(t, 2019+i, p.Key.Year)
		assert.Equal(t, time.January, p.Start.Month())
		assert.Equal(t, 1, p.Start.Day())
	}
}

func TestEnumerateMonthsAcrossYearBoundary(t *testing.T) {
	w := Window{
		Start: time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	periods := Enumerate(w, GranularityMonth)

	assert.Len(t, periods, 12)
	assert.Equal(t, BucketKey{Granularity: GranularityMonth, Year: 2023, Month: 7}, periods[0].Key)
	assert.Equal(t, BucketKey{Granularity: GranularityMonth, Year: 2024, Month: 6}, periods[11].Key)
}

func TestEnumerateWeeksStartOnMonday(t *testing.T) {
	w := Window{
		Start: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), // a Saturday
		End:   time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
	}

	periods := Enumerate(w, GranularityWeek)

	assert.NotEmpty(t, periods)
	for _, p := range periods {
		assert.Equal(t, time.Monday, p.Start.Weekday())
	}
}

func TestEnumerateIsContiguous(t *testing.T) {
	w := Window{
		Start: time.Date(2023, 11, 20, 8, 30, 0, 0, time.UTC),
		End:   time.Date(2024, 2, 10, 19, 0, 0, 0, time.UTC),
	}

	for _, g := range []Granularity{GranularityDay, GranularityWeek, GranularityMonth, GranularityYear} {
		t.Run(g.String(), func(t *testing.T) {
			periods := Enumerate(w, g)

			assert.NotEmpty(t, periods)
			assert.Equal(t, BucketOf(w.Start, g), periods[0].Key)
			assert.Equal(t, BucketOf(w.End, g), periods[len(periods)-1].Key)
			for i := 1; i < len(periods); i++ {
				assert.Positive(t, periods[i].Key.Compare(periods[i-1].Key),
					"keys must strictly increase at index %d", i)
			}
		})
	}
}

func TestEnumerateSinglePeriodWindow(t *testing.T) {
	ts := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)
	w := Window{Start: ts, End: ts.Add(2 * time.Hour)}

	periods := Enumerate(w, GranularityDay)

	assert.Len(t, periods, 1)
	assert.Equal(t, BucketOf(ts, GranularityDay), periods[0].Key)
}
