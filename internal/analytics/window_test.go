package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveWindowPolicies(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		timeFrame   string
		wantStart   time.Time
		granularity Granularity
	}{
		{"yearly", now.AddDate(-5, 0, 0), GranularityYear},
		{"monthly", now.AddDate(0, -11, 0), GranularityMonth},
		{"weekly", now.AddDate(0, 0, -90), GranularityWeek},
		{"daily", now.AddDate(0, 0, -30), GranularityDay},
	}

	for _, tt := range tests {
		t.Run(tt.timeFrame, func(t *testing.T) {
			w, g := ResolveWindow(tt.timeFrame, now)
			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, now, w.End)
			assert.Equal(t, tt.granularity, g)
		})
	}
}

func TestResolveWindowUnknownFallsBackToDaily(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	gotW, gotG := ResolveWindow("fortnightly", now)
	wantW, wantG := ResolveWindow("daily", now)

	assert.Equal(t, wantW, gotW)
	assert.Equal(t, wantG, gotG)
}

func TestWindowContains(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	w := Window{Start: start, End: end}

	assert.True(t, w.Contains(start), "start is inclusive")
	assert.True(t, w.Contains(end), "end is inclusive")
	assert.True(t, w.Contains(start.AddDate(0, 0, 15)))
	assert.False(t, w.Contains(start.Add(-time.Nanosecond)))
	assert.False(t, w.Contains(end.Add(time.Nanosecond)))
}

func TestWindowZeroValueIsUnbounded(t *testing.T) {
	var w Window

	assert.True(t, w.Contains(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2999, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestGranularityString(t *testing.T) {
	assert.Equal(t, "daily", GranularityDay.String())
	assert.Equal(t, "weekly", GranularityWeek.String())
	assert.Equal(t, "monthly", GranularityMonth.String())
	assert.Equal(t, "yearly", GranularityYear.String())
}
