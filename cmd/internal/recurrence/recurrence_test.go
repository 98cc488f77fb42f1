package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2026-06-01, 18:00-19:00 local.
func testWindow(t *testing.T) (time.Time, time.Time) {
	t.Helper()
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	start := time.Date(2026, time.June, 1, 18, 0, 0, 0, loc)
	return start, start.Add(time.Hour)
}

func TestExpandMondayWednesdayFourWeeks(t *testing.T) {
	start, end := testWindow(t)
	weekdays := map[time.Weekday]bool{time.Monday: true, time.Wednesday: true}

	windows, err := Expand(start, end, weekdays, 1, 4)
	require.NoError(t, err)
	require.Len(t, windows, 8)

	for i, w := range windows {
		day := w.Start.Weekday()
		assert.True(t, day == time.Monday || day == time.Wednesday, "window %d on %s", i, day)
		assert.Equal(t, 18, w.Start.Hour())
		assert.Equal(t, 19, w.End.Hour())
		assert.Equal(t, w.Start.Year(), w.End.Year())
		assert.Equal(t, w.Start.YearDay(), w.End.YearDay())
		if i > 0 {
			assert.True(t, windows[i-1].Start.Before(w.Start), "windows out of order at %d", i)
		}
	}

	// The first window is the start day itself.
	assert.True(t, windows[0].Start.Equal(start))
	// The last window falls within the 28-day scan range.
	last := windows[len(windows)-1].Start
	assert.True(t, last.Before(start.AddDate(0, 0, 28)))
}

func TestExpandCapsAtTwentyKeepingEarliest(t *testing.T) {
	start, end := testWindow(t)
	all := map[time.Weekday]bool{}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		all[wd] = true
	}

	// Every day for 4 weeks would be 28 windows; only the earliest 20 survive.
	windows, err := Expand(start, end, all, 1, 4)
	require.NoError(t, err)
	require.Len(t, windows, MaxOccurrences)

	assert.True(t, windows[0].Start.Equal(start))
	assert.True(t, windows[len(windows)-1].Start.Equal(start.AddDate(0, 0, 19)))
}

func TestExpandIntervalDoesNotThinSeries(t *testing.T) {
	start, end := testWindow(t)
	weekdays := map[time.Weekday]bool{time.Monday: true}

	every, err := Expand(start, end, weekdays, 1, 4)
	require.NoError(t, err)
	biweekly, err := Expand(start, end, weekdays, 2, 4)
	require.NoError(t, err)

	// The interval is accepted but never applied: both expansions emit all
	// four Mondays.
	assert.Equal(t, every, biweekly)
	assert.Len(t, biweekly, 4)
}

func TestExpandStartDayNotSelected(t *testing.T) {
	start, end := testWindow(t) // Monday
	weekdays := map[time.Weekday]bool{time.Friday: true}

	windows, err := Expand(start, end, weekdays, 1, 1)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, time.Friday, windows[0].Start.Weekday())
	assert.True(t, windows[0].Start.Equal(start.AddDate(0, 0, 4)))
}

func TestExpandEmptyInputs(t *testing.T) {
	start, end := testWindow(t)

	windows, err := Expand(start, end, nil, 1, 4)
	require.NoError(t, err)
	assert.Empty(t, windows)

	windows, err = Expand(start, end, map[time.Weekday]bool{time.Monday: true}, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestExpandEndTimeOfDayPreserved(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	start := time.Date(2026, time.June, 1, 9, 30, 0, 0, loc)
	end := time.Date(2026, time.June, 1, 11, 15, 0, 0, loc)

	windows, err := Expand(start, end, map[time.Weekday]bool{time.Monday: true}, 1, 2)
	require.NoError(t, err)
	require.Len(t, windows, 2)
	for _, w := range windows {
		assert.Equal(t, 9, w.Start.Hour())
		assert.Equal(t, 30, w.Start.Minute())
		assert.Equal(t, 11, w.End.Hour())
		assert.Equal(t, 15, w.End.Minute())
	}
}
