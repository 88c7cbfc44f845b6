package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStartMidweek(t *testing.T) {
	// 2026-09-02 is a Wednesday
	ref := time.Date(2026, 9, 2, 15, 30, 0, 0, time.UTC)
	start := WeekStart(ref)
	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, "2026-08-31", start.Format("2006-01-02"))
	assert.Equal(t, 0, start.Hour())
}

func TestWeekStartOnMonday(t *testing.T) {
	ref := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-31", WeekStart(ref).Format("2006-01-02"))
}

func TestWeekStartOnSunday(t *testing.T) {
	// Weekday()==0 must map to 6 days back, never 1 day forward
	ref := time.Date(2026, 9, 6, 23, 59, 0, 0, time.UTC)
	start := WeekStart(ref)
	assert.Equal(t, "2026-08-31", start.Format("2006-01-02"))
	assert.Equal(t, time.Monday, start.Weekday())
}

func TestWeekDatesOrderedMondayToSunday(t *testing.T) {
	week := WeekDates(time.Date(2026, 9, 6, 12, 0, 0, 0, time.UTC)) // a Sunday
	expected := [7]DateKey{
		"2026-08-31", "2026-09-01", "2026-09-02", "2026-09-03",
		"2026-09-04", "2026-09-05", "2026-09-06",
	}
	assert.Equal(t, expected, week)
	for _, d := range week {
		assert.True(t, weekContains(week, d))
	}
	assert.False(t, weekContains(week, "2026-09-07"))
}

func TestDateKeyRoundTrip(t *testing.T) {
	d, err := ParseDateKey("2026-02-28")
	assert.NoError(t, err)
	assert.Equal(t, DateKey("2026-02-28"), d)
	assert.Equal(t, DateKey("2026-03-07"), d.AddDays(7))

	_, err = ParseDateKey("2026-13-01")
	assert.Error(t, err)
	_, err = ParseDateKey("not-a-date")
	assert.Error(t, err)
}
