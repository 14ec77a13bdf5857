package calendar_test

import (
	"testing"
	"time"

	"github.com/mkrogh/fantasyliga/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCalendar(t *testing.T) *calendar.Calendar {
	t.Helper()
	cal, err := calendar.NewFromName("Europe/Copenhagen")
	require.NoError(t, err)
	return cal
}

func TestWeekOf(t *testing.T) {
	cal := testCalendar(t)

	t.Run("a Tuesday starts its own week", func(t *testing.T) {
		d := time.Date(2025, 3, 4, 15, 30, 0, 0, cal.Location()) // Tuesday
		week := cal.WeekOf(d)
		assert.Equal(t, "2025-03-04", week.Key())
		assert.Equal(t, time.Tuesday, week.Start.Weekday())
		assert.Equal(t, time.Monday, week.End.Weekday())
		assert.Equal(t, "2025-03-10", week.End.Format(calendar.WeekKeyLayout))
	})

	t.Run("sunday rolls back to the previous Tuesday", func(t *testing.T) {
		d := time.Date(2025, 3, 9, 10, 0, 0, 0, cal.Location()) // Sunday
		week := cal.WeekOf(d)
		assert.Equal(t, "2025-03-04", week.Key())
	})

	t.Run("monday rolls back to the previous Tuesday", func(t *testing.T) {
		d := time.Date(2025, 3, 10, 23, 59, 0, 0, cal.Location()) // Monday
		week := cal.WeekOf(d)
		assert.Equal(t, "2025-03-04", week.Key())
	})

	t.Run("wednesday belongs to the current week", func(t *testing.T) {
		d := time.Date(2025, 3, 5, 0, 0, 0, 0, cal.Location())
		week := cal.WeekOf(d)
		assert.Equal(t, "2025-03-04", week.Key())
	})

	t.Run("any date falls within its own week", func(t *testing.T) {
		for day := 0; day < 21; day++ {
			d := time.Date(2025, 2, 1, 12, 0, 0, 0, cal.Location()).AddDate(0, 0, day)
			week := cal.WeekOf(d)
			assert.Equal(t, time.Tuesday, week.Start.Weekday())
			assert.Equal(t, time.Monday, week.End.Weekday())
			assert.True(t, week.Contains(d), "date %s should fall within [%s, %s]", d, week.Start, week.End)
		}
	})

	t.Run("week boundary crosses a month", func(t *testing.T) {
		d := time.Date(2025, 3, 31, 12, 0, 0, 0, cal.Location()) // Monday
		week := cal.WeekOf(d)
		assert.Equal(t, "2025-03-25", week.Key())
		assert.True(t, week.Contains(d))
	})
}

func TestWeekContains(t *testing.T) {
	cal := testCalendar(t)
	week := cal.WeekOf(time.Date(2025, 3, 4, 0, 0, 0, 0, cal.Location()))

	assert.True(t, week.Contains(week.Start))
	assert.True(t, week.Contains(week.End))
	assert.False(t, week.Contains(week.Start.Add(-time.Second)))
	assert.False(t, week.Contains(week.End.Add(time.Second)))
}

func TestWeekOfKey(t *testing.T) {
	cal := testCalendar(t)

	week, err := cal.WeekOfKey("2025-03-04")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-04", week.Key())

	_, err = cal.WeekOfKey("not-a-date")
	assert.Error(t, err)
}
