package calendar

import (
	"fmt"
	"time"
)

// WeekKeyLayout is the canonical format of the week-start key used as the
// lineup and contribution lookup key everywhere.
const WeekKeyLayout = "2006-01-02"

// Week is one scoring week: Tuesday 00:00:00 through the following Monday
// 23:59:59 in the calendar's reference time zone.
type Week struct {
	Start time.Time
	End   time.Time
}

// Calendar computes scoring-week intervals in a single fixed reference time
// zone. The zone is chosen at deployment; callers' local zones never matter.
type Calendar struct {
	loc *time.Location
}

// New creates a Calendar for the given reference time zone.
func New(loc *time.Location) *Calendar {
	return &Calendar{loc: loc}
}

// NewFromName loads the named time zone and creates a Calendar for it.
func NewFromName(name string) (*Calendar, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", name, err)
	}
	return New(loc), nil
}

// WeekOf returns the scoring week enclosing t. The week starts on the most
// recent Tuesday on or before t, so Sundays and Mondays roll backward across
// the week boundary to the previous Tuesday.
func (c *Calendar) WeekOf(t time.Time) Week {
	t = t.In(c.loc)
	daysBack := (int(t.Weekday()) - int(time.Tuesday) + 7) % 7
	start := time.Date(t.Year(), t.Month(), t.Day()-daysBack, 0, 0, 0, 0, c.loc)
	end := time.Date(start.Year(), start.Month(), start.Day()+6, 23, 59, 59, 0, c.loc)
	return Week{Start: start, End: end}
}

// WeekOfKey parses a week-start key and returns its scoring week.
func (c *Calendar) WeekOfKey(key string) (Week, error) {
	t, err := time.ParseInLocation(WeekKeyLayout, key, c.loc)
	if err != nil {
		return Week{}, fmt.Errorf("invalid week key %q: %w", key, err)
	}
	return c.WeekOf(t), nil
}

// Location returns the calendar's reference time zone.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Key returns the canonical week-start key.
func (w Week) Key() string {
	return w.Start.Format(WeekKeyLayout)
}

// Contains reports whether t falls within the week, inclusive on both ends.
func (w Week) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
