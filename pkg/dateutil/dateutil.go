// Package dateutil works with calendar days. A day is represented as a
// time.Time at 00:00 UTC of that date, so day arithmetic never crosses a
// daylight-saving transition.
package dateutil

import "time"

const secondsPerDay = 24 * 60 * 60

// Calendar resolves "today" against one fixed reference timezone.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

func NewCalendar(loc *time.Location, now func() time.Time) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Calendar{
		loc: loc,
		now: now,
	}
}

// Now returns the current instant.
func (c *Calendar) Now() time.Time {
	return c.now()
}

// Today returns the current calendar day in the reference timezone.
func (c *Calendar) Today() time.Time {
	return Normalize(c.now().In(c.loc))
}

func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Normalize drops the time of day, keeping the date as seen in t's location.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayDifference returns a - b in whole calendar days. Computed on unix
// seconds, time.Duration overflows past ~292 years.
func DayDifference(a, b time.Time) int {
	return int((Normalize(a).Unix() - Normalize(b).Unix()) / secondsPerDay)
}

func IsToday(day, today time.Time) bool {
	return DayDifference(day, today) == 0
}

func IsYesterday(day, today time.Time) bool {
	return DayDifference(today, day) == 1
}

func Yesterday(day time.Time) time.Time {
	return Normalize(day).AddDate(0, 0, -1)
}

func Tomorrow(day time.Time) time.Time {
	return Normalize(day).AddDate(0, 0, 1)
}
