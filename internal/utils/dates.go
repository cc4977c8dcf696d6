package utils

import (
	"math"
	"time"
)

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DurationDays is the trip length in whole days, rounding partial days
// up. Zero or negative means the return date is not after departure.
func DurationDays(departure, ret time.Time) int {
	diff := ret.Sub(departure)
	return int(math.Ceil(diff.Hours() / 24))
}

// DaysBetween is the absolute whole-day distance between two dates.
func DaysBetween(a, b time.Time) int {
	d := DurationDays(a, b)
	if d < 0 {
		return -d
	}
	return d
}

// DaysFromNow counts days from today (midnight) to t, rounding up.
func DaysFromNow(t time.Time, now time.Time) int {
	return DurationDays(StartOfDay(now), t)
}

// IsPast reports whether t falls before today's midnight.
func IsPast(t time.Time, now time.Time) bool {
	return t.Before(StartOfDay(now))
}

// InRange reports whether t lies within [start, end] inclusive.
func InRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// FormatISO renders t as a YYYY-MM-DD wire date.
func FormatISO(t time.Time) string {
	return t.Format("2006-01-02")
}
