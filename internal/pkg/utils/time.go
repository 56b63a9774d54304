package utils

import "time"

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DurationUntilNextMidnight is never zero so it can be used as a cache TTL.
func DurationUntilNextMidnight(now time.Time) time.Duration {
	next := StartOfDay(now).AddDate(0, 0, 1)
	remaining := next.Sub(now)
	if remaining <= 0 {
		return time.Second
	}
	return remaining
}
