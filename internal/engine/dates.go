package engine

import "time"

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func inclusiveDayCount(from, to time.Time) int {
	count := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		count++
	}
	return count
}

// parseDay parses a "2006-01-02" date key. The location is irrelevant
// for weekday and adjacency math, so UTC keeps it allocation-free of
// caller state.
func parseDay(date string) time.Time {
	t, _ := time.Parse(dayFormat, date)
	return t
}

// nextDay reports whether b is the calendar day immediately after a.
func nextDay(a, b string) bool {
	return parseDay(a).AddDate(0, 0, 1).Format(dayFormat) == b
}
