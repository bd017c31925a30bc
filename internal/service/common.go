package service

import (
	"fmt"
	"time"
)

const dayFormat = "2006-01-02"

func validateNonNegative(name string, value *float64) error {
	if value != nil && *value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func parseDay(name, value string) (time.Time, error) {
	t, err := time.ParseInLocation(dayFormat, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q (expected YYYY-MM-DD)", name, value)
	}
	return t, nil
}

// utcWindow converts an inclusive local calendar range into the
// half-open UTC instant window covering it. Log timestamps are stored
// in UTC, so querying by local dates has to go through this.
func utcWindow(from, to time.Time) (time.Time, time.Time) {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location()).AddDate(0, 0, 1)
	return start.UTC(), end.UTC()
}
