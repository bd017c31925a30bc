package peaknut

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/atman1234/peak-nutrition-ai-sub000/internal/app"
	"github.com/atman1234/peak-nutrition-ai-sub000/internal/db"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func parseDateTimeOrNow(date, timeStr string) (time.Time, error) {
	date = strings.TrimSpace(date)
	timeStr = strings.TrimSpace(timeStr)
	if date == "" && timeStr == "" {
		return time.Now(), nil
	}
	if date == "" {
		return time.Time{}, fmt.Errorf("--date is required when --time is set")
	}
	if timeStr == "" {
		t, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
		}
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+timeStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date/--time (expected YYYY-MM-DD and HH:MM)")
	}
	return t, nil
}

var weekPattern = regexp.MustCompile(`^\d{4}-W\d{2}$`)

func resolveWeekRange(week string) (time.Time, time.Time, error) {
	if week == "" {
		now := time.Now().In(time.Local)
		start := beginningOfWeek(now)
		return start, start.AddDate(0, 0, 6), nil
	}
	if !weekPattern.MatchString(week) {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --week value %q (expected YYYY-Www)", week)
	}
	var year, weekNum int
	if _, err := fmt.Sscanf(week, "%4d-W%2d", &year, &weekNum); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --week value %q (expected YYYY-Www)", week)
	}
	maxWeek := weeksInISOYear(year)
	if weekNum < 1 || weekNum > maxWeek {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --week value %q (week must be between 01 and %02d for %d)", week, maxWeek, year)
	}
	start := isoWeekStart(year, weekNum)
	return start, start.AddDate(0, 0, 6), nil
}

func resolveMonthRange(month string) (time.Time, time.Time, error) {
	if month == "" {
		now := time.Now().In(time.Local)
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
		return start, start.AddDate(0, 1, -1), nil
	}
	parsed, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --month value %q (expected YYYY-MM)", month)
	}
	start := time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, -1), nil
}

func beginningOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	start := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.Local)
}

func isoWeekStart(year, week int) time.Time {
	jan4 := time.Date(year, 1, 4, 0, 0, 0, 0, time.Local)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	week1Monday := jan4.AddDate(0, 0, -(weekday - 1))
	return week1Monday.AddDate(0, 0, (week-1)*7)
}

func weeksInISOYear(year int) int {
	_, wk := time.Date(year, 12, 28, 0, 0, 0, 0, time.Local).ISOWeek()
	return wk
}

func floatFlag(changed bool, value float64) *float64 {
	if !changed {
		return nil
	}
	return &value
}
