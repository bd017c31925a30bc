package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/atman1234/peak-nutrition-ai-sub000/internal/engine"
)

// HistoricalMetrics fetches logs and the active profile for the local
// date range and runs the analytics engine over them. This is the only
// place I/O meets the pure engine.
func HistoricalMetrics(db *sql.DB, from, to time.Time, opts engine.Options) (*engine.Report, error) {
	if from.After(to) {
		return nil, fmt.Errorf("from date must be <= to date")
	}

	logs, err := FetchLogs(db, from, to)
	if err != nil {
		return nil, err
	}
	profile, err := FetchProfile(db, to.Format(dayFormat))
	if err != nil {
		return nil, err
	}

	report, err := engine.ComputeHistoricalMetrics(engine.DateRange{Start: from, End: to}, logs, profile, nil, opts)
	if err != nil {
		return nil, fmt.Errorf("compute historical metrics: %w", err)
	}
	return report, nil
}

// TodaySummary is the single-day view: totals for one local date
// measured against the active profile.
func TodaySummary(db *sql.DB, date time.Time) (*engine.DailyAchievement, error) {
	report, err := HistoricalMetrics(db, date, date, engine.Options{})
	if err != nil {
		return nil, err
	}
	if len(report.Days) != 1 {
		return nil, fmt.Errorf("expected one day in summary, got %d", len(report.Days))
	}
	day := report.Days[0]
	return &day, nil
}
