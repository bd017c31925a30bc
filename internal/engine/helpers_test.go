package engine_test

import (
	"testing"
	"time"

	"github.com/atman1234/peak-nutrition-ai-sub000/internal/engine"
)

func fptr(v float64) *float64 {
	return &v
}

func day(t *testing.T, date string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		t.Fatalf("parse test date %q: %v", date, err)
	}
	return parsed
}

// calorieDays builds the daily series for a calories-only profile with
// one log per day, going through the real aggregator.
func calorieDays(t *testing.T, start string, actuals []float64, target float64) []engine.DailyAchievement {
	t.Helper()
	first := day(t, start)
	logs := make([]engine.LogEntry, 0, len(actuals))
	for i, v := range actuals {
		logs = append(logs, engine.LogEntry{
			LoggedAt: first.AddDate(0, 0, i).Add(12 * time.Hour),
			Calories: fptr(v),
		})
	}
	r := engine.DateRange{Start: first, End: first.AddDate(0, 0, len(actuals)-1)}
	return engine.BuildDailyAchievements(r, logs, engine.GoalProfile{CalorieTarget: target})
}
