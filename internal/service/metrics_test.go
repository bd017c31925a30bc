package service_test

import (
	"testing"
	"time"

	"github.com/atman1234/peak-nutrition-ai-sub000/internal/engine"
	"github.com/atman1234/peak-nutrition-ai-sub000/internal/service"
)

func TestHistoricalMetricsEndToEnd(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	if err := service.SetProfile(db, service.SetProfileInput{
		CalorieTarget: 2000,
		EffectiveDate: "2026-02-01",
	}); err != nil {
		t.Fatalf("set profile: %v", err)
	}

	// Seven days: goal met except on the fourth.
	start := time.Date(2026, 2, 10, 0, 0, 0, 0, time.Local)
	actuals := []float64{2000, 2000, 2000, 1500, 2000, 2000, 2000}
	for i, v := range actuals {
		if _, err := service.CreateLogEntry(db, service.CreateLogEntryInput{
			LoggedAt: start.AddDate(0, 0, i).Add(12 * time.Hour),
			Calories: floatPtr(v),
		}); err != nil {
			t.Fatalf("create entry %d: %v", i, err)
		}
	}

	opts := engine.AllOptions()
	opts.Period = "week"
	report, err := service.HistoricalMetrics(db, start, start.AddDate(0, 0, 6), opts)
	if err != nil {
		t.Fatalf("historical metrics: %v", err)
	}

	if len(report.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(report.Days))
	}
	calories := report.Streaks[engine.GoalCalories]
	if calories.CurrentStreak != 3 || calories.LongestStreak != 3 {
		t.Fatalf("unexpected calorie streak: %+v", calories)
	}
	consistency := report.Consistency[engine.GoalCalories]
	if consistency.TotalDays != 7 || consistency.AchievedDays != 6 {
		t.Fatalf("unexpected consistency: %+v", consistency)
	}
	if consistency.Period != "week" {
		t.Fatalf("period label should flow through, got %q", consistency.Period)
	}
}

func TestHistoricalMetricsRejectsInvertedRange(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	from := time.Date(2026, 2, 10, 0, 0, 0, 0, time.Local)
	if _, err := service.HistoricalMetrics(db, from, from.AddDate(0, 0, -1), engine.AllOptions()); err == nil {
		t.Fatalf("service layer should reject an inverted range")
	}
}

func TestTodaySummary(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	if err := service.SetProfile(db, service.SetProfileInput{
		CalorieTarget:  2000,
		ProteinTargetG: 150,
		EffectiveDate:  "2026-02-01",
	}); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	date := time.Date(2026, 2, 10, 0, 0, 0, 0, time.Local)
	if _, err := service.CreateLogEntry(db, service.CreateLogEntryInput{
		LoggedAt: date.Add(8 * time.Hour),
		Calories: floatPtr(1900),
		ProteinG: floatPtr(100),
	}); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	day, err := service.TodaySummary(db, date)
	if err != nil {
		t.Fatalf("today summary: %v", err)
	}
	if day.Date != "2026-02-10" {
		t.Fatalf("unexpected date %s", day.Date)
	}
	if !day.Goals[engine.GoalCalories].Achieved {
		t.Fatalf("1900/2000 kcal should be achieved: %+v", day.Goals[engine.GoalCalories])
	}
	if day.Goals[engine.GoalProtein].Achieved {
		t.Fatalf("100/150g protein should not be achieved")
	}
	if day.OverallScore != 50 {
		t.Fatalf("expected overall 50%%, got %f", day.OverallScore)
	}
}

func TestTodaySummaryWithEmptyStore(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	day, err := service.TodaySummary(db, time.Date(2026, 2, 10, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("today summary: %v", err)
	}
	for _, g := range engine.AllGoalTypes() {
		if day.Goals[g].Actual != 0 || day.Goals[g].Achieved {
			t.Fatalf("empty store should yield zero actuals, got %+v", day.Goals[g])
		}
	}
}
