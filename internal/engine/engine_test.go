package engine_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/atman1234/peak-nutrition-ai-sub000/internal/engine"
)

func TestComputeHistoricalMetricsFullReport(t *testing.T) {
	t.Parallel()
	start := day(t, "2026-03-01")
	logs := make([]engine.LogEntry, 0, 14)
	for i := 0; i < 14; i++ {
		logs = append(logs, engine.LogEntry{
			LoggedAt: start.AddDate(0, 0, i).Add(12 * time.Hour),
			Calories: fptr(2000),
			Protein:  fptr(150),
		})
	}
	profile := engine.GoalProfile{CalorieTarget: 2000, ProteinTargetG: 150}
	r := engine.DateRange{Start: start, End: start.AddDate(0, 0, 13)}

	report, err := engine.ComputeHistoricalMetrics(r, logs, profile, nil, engine.AllOptions())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if len(report.Days) != 14 {
		t.Fatalf("expected 14 days, got %d", len(report.Days))
	}
	if len(report.Streaks) != 4 || len(report.Consistency) != 4 || len(report.Trends) != 4 {
		t.Fatalf("expected all four goal types per section")
	}
	if report.Streaks[engine.GoalCalories].CurrentStreak != 14 {
		t.Fatalf("expected 14-day calories streak, got %d", report.Streaks[engine.GoalCalories].CurrentStreak)
	}
	if report.Patterns == nil {
		t.Fatalf("patterns requested but missing")
	}
	if len(report.Insights) == 0 {
		t.Fatalf("insights requested but missing")
	}
}

func TestComputeHistoricalMetricsDeterministic(t *testing.T) {
	t.Parallel()
	start := day(t, "2026-03-01")
	logs := []engine.LogEntry{
		{LoggedAt: start.Add(9 * time.Hour), Calories: fptr(1800), Protein: fptr(120), Carbs: fptr(200)},
		{LoggedAt: start.AddDate(0, 0, 2).Add(20 * time.Hour), Calories: fptr(2200), Fat: fptr(80)},
	}
	profile := engine.GoalProfile{CalorieTarget: 2000, ProteinTargetG: 130, CarbTargetG: 250, FatTargetG: 70}
	r := engine.DateRange{Start: start, End: start.AddDate(0, 0, 9)}

	first, err := engine.ComputeHistoricalMetrics(r, logs, profile, nil, engine.AllOptions())
	if err != nil {
		t.Fatalf("first compute: %v", err)
	}
	second, err := engine.ComputeHistoricalMetrics(r, logs, profile, nil, engine.AllOptions())
	if err != nil {
		t.Fatalf("second compute: %v", err)
	}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("identical inputs must produce byte-identical output")
	}
}

func TestComputeHistoricalMetricsInvertedRange(t *testing.T) {
	t.Parallel()
	r := engine.DateRange{Start: day(t, "2026-03-10"), End: day(t, "2026-03-01")}
	report, err := engine.ComputeHistoricalMetrics(r, nil, engine.GoalProfile{}, nil, engine.AllOptions())
	if err != nil {
		t.Fatalf("inverted range must not error: %v", err)
	}
	if len(report.Days) != 0 {
		t.Fatalf("expected empty series, got %d days", len(report.Days))
	}
}

func TestComputeHistoricalMetricsRejectsMissingTimestamp(t *testing.T) {
	t.Parallel()
	r := engine.DateRange{Start: day(t, "2026-03-01"), End: day(t, "2026-03-01")}
	_, err := engine.ComputeHistoricalMetrics(r, []engine.LogEntry{{Calories: fptr(100)}}, engine.GoalProfile{}, nil, engine.AllOptions())
	if err == nil {
		t.Fatalf("a log entry with no timestamp must fail fast")
	}
}

func TestComputeHistoricalMetricsPartialOptions(t *testing.T) {
	t.Parallel()
	start := day(t, "2026-03-01")
	r := engine.DateRange{Start: start, End: start.AddDate(0, 0, 6)}
	report, err := engine.ComputeHistoricalMetrics(r, nil, engine.GoalProfile{CalorieTarget: 2000}, nil, engine.Options{Streaks: true})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if report.Streaks == nil {
		t.Fatalf("streaks requested but missing")
	}
	if report.Consistency != nil || report.Trends != nil || report.Patterns != nil || report.Insights != nil {
		t.Fatalf("unrequested sections must stay nil")
	}
}

func TestComputeHistoricalMetricsGoalTypeSubset(t *testing.T) {
	t.Parallel()
	start := day(t, "2026-03-01")
	r := engine.DateRange{Start: start, End: start.AddDate(0, 0, 6)}
	report, err := engine.ComputeHistoricalMetrics(r, nil, engine.GoalProfile{CalorieTarget: 2000}, []engine.GoalType{engine.GoalProtein}, engine.AllOptions())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if len(report.Streaks) != 1 {
		t.Fatalf("expected streaks for protein only, got %d", len(report.Streaks))
	}
	if _, ok := report.Streaks[engine.GoalProtein]; !ok {
		t.Fatalf("protein streak missing")
	}
}
