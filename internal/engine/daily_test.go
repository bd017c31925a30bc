package engine_test

import (
	"testing"
	"time"

	"github.com/atman1234/peak-nutrition-ai-sub000/internal/engine"
)

func TestBuildDailyAchievementsDenseSeries(t *testing.T) {
	t.Parallel()
	start := day(t, "2026-03-01")
	logs := []engine.LogEntry{
		{LoggedAt: start.Add(8 * time.Hour), Calories: fptr(1800), Protein: fptr(110)},
		// Day 2 and 3 have no logs; day 4 has two entries that must sum.
		{LoggedAt: start.AddDate(0, 0, 3).Add(9 * time.Hour), Calories: fptr(1000)},
		{LoggedAt: start.AddDate(0, 0, 3).Add(19 * time.Hour), Calories: fptr(1100)},
	}
	profile := engine.GoalProfile{CalorieTarget: 2000, ProteinTargetG: 130}

	days := engine.BuildDailyAchievements(engine.DateRange{Start: start, End: start.AddDate(0, 0, 3)}, logs, profile)
	if len(days) != 4 {
		t.Fatalf("expected 4 days, got %d", len(days))
	}
	if days[0].Date != "2026-03-01" || days[3].Date != "2026-03-04" {
		t.Fatalf("unexpected date bounds: %s .. %s", days[0].Date, days[3].Date)
	}

	first := days[0].Goals[engine.GoalCalories]
	if !first.Achieved || first.Actual != 1800 {
		t.Fatalf("day 1 calories: %+v", first)
	}
	if days[0].Goals[engine.GoalProtein].Achieved {
		t.Fatalf("110g against 130g target is below 90%%, should not be achieved")
	}

	for _, i := range []int{1, 2} {
		if got := days[i].Goals[engine.GoalCalories].Actual; got != 0 {
			t.Fatalf("empty day %d should have zero actual, got %f", i, got)
		}
	}

	summed := days[3].Goals[engine.GoalCalories]
	if summed.Actual != 2100 || !summed.Achieved {
		t.Fatalf("duplicate logs should sum to 2100 achieved, got %+v", summed)
	}
}

func TestBuildDailyAchievementsSingleEmptyDay(t *testing.T) {
	t.Parallel()
	start := day(t, "2026-03-10")
	days := engine.BuildDailyAchievements(engine.DateRange{Start: start, End: start}, nil, engine.GoalProfile{CalorieTarget: 2000})
	if len(days) != 1 {
		t.Fatalf("expected one record for an empty day, got %d", len(days))
	}
	for _, g := range engine.AllGoalTypes() {
		ga := days[0].Goals[g]
		if ga.Actual != 0 || ga.Achieved {
			t.Fatalf("empty day goal %s: %+v", g, ga)
		}
	}
}

func TestBuildDailyAchievementsInvertedRange(t *testing.T) {
	t.Parallel()
	days := engine.BuildDailyAchievements(engine.DateRange{Start: day(t, "2026-03-10"), End: day(t, "2026-03-01")}, nil, engine.GoalProfile{})
	if len(days) != 0 {
		t.Fatalf("inverted range should yield an empty series, got %d days", len(days))
	}
}

func TestBuildDailyAchievementsZeroTargetExcluded(t *testing.T) {
	t.Parallel()
	start := day(t, "2026-03-01")
	logs := []engine.LogEntry{
		{LoggedAt: start.Add(12 * time.Hour), Calories: fptr(2000), Protein: fptr(500)},
	}
	// Only calories has a goal; protein must never count as achieved
	// no matter how much was logged.
	profile := engine.GoalProfile{CalorieTarget: 2000}
	days := engine.BuildDailyAchievements(engine.DateRange{Start: start, End: start}, logs, profile)

	protein := days[0].Goals[engine.GoalProtein]
	if protein.Achieved || protein.Percentage != 0 {
		t.Fatalf("zero-target goal leaked into achievement: %+v", protein)
	}
	if days[0].OverallScore != 100 {
		t.Fatalf("overall score should cover targeted goals only, got %f", days[0].OverallScore)
	}
}

func TestBuildDailyAchievementsNoGoalsAtAll(t *testing.T) {
	t.Parallel()
	start := day(t, "2026-03-01")
	logs := []engine.LogEntry{{LoggedAt: start.Add(time.Hour), Calories: fptr(1500)}}
	days := engine.BuildDailyAchievements(engine.DateRange{Start: start, End: start}, logs, engine.GoalProfile{})
	if days[0].OverallScore != 0 {
		t.Fatalf("no targeted goals should score 0, got %f", days[0].OverallScore)
	}
}

func TestBuildDailyAchievementsLocalDateBucketing(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+10", 10*3600)
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	// 20:00 UTC on March 1 is 06:00 March 2 in UTC+10; a naive UTC
	// date would land this entry outside the range.
	logs := []engine.LogEntry{
		{LoggedAt: time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC), Calories: fptr(1900)},
	}
	days := engine.BuildDailyAchievements(engine.DateRange{Start: start, End: start}, logs, engine.GoalProfile{CalorieTarget: 2000})
	if got := days[0].Goals[engine.GoalCalories].Actual; got != 1900 {
		t.Fatalf("UTC timestamp should bucket to local date 2026-03-02, got actual %f", got)
	}
}

func TestBuildDailyAchievementsNilNutrientsSumAsZero(t *testing.T) {
	t.Parallel()
	start := day(t, "2026-03-01")
	logs := []engine.LogEntry{
		{LoggedAt: start.Add(8 * time.Hour), Calories: fptr(500)},
		{LoggedAt: start.Add(13 * time.Hour)}, // nothing recorded
		{LoggedAt: start.Add(19 * time.Hour), Calories: fptr(700), Fat: fptr(30)},
	}
	days := engine.BuildDailyAchievements(engine.DateRange{Start: start, End: start}, logs, engine.GoalProfile{CalorieTarget: 1200, FatTargetG: 30})
	if got := days[0].Goals[engine.GoalCalories].Actual; got != 1200 {
		t.Fatalf("expected 1200 kcal, got %f", got)
	}
	if got := days[0].Goals[engine.GoalFat].Actual; got != 30 {
		t.Fatalf("expected 30g fat, got %f", got)
	}
}
