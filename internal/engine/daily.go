package engine

const dayFormat = "2006-01-02"

// achievedFraction: a day meets a goal when actual reaches 90% of the
// target.
const achievedFraction = 0.9

type dayTotals struct {
	calories float64
	protein  float64
	carbs    float64
	fat      float64
}

func (t dayTotals) actual(g GoalType) float64 {
	switch g {
	case GoalCalories:
		return t.calories
	case GoalProtein:
		return t.protein
	case GoalCarbs:
		return t.carbs
	case GoalFat:
		return t.fat
	}
	return 0
}

// BuildDailyAchievements collapses log entries into one record per
// calendar date from r.Start to r.End inclusive, in chronological
// order. The date sequence is generated first so dates with no logs
// still appear with zero actuals; inferring dates from the logs would
// silently bias every downstream calculation. An inverted range yields
// an empty slice, not an error.
func BuildDailyAchievements(r DateRange, logs []LogEntry, profile GoalProfile) []DailyAchievement {
	start := beginningOfDay(r.Start)
	end := beginningOfDay(r.End)
	if start.After(end) {
		return []DailyAchievement{}
	}
	loc := r.Start.Location()

	// Duplicate entries sum; deduplication is a caller concern.
	totals := map[string]dayTotals{}
	for i := range logs {
		key := logs[i].LoggedAt.In(loc).Format(dayFormat)
		t := totals[key]
		t.calories += valueOrZero(logs[i].Calories)
		t.protein += valueOrZero(logs[i].Protein)
		t.carbs += valueOrZero(logs[i].Carbs)
		t.fat += valueOrZero(logs[i].Fat)
		totals[key] = t
	}

	days := make([]DailyAchievement, 0, inclusiveDayCount(start, end))
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(dayFormat)
		days = append(days, buildDay(key, totals[key], profile))
	}
	return days
}

func buildDay(date string, totals dayTotals, profile GoalProfile) DailyAchievement {
	day := DailyAchievement{
		Date:  date,
		Goals: make(map[GoalType]GoalAchievement, 4),
	}
	targeted := 0
	achieved := 0
	for _, g := range AllGoalTypes() {
		target := profile.Target(g)
		actual := totals.actual(g)
		ga := GoalAchievement{Target: target, Actual: actual}
		if target > 0 {
			ga.Percentage = actual / target * 100
			ga.Achieved = actual >= target*achievedFraction
			targeted++
			if ga.Achieved {
				achieved++
			}
		}
		day.Goals[g] = ga
	}
	if targeted > 0 {
		day.OverallScore = float64(achieved) / float64(targeted) * 100
	}
	return day
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
