package engine

import "fmt"

// ComputeHistoricalMetrics is the engine's single entry point. It
// aggregates logs into the dense daily series and fans out to the
// sections selected in opts. An inverted range returns an empty but
// valid report; a log entry with no timestamp is the one genuinely
// invalid input and fails fast.
func ComputeHistoricalMetrics(r DateRange, logs []LogEntry, profile GoalProfile, goalTypes []GoalType, opts Options) (*Report, error) {
	for i := range logs {
		if logs[i].LoggedAt.IsZero() {
			return nil, fmt.Errorf("log entry %d has no timestamp", i)
		}
	}
	if len(goalTypes) == 0 {
		goalTypes = AllGoalTypes()
	}

	days := BuildDailyAchievements(r, logs, profile)
	report := &Report{
		FromDate: beginningOfDay(r.Start).Format(dayFormat),
		ToDate:   beginningOfDay(r.End).Format(dayFormat),
		Days:     days,
	}

	if opts.Streaks {
		report.Streaks = make(map[GoalType]StreakData, len(goalTypes))
		for _, g := range goalTypes {
			report.Streaks[g] = CalculateStreak(days, g)
		}
	}
	if opts.Consistency {
		report.Consistency = make(map[GoalType]ConsistencyScore, len(goalTypes))
		for _, g := range goalTypes {
			report.Consistency[g] = ScoreConsistency(days, g, opts.Period)
		}
	}
	if opts.Trends {
		report.Trends = make(map[GoalType]TrendAnalysis, len(goalTypes))
		for _, g := range goalTypes {
			report.Trends[g] = AnalyzeTrend(days, g)
		}
	}
	if opts.Patterns {
		patterns := AnalyzePatterns(days)
		report.Patterns = &patterns
	}
	if opts.Insights {
		report.Insights = GenerateInsights(InsightInput{
			Days:        days,
			Streaks:     report.Streaks,
			Consistency: report.Consistency,
			Trends:      report.Trends,
			Patterns:    report.Patterns,
		})
	}
	return report, nil
}
