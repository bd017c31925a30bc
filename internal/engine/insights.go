package engine

import (
	"fmt"
	"strings"
	"time"
)

const maxInsights = 8

const (
	greatWeekScore       = 75.0
	challengingWeekScore = 50.0
	strongConsistency    = 80.0
	strongGoalRate       = 80.0
	weakGoalRate         = 50.0
)

// InsightInput carries whichever section outputs were computed. Nil
// maps and slices simply contribute no sentences.
type InsightInput struct {
	Days        []DailyAchievement
	Streaks     map[GoalType]StreakData
	Consistency map[GoalType]ConsistencyScore
	Trends      map[GoalType]TrendAnalysis
	Patterns    *PatternAnalysis
}

// GenerateInsights composes up to eight sentences from the analysis
// outputs, in a fixed priority order: streaks first, then consistency,
// trend movement, the last-week summary, weekday patterns, and
// best/worst goals. The list is truncated, never re-sorted.
func GenerateInsights(in InsightInput) []string {
	insights := make([]string, 0, maxInsights)
	add := func(s string) {
		if len(insights) < maxInsights {
			insights = append(insights, s)
		}
	}

	if goal, streak, ok := longestStreak(in.Streaks); ok {
		add(fmt.Sprintf("Your longest %s streak is %d days. Impressive dedication!", goal, streak.LongestStreak))
	}
	if goal, streak, ok := bestActiveStreak(in.Streaks); ok {
		add(fmt.Sprintf("You're on a %d-day %s streak right now. Keep it going!", streak.CurrentStreak, goal))
	}
	if goal, score, ok := bestConsistency(in.Consistency); ok && score.Score > strongConsistency {
		add(fmt.Sprintf("Your %s consistency is excellent at %.0f/100.", goal, score.Score))
	}
	if goals := goalsWithTrend(in.Consistency, TrendImproving); len(goals) > 0 {
		add(fmt.Sprintf("You're improving on %s. The trend is moving your way.", joinGoals(goals)))
	}
	if goals := goalsWithTrend(in.Consistency, TrendDeclining); len(goals) > 0 {
		add(fmt.Sprintf("Your %s adherence has slipped recently. A small reset can turn it around.", joinGoals(goals)))
	}
	if sentence, ok := lastWeekInsight(in.Days); ok {
		add(sentence)
	}
	if in.Patterns != nil && len(in.Patterns.ProblemWeekdays) > 0 {
		add(fmt.Sprintf("%s tend to be your toughest days. Planning ahead could help.", joinWeekdays(in.Patterns.ProblemWeekdays)))
	}
	if in.Patterns != nil {
		for _, s := range in.Patterns.SuccessFactors {
			add(s)
		}
	}
	if in.Patterns != nil && in.Patterns.Monthly != nil {
		if in.Patterns.Monthly.Improving {
			add("Your overall scores this period are on an upward trajectory.")
		} else if in.Patterns.Monthly.Slope < 0 {
			add("Your overall scores this period have been drifting down.")
		}
	}
	if sentence, ok := bestWorstGoalInsight(in.Consistency); ok {
		add(sentence)
	}

	return insights
}

func longestStreak(streaks map[GoalType]StreakData) (GoalType, StreakData, bool) {
	var best StreakData
	var bestGoal GoalType
	found := false
	for _, g := range AllGoalTypes() {
		s, ok := streaks[g]
		if !ok {
			continue
		}
		if s.LongestStreak > best.LongestStreak {
			best = s
			bestGoal = g
			found = true
		}
	}
	return bestGoal, best, found && best.LongestStreak > 0
}

func bestActiveStreak(streaks map[GoalType]StreakData) (GoalType, StreakData, bool) {
	var best StreakData
	var bestGoal GoalType
	found := false
	for _, g := range AllGoalTypes() {
		s, ok := streaks[g]
		if !ok {
			continue
		}
		if s.CurrentStreak > best.CurrentStreak {
			best = s
			bestGoal = g
			found = true
		}
	}
	return bestGoal, best, found && best.CurrentStreak > 0
}

func bestConsistency(scores map[GoalType]ConsistencyScore) (GoalType, ConsistencyScore, bool) {
	var best ConsistencyScore
	var bestGoal GoalType
	found := false
	for _, g := range AllGoalTypes() {
		s, ok := scores[g]
		if !ok || s.TotalDays == 0 {
			continue
		}
		if !found || s.Score > best.Score {
			best = s
			bestGoal = g
			found = true
		}
	}
	return bestGoal, best, found
}

func goalsWithTrend(scores map[GoalType]ConsistencyScore, trend string) []GoalType {
	out := make([]GoalType, 0)
	for _, g := range AllGoalTypes() {
		if s, ok := scores[g]; ok && s.Trend == trend {
			out = append(out, g)
		}
	}
	return out
}

// lastWeekInsight summarizes the trailing seven days of overall
// scores. Scores between the two thresholds produce no sentence.
func lastWeekInsight(days []DailyAchievement) (string, bool) {
	if len(days) == 0 {
		return "", false
	}
	start := len(days) - 7
	if start < 0 {
		start = 0
	}
	recent := days[start:]
	sum := 0.0
	for i := range recent {
		sum += recent[i].OverallScore
	}
	avg := sum / float64(len(recent))
	switch {
	case avg >= greatWeekScore:
		return fmt.Sprintf("Great week! You met %.0f%% of your goals over the last %d days.", avg, len(recent)), true
	case avg < challengingWeekScore:
		return fmt.Sprintf("A challenging week with %.0f%% of goals met. Tomorrow is a fresh start.", avg), true
	default:
		return "", false
	}
}

func bestWorstGoalInsight(scores map[GoalType]ConsistencyScore) (string, bool) {
	var best, worst *ConsistencyScore
	for _, g := range AllGoalTypes() {
		s, ok := scores[g]
		if !ok || s.TotalDays == 0 {
			continue
		}
		rate := float64(s.AchievedDays) / float64(s.TotalDays) * 100
		if rate > strongGoalRate && (best == nil || rate > achievedRate(*best)) {
			copied := s
			best = &copied
		}
		if rate < weakGoalRate && (worst == nil || rate < achievedRate(*worst)) {
			copied := s
			worst = &copied
		}
	}
	switch {
	case best != nil && worst != nil:
		return fmt.Sprintf("Your %s goal is your strongest, while %s needs the most attention.", best.GoalType, worst.GoalType), true
	case best != nil:
		return fmt.Sprintf("Your %s goal is your strongest this period.", best.GoalType), true
	case worst != nil:
		return fmt.Sprintf("Your %s goal needs the most attention this period.", worst.GoalType), true
	default:
		return "", false
	}
}

func achievedRate(s ConsistencyScore) float64 {
	if s.TotalDays == 0 {
		return 0
	}
	return float64(s.AchievedDays) / float64(s.TotalDays) * 100
}

func joinGoals(goals []GoalType) string {
	names := make([]string, len(goals))
	for i, g := range goals {
		names[i] = string(g)
	}
	return joinWords(names)
}

func joinWeekdays(weekdays []time.Weekday) string {
	names := make([]string, len(weekdays))
	for i, wd := range weekdays {
		names[i] = wd.String() + "s"
	}
	return joinWords(names)
}

func joinWords(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " and " + words[1]
	default:
		return strings.Join(words[:len(words)-1], ", ") + ", and " + words[len(words)-1]
	}
}
