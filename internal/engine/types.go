// Package engine computes historical nutrition metrics — daily
// goal achievement, streaks, consistency scores, trends, weekday
// patterns, and natural-language insights — from a date range, a set
// of log entries, and a target profile. Every function is pure: no
// I/O, no clock reads, no state between calls.
package engine

import "time"

type GoalType string

const (
	GoalCalories GoalType = "calories"
	GoalProtein  GoalType = "protein"
	GoalCarbs    GoalType = "carbs"
	GoalFat      GoalType = "fat"
)

// AllGoalTypes returns the goal types in their canonical order. Every
// map walk in this package iterates via this slice so identical inputs
// always produce identical output.
func AllGoalTypes() []GoalType {
	return []GoalType{GoalCalories, GoalProtein, GoalCarbs, GoalFat}
}

// LogEntry is a single logged meal. Nil nutrient fields mean "not
// recorded" and sum as zero during aggregation.
type LogEntry struct {
	LoggedAt time.Time
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
}

// GoalProfile holds daily targets. A zero target means "no goal" for
// that nutrient: such days are excluded from rate denominators, never
// counted as achieved or failed.
type GoalProfile struct {
	CalorieTarget  float64 `json:"calorie_target"`
	ProteinTargetG float64 `json:"protein_target_g"`
	CarbTargetG    float64 `json:"carb_target_g"`
	FatTargetG     float64 `json:"fat_target_g"`
}

// Target returns the profile's target for a goal type.
func (p GoalProfile) Target(g GoalType) float64 {
	switch g {
	case GoalCalories:
		return p.CalorieTarget
	case GoalProtein:
		return p.ProteinTargetG
	case GoalCarbs:
		return p.CarbTargetG
	case GoalFat:
		return p.FatTargetG
	}
	return 0
}

// DateRange is an inclusive range of local calendar dates. Bucketing
// uses Start's location, so the caller's notion of "local" travels
// with the range instead of being read from ambient state.
type DateRange struct {
	Start time.Time
	End   time.Time
}

type GoalAchievement struct {
	Target     float64 `json:"target"`
	Actual     float64 `json:"actual"`
	Percentage float64 `json:"percentage"`
	Achieved   bool    `json:"achieved"`
}

// DailyAchievement is one calendar date's totals measured against the
// profile. Dates with no logs still produce a record with zero actuals
// so streak logic can tell "nothing logged" from "day not in range".
type DailyAchievement struct {
	Date         string                       `json:"date"`
	Goals        map[GoalType]GoalAchievement `json:"goals"`
	OverallScore float64                      `json:"overall_score"`
}

type StreakWindow struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Length    int    `json:"length"`
}

type StreakData struct {
	GoalType         GoalType       `json:"goal_type"`
	CurrentStreak    int            `json:"current_streak"`
	LongestStreak    int            `json:"longest_streak"`
	LastAchievedDate string         `json:"last_achieved_date,omitempty"`
	StreakHistory    []StreakWindow `json:"streak_history"`
}

const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

type ConsistencyScore struct {
	GoalType          GoalType `json:"goal_type"`
	Period            string   `json:"period"`
	Score             float64  `json:"score"`
	TotalDays         int      `json:"total_days"`
	AchievedDays      int      `json:"achieved_days"`
	AveragePercentage float64  `json:"average_percentage"`
	StandardDeviation float64  `json:"standard_deviation"`
	Trend             string   `json:"trend"`
}

const (
	DirectionUp     = "up"
	DirectionDown   = "down"
	DirectionStable = "stable"

	StrengthWeak     = "weak"
	StrengthModerate = "moderate"
	StrengthStrong   = "strong"
)

type TrendAnalysis struct {
	Metric           GoalType  `json:"metric"`
	Direction        string    `json:"direction"`
	Strength         string    `json:"strength"`
	ChangePercentage float64   `json:"change_percentage"`
	MovingAverage    []float64 `json:"moving_average"`
	Confidence       float64   `json:"confidence"`
}

type WeekdayPattern struct {
	Weekday      time.Weekday `json:"weekday"`
	Days         int          `json:"days"`
	AverageScore float64      `json:"average_score"`
	BestGoal     GoalType     `json:"best_goal,omitempty"`
	WorstGoal    GoalType     `json:"worst_goal,omitempty"`
}

type MonthlyTrend struct {
	Improving bool    `json:"improving"`
	Slope     float64 `json:"slope"`
}

type MonthScore struct {
	Month        string  `json:"month"`
	Days         int     `json:"days"`
	AverageScore float64 `json:"average_score"`
}

// PatternAnalysis surfaces recurring strong and weak days. Monthly is
// nil when fewer than 14 days of history exist.
type PatternAnalysis struct {
	Weekdays        []WeekdayPattern `json:"weekdays"`
	Monthly         *MonthlyTrend    `json:"monthly,omitempty"`
	MonthlyAverages []MonthScore     `json:"monthly_averages"`
	ProblemWeekdays []time.Weekday   `json:"problem_weekdays"`
	SuccessFactors  []string         `json:"success_factors"`
}

// Options selects which sections of the report to compute. Each is
// independently optional so callers can pay only for what they read.
type Options struct {
	Streaks     bool
	Consistency bool
	Trends      bool
	Patterns    bool
	Insights    bool
	Period      string
}

func AllOptions() Options {
	return Options{Streaks: true, Consistency: true, Trends: true, Patterns: true, Insights: true}
}

// Report is the full output of one engine invocation. Sections not
// requested in Options stay nil.
type Report struct {
	FromDate    string                        `json:"from_date"`
	ToDate      string                        `json:"to_date"`
	Days        []DailyAchievement            `json:"days"`
	Streaks     map[GoalType]StreakData       `json:"streaks,omitempty"`
	Consistency map[GoalType]ConsistencyScore `json:"consistency,omitempty"`
	Trends      map[GoalType]TrendAnalysis    `json:"trends,omitempty"`
	Patterns    *PatternAnalysis              `json:"patterns,omitempty"`
	Insights    []string                      `json:"insights,omitempty"`
}
