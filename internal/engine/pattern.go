package engine

import (
	"fmt"
	"sort"
	"time"
)

const (
	minMonthlyTrendDays = 14
	problemScore        = 60.0
	strongWeekdayScore  = 75.0
	successGoalRate     = 0.8
	successMinWeekdays  = 5
)

const monthFormat = "2006-01"

// AnalyzePatterns aggregates the daily series by weekday and month to
// surface recurring strong and weak days. It takes the unfiltered
// series; zero-target goals simply never win best/worst slots.
func AnalyzePatterns(days []DailyAchievement) PatternAnalysis {
	out := PatternAnalysis{
		Weekdays:        make([]WeekdayPattern, 0, 7),
		MonthlyAverages: make([]MonthScore, 0),
		ProblemWeekdays: make([]time.Weekday, 0),
		SuccessFactors:  make([]string, 0),
	}

	sorted := make([]DailyAchievement, len(days))
	copy(sorted, days)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	byWeekday := map[time.Weekday][]DailyAchievement{}
	for i := range sorted {
		wd := parseDay(sorted[i].Date).Weekday()
		byWeekday[wd] = append(byWeekday[wd], sorted[i])
	}

	// Monday-first walk keeps output order stable across runs.
	for _, wd := range weekOrder() {
		group, ok := byWeekday[wd]
		if !ok {
			continue
		}
		p := weekdayPattern(wd, group)
		out.Weekdays = append(out.Weekdays, p)
		if p.AverageScore < problemScore {
			out.ProblemWeekdays = append(out.ProblemWeekdays, wd)
		}
		if p.AverageScore > strongWeekdayScore {
			out.SuccessFactors = append(out.SuccessFactors,
				fmt.Sprintf("%ss are your strongest days, averaging %.0f%% of goals met.", wd, p.AverageScore))
		}
	}

	out.SuccessFactors = append(out.SuccessFactors, goalSuccessFactors(sorted)...)
	out.MonthlyAverages = monthlyAverages(sorted)
	out.Monthly = monthlyTrend(sorted)
	return out
}

func weekdayPattern(wd time.Weekday, group []DailyAchievement) WeekdayPattern {
	p := WeekdayPattern{Weekday: wd, Days: len(group)}

	sum := 0.0
	for i := range group {
		sum += group[i].OverallScore
	}
	p.AverageScore = sum / float64(len(group))

	// Best/worst goal by average percentage across targeted days; ties
	// resolve to the earlier goal in canonical order.
	bestAvg, worstAvg := -1.0, -1.0
	for _, g := range AllGoalTypes() {
		total, n := 0.0, 0
		for i := range group {
			if ga := group[i].Goals[g]; ga.Target > 0 {
				total += ga.Percentage
				n++
			}
		}
		if n == 0 {
			continue
		}
		avg := total / float64(n)
		if bestAvg < 0 || avg > bestAvg {
			bestAvg = avg
			p.BestGoal = g
		}
		if worstAvg < 0 || avg < worstAvg {
			worstAvg = avg
			p.WorstGoal = g
		}
	}
	return p
}

func goalSuccessFactors(days []DailyAchievement) []string {
	out := make([]string, 0)
	for _, g := range AllGoalTypes() {
		targeted, achieved := 0, 0
		weekdaysWithData := map[time.Weekday]bool{}
		for i := range days {
			ga := days[i].Goals[g]
			if ga.Target <= 0 {
				continue
			}
			targeted++
			weekdaysWithData[parseDay(days[i].Date).Weekday()] = true
			if ga.Achieved {
				achieved++
			}
		}
		if targeted == 0 || len(weekdaysWithData) < successMinWeekdays {
			continue
		}
		if float64(achieved)/float64(targeted) > successGoalRate {
			out = append(out, fmt.Sprintf("You hit your %s goal more than 80%% of the time across the week.", g))
		}
	}
	return out
}

func monthlyAverages(days []DailyAchievement) []MonthScore {
	totals := map[string]*MonthScore{}
	order := make([]string, 0)
	sums := map[string]float64{}
	for i := range days {
		month := parseDay(days[i].Date).Format(monthFormat)
		m, ok := totals[month]
		if !ok {
			m = &MonthScore{Month: month}
			totals[month] = m
			order = append(order, month)
		}
		m.Days++
		sums[month] += days[i].OverallScore
	}

	out := make([]MonthScore, 0, len(order))
	for _, month := range order {
		m := *totals[month]
		m.AverageScore = sums[month] / float64(m.Days)
		out = append(out, m)
	}
	return out
}

// monthlyTrend regresses raw overall scores (not moving-averaged)
// against day index. Under 14 days there is too little signal to fit.
func monthlyTrend(days []DailyAchievement) *MonthlyTrend {
	if len(days) < minMonthlyTrendDays {
		return nil
	}
	scores := make([]float64, len(days))
	for i := range days {
		scores[i] = days[i].OverallScore
	}
	fit := fitOLS(scores)
	return &MonthlyTrend{Improving: fit.Slope > 0, Slope: fit.Slope}
}

func weekOrder() []time.Weekday {
	return []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
}
