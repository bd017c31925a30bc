package engine

import "math"

const (
	achievementWeight  = 0.7
	consistencyWeight  = 0.3
	trendWindowDays    = 7
	trendRateDeadBand  = 0.1
	maxConsistencyBase = 100.0
)

// ScoreConsistency blends achievement rate (70%) with inverse
// variability (30%) for one goal type over a period. Only days with a
// target count; a goal with no targeted days scores zero and trends
// stable — never NaN.
func ScoreConsistency(days []DailyAchievement, goal GoalType, period string) ConsistencyScore {
	out := ConsistencyScore{
		GoalType: goal,
		Period:   period,
		Trend:    TrendStable,
	}

	qualifying := filterTargeted(days, goal)
	out.TotalDays = len(qualifying)
	if out.TotalDays == 0 {
		return out
	}

	percentages := make([]float64, 0, len(qualifying))
	for i := range qualifying {
		g := qualifying[i].Goals[goal]
		percentages = append(percentages, g.Percentage)
		if g.Achieved {
			out.AchievedDays++
		}
	}

	achievementRate := float64(out.AchievedDays) / float64(out.TotalDays) * 100
	mean, stddev := meanAndStdDev(percentages)
	out.AveragePercentage = mean
	out.StandardDeviation = stddev

	consistencyFactor := math.Max(0, maxConsistencyBase-stddev)
	out.Score = achievementRate*achievementWeight + consistencyFactor*consistencyWeight
	out.Trend = consistencyTrend(qualifying, goal)
	return out
}

// consistencyTrend compares the achieved fraction of the last seven
// qualifying days against the seven before them. Short histories use
// whatever days exist; two empty windows compare equal and read as
// stable.
func consistencyTrend(qualifying []DailyAchievement, goal GoalType) string {
	n := len(qualifying)
	recentStart := n - trendWindowDays
	if recentStart < 0 {
		recentStart = 0
	}
	olderStart := recentStart - trendWindowDays
	if olderStart < 0 {
		olderStart = 0
	}

	recent := achievedFractionOf(qualifying[recentStart:n], goal)
	older := achievedFractionOf(qualifying[olderStart:recentStart], goal)

	switch {
	case recent-older > trendRateDeadBand:
		return TrendImproving
	case older-recent > trendRateDeadBand:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func achievedFractionOf(days []DailyAchievement, goal GoalType) float64 {
	if len(days) == 0 {
		return 0
	}
	achieved := 0
	for i := range days {
		if days[i].Goals[goal].Achieved {
			achieved++
		}
	}
	return float64(achieved) / float64(len(days))
}

// filterTargeted keeps days where the goal has a positive target,
// preserving chronological order.
func filterTargeted(days []DailyAchievement, goal GoalType) []DailyAchievement {
	out := make([]DailyAchievement, 0, len(days))
	for i := range days {
		if days[i].Goals[goal].Target > 0 {
			out = append(out, days[i])
		}
	}
	return out
}

// meanAndStdDev returns the mean and population standard deviation.
func meanAndStdDev(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	sq := 0.0
	for _, v := range values {
		diff := v - mean
		sq += diff * diff
	}
	return mean, math.Sqrt(sq / float64(len(values)))
}
