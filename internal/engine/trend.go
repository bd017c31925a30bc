package engine

import "math"

const (
	minTrendDays      = 7
	maxTrendWindow    = 7
	directionDeadBand = 0.5
	strongSlope       = 1.5
)

// AnalyzeTrend fits a linear trend to a moving average of daily
// achievement percentages for one goal type. Fewer than seven days
// with a target yields the neutral result instead of a regression on
// insufficient data.
func AnalyzeTrend(days []DailyAchievement, goal GoalType) TrendAnalysis {
	out := TrendAnalysis{
		Metric:        goal,
		Direction:     DirectionStable,
		Strength:      StrengthWeak,
		MovingAverage: []float64{},
	}

	qualifying := filterTargeted(days, goal)
	n := len(qualifying)
	if n < minTrendDays {
		return out
	}

	window := n / 3
	if window > maxTrendWindow {
		window = maxTrendWindow
	}

	percentages := make([]float64, n)
	for i := range qualifying {
		percentages[i] = qualifying[i].Goals[goal].Percentage
	}
	out.MovingAverage = trailingAverage(percentages, window)

	fit := fitOLS(out.MovingAverage)
	out.Confidence = clamp(fit.RSquared*100, 0, 100)
	out.ChangePercentage = math.Abs(fit.Slope) * 100

	switch {
	case fit.Slope > directionDeadBand:
		out.Direction = DirectionUp
	case fit.Slope < -directionDeadBand:
		out.Direction = DirectionDown
	}

	switch abs := math.Abs(fit.Slope); {
	case abs >= strongSlope:
		out.Strength = StrengthStrong
	case abs >= directionDeadBand:
		out.Strength = StrengthModerate
	}
	return out
}

// trailingAverage produces one point per index from window-1 to the
// end, each the mean of the window ending at that index.
func trailingAverage(values []float64, window int) []float64 {
	out := make([]float64, 0, len(values))
	if window < 1 || len(values) < window {
		return out
	}
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out = append(out, sum/float64(window))
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
