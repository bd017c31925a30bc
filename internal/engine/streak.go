package engine

import "sort"

// CalculateStreak scans the daily series for maximal runs of
// consecutive achieved dates for one goal type. Runs break on a failed
// day and on a calendar gap; consecutiveness is judged by date
// adjacency, never by slice index, so a sparse input cannot bridge
// missing days into a single run.
func CalculateStreak(days []DailyAchievement, goal GoalType) StreakData {
	out := StreakData{
		GoalType:      goal,
		StreakHistory: make([]StreakWindow, 0),
	}

	sorted := make([]DailyAchievement, len(days))
	copy(sorted, days)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	var open *StreakWindow
	prevDate := ""
	for i := range sorted {
		date := sorted[i].Date
		achieved := sorted[i].Goals[goal].Achieved

		if open != nil && !nextDay(open.EndDate, date) {
			// Gap in the calendar closes the run at its last seen day.
			out.StreakHistory = append(out.StreakHistory, *open)
			open = nil
		}

		if achieved {
			out.LastAchievedDate = date
			if open == nil {
				open = &StreakWindow{StartDate: date, EndDate: date, Length: 1}
			} else {
				open.EndDate = date
				open.Length++
			}
		} else if open != nil {
			// The run ended on the previous date, not the failing one.
			open.EndDate = prevDate
			out.StreakHistory = append(out.StreakHistory, *open)
			open = nil
		}
		prevDate = date
	}

	if open != nil {
		out.CurrentStreak = open.Length
		out.StreakHistory = append(out.StreakHistory, *open)
	}

	for _, w := range out.StreakHistory {
		// Strict comparison keeps the first of equal-length streaks.
		if w.Length > out.LongestStreak {
			out.LongestStreak = w.Length
		}
	}
	return out
}
