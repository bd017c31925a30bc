package peaknut

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/atman1234/peak-nutrition-ai-sub000/internal/engine"
	"github.com/atman1234/peak-nutrition-ai-sub000/internal/service"
	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's totals against your targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := time.Now()
		if todayDate != "" {
			parsed, err := time.ParseInLocation("2006-01-02", todayDate, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", todayDate)
			}
			target = parsed
		}
		return withDB(func(sqldb *sql.DB) error {
			day, err := service.TodaySummary(sqldb, target)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", day.Date)
			hasGoal := false
			for _, g := range engine.AllGoalTypes() {
				ga := day.Goals[g]
				if ga.Target <= 0 {
					fmt.Fprintf(out, "%-8s %.1f (no goal set)\n", g, ga.Actual)
					continue
				}
				hasGoal = true
				status := "missed"
				if ga.Achieved {
					status = "achieved"
				}
				fmt.Fprintf(out, "%-8s %.1f / %.1f (%.0f%%, %s)\n", g, ga.Actual, ga.Target, ga.Percentage, status)
			}
			if hasGoal {
				fmt.Fprintf(out, "Overall: %.0f%% of goals met\n", day.OverallScore)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
