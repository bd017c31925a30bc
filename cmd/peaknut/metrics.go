package peaknut

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atman1234/peak-nutrition-ai-sub000/internal/engine"
	"github.com/atman1234/peak-nutrition-ai-sub000/internal/service"
	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Historical goal analytics: streaks, consistency, trends, patterns",
}

var (
	metricsJSON        bool
	metricsOutPath     string
	metricsStreaks     bool
	metricsConsistency bool
	metricsTrends      bool
	metricsPatterns    bool
	metricsInsights    bool
)

var metricsWeekArg string

var metricsWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Metrics for an ISO week",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := resolveWeekRange(metricsWeekArg)
		if err != nil {
			return err
		}
		return runMetrics(cmd, start, end, "week")
	},
}

var metricsMonthArg string

var metricsMonthCmd = &cobra.Command{
	Use:   "month",
	Short: "Metrics for a calendar month",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := resolveMonthRange(metricsMonthArg)
		if err != nil {
			return err
		}
		return runMetrics(cmd, start, end, "month")
	},
}

var (
	metricsRangeFrom string
	metricsRangeTo   string
)

var metricsRangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Metrics for an arbitrary date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		if metricsRangeFrom == "" || metricsRangeTo == "" {
			return fmt.Errorf("--from and --to are required")
		}
		start, err := time.ParseInLocation("2006-01-02", metricsRangeFrom, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --from date (expected YYYY-MM-DD)")
		}
		end, err := time.ParseInLocation("2006-01-02", metricsRangeTo, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --to date (expected YYYY-MM-DD)")
		}
		return runMetrics(cmd, start, end, "range")
	},
}

func metricsOptions(period string) engine.Options {
	opts := engine.Options{
		Streaks:     metricsStreaks,
		Consistency: metricsConsistency,
		Trends:      metricsTrends,
		Patterns:    metricsPatterns,
		Insights:    metricsInsights,
		Period:      period,
	}
	// No section flags at all means everything.
	if !opts.Streaks && !opts.Consistency && !opts.Trends && !opts.Patterns && !opts.Insights {
		opts = engine.AllOptions()
		opts.Period = period
	}
	return opts
}

func runMetrics(cmd *cobra.Command, from, to time.Time, period string) error {
	return withDB(func(sqldb *sql.DB) error {
		report, err := service.HistoricalMetrics(sqldb, from, to, metricsOptions(period))
		if err != nil {
			return err
		}

		jsonBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal metrics json: %w", err)
		}

		if metricsOutPath != "" {
			if err := os.WriteFile(metricsOutPath, append(jsonBytes, '\n'), 0o644); err != nil {
				return fmt.Errorf("write metrics report to %q: %w", metricsOutPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved metrics report to %s\n", metricsOutPath)
		}

		if metricsJSON {
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
			return nil
		}
		printMetricsReport(cmd.OutOrStdout(), report)
		return nil
	})
}

func printMetricsReport(out io.Writer, r *engine.Report) {
	fmt.Fprintf(out, "Range: %s to %s (%d days)\n", r.FromDate, r.ToDate, len(r.Days))

	if r.Streaks != nil {
		fmt.Fprintln(out, "\nStreaks")
		for _, g := range engine.AllGoalTypes() {
			s := r.Streaks[g]
			fmt.Fprintf(out, "%-8s current=%d longest=%d", g, s.CurrentStreak, s.LongestStreak)
			if s.LastAchievedDate != "" {
				fmt.Fprintf(out, " last-achieved=%s", s.LastAchievedDate)
			}
			fmt.Fprintln(out)
		}
	}

	if r.Consistency != nil {
		fmt.Fprintln(out, "\nConsistency")
		for _, g := range engine.AllGoalTypes() {
			c := r.Consistency[g]
			if c.TotalDays == 0 {
				fmt.Fprintf(out, "%-8s no targeted days\n", g)
				continue
			}
			fmt.Fprintf(out, "%-8s score=%.1f achieved=%d/%d avg=%.1f%% stddev=%.1f trend=%s\n",
				g, c.Score, c.AchievedDays, c.TotalDays, c.AveragePercentage, c.StandardDeviation, c.Trend)
		}
	}

	if r.Trends != nil {
		fmt.Fprintln(out, "\nTrends")
		for _, g := range engine.AllGoalTypes() {
			t := r.Trends[g]
			fmt.Fprintf(out, "%-8s %s (%s, change=%.1f, confidence=%.0f%%)\n",
				g, t.Direction, t.Strength, t.ChangePercentage, t.Confidence)
		}
	}

	if r.Patterns != nil {
		fmt.Fprintln(out, "\nWeekday Patterns")
		for _, w := range r.Patterns.Weekdays {
			fmt.Fprintf(out, "%-10s avg=%.1f%% over %d days", w.Weekday, w.AverageScore, w.Days)
			if w.BestGoal != "" {
				fmt.Fprintf(out, " best=%s worst=%s", w.BestGoal, w.WorstGoal)
			}
			fmt.Fprintln(out)
		}
		if r.Patterns.Monthly != nil {
			fmt.Fprintf(out, "Monthly trend: improving=%t slope=%.2f\n", r.Patterns.Monthly.Improving, r.Patterns.Monthly.Slope)
		}
		for _, m := range r.Patterns.MonthlyAverages {
			fmt.Fprintf(out, "%s avg=%.1f%% over %d days\n", m.Month, m.AverageScore, m.Days)
		}
	}

	if len(r.Insights) > 0 {
		fmt.Fprintln(out, "\nInsights")
		for _, s := range r.Insights {
			fmt.Fprintf(out, "- %s\n", s)
		}
	}
}

func init() {
	rootCmd.AddCommand(metricsCmd)
	metricsCmd.AddCommand(metricsWeekCmd, metricsMonthCmd, metricsRangeCmd)

	for _, c := range []*cobra.Command{metricsWeekCmd, metricsMonthCmd, metricsRangeCmd} {
		c.Flags().BoolVar(&metricsJSON, "json", false, "Output as JSON")
		c.Flags().StringVar(&metricsOutPath, "out", "", "Write the JSON report to a file")
		c.Flags().BoolVar(&metricsStreaks, "streaks", false, "Compute streaks only")
		c.Flags().BoolVar(&metricsConsistency, "consistency", false, "Compute consistency scores only")
		c.Flags().BoolVar(&metricsTrends, "trends", false, "Compute trend analysis only")
		c.Flags().BoolVar(&metricsPatterns, "patterns", false, "Compute weekday/month patterns only")
		c.Flags().BoolVar(&metricsInsights, "insights", false, "Generate insights only")
	}
	metricsWeekCmd.Flags().StringVar(&metricsWeekArg, "week", "", "ISO week in format YYYY-Www (default current week)")
	metricsMonthCmd.Flags().StringVar(&metricsMonthArg, "month", "", "Month in format YYYY-MM (default current month)")
	metricsRangeCmd.Flags().StringVar(&metricsRangeFrom, "from", "", "Start date YYYY-MM-DD")
	metricsRangeCmd.Flags().StringVar(&metricsRangeTo, "to", "", "End date YYYY-MM-DD")
}
