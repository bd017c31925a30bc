package peaknut

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/atman1234/peak-nutrition-ai-sub000/internal/service"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record and list nutrition log entries",
}

var (
	logAddName     string
	logAddCalories float64
	logAddProtein  float64
	logAddCarbs    float64
	logAddFat      float64
	logAddDate     string
	logAddTime     string
	logAddNotes    string
)

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a log entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		loggedAt, err := parseDateTimeOrNow(logAddDate, logAddTime)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			// Macros the user never passed stay NULL in the store; the
			// aggregator later sums them as zero.
			id, err := service.CreateLogEntry(sqldb, service.CreateLogEntryInput{
				Name:     logAddName,
				LoggedAt: loggedAt,
				Calories: floatFlag(cmd.Flags().Changed("calories"), logAddCalories),
				ProteinG: floatFlag(cmd.Flags().Changed("protein"), logAddProtein),
				CarbsG:   floatFlag(cmd.Flags().Changed("carbs"), logAddCarbs),
				FatG:     floatFlag(cmd.Flags().Changed("fat"), logAddFat),
				Notes:    logAddNotes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged entry %d at %s\n", id, loggedAt.Format("2006-01-02 15:04"))
			return nil
		})
	},
}

var (
	logListDate  string
	logListFrom  string
	logListTo    string
	logListLimit int
)

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List log entries for a date or range",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.ListLogEntries(sqldb, service.ListLogEntriesFilter{
				Date:     logListDate,
				FromDate: logListFrom,
				ToDate:   logListTo,
				Limit:    logListLimit,
			})
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No log entries found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tLOGGED AT\tKCAL\tP\tC\tF\tNAME")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					e.ID,
					e.LoggedAt.In(time.Local).Format("2006-01-02 15:04"),
					formatMacro(e.Calories),
					formatMacro(e.ProteinG),
					formatMacro(e.CarbsG),
					formatMacro(e.FatG),
					e.Name,
				)
			}
			return nil
		})
	},
}

func formatMacro(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd, logListCmd)

	logAddCmd.Flags().StringVar(&logAddName, "name", "", "Entry name")
	logAddCmd.Flags().Float64Var(&logAddCalories, "calories", 0, "Calories (kcal)")
	logAddCmd.Flags().Float64Var(&logAddProtein, "protein", 0, "Protein (g)")
	logAddCmd.Flags().Float64Var(&logAddCarbs, "carbs", 0, "Carbs (g)")
	logAddCmd.Flags().Float64Var(&logAddFat, "fat", 0, "Fat (g)")
	logAddCmd.Flags().StringVar(&logAddDate, "date", "", "Date YYYY-MM-DD (default today)")
	logAddCmd.Flags().StringVar(&logAddTime, "time", "", "Time HH:MM")
	logAddCmd.Flags().StringVar(&logAddNotes, "notes", "", "Free-form notes")

	logListCmd.Flags().StringVar(&logListDate, "date", "", "Single date YYYY-MM-DD")
	logListCmd.Flags().StringVar(&logListFrom, "from", "", "Start date YYYY-MM-DD")
	logListCmd.Flags().StringVar(&logListTo, "to", "", "End date YYYY-MM-DD")
	logListCmd.Flags().IntVar(&logListLimit, "limit", 0, "Limit number of rows")
}
