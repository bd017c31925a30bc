package peaknut

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/atman1234/peak-nutrition-ai-sub000/internal/service"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks on the log and profile stores",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.RunDoctor(sqldb, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Schema version: %d\n", report.SchemaVersion)
			fmt.Fprintf(out, "Log entries: %d\n", report.TotalEntries)
			fmt.Fprintf(out, "Invalid timestamps: %d\n", report.InvalidTimestamps)
			fmt.Fprintf(out, "Negative nutrient rows: %d\n", report.NegativeNutrients)
			fmt.Fprintf(out, "Future-dated entries: %d\n", report.FutureDatedEntries)
			fmt.Fprintf(out, "Goalless profiles: %d\n", report.ProfilesWithoutGoal)
			if !report.Clean() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
