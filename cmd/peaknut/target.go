package peaknut

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/atman1234/peak-nutrition-ai-sub000/internal/service"
	"github.com/spf13/cobra"
)

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Manage daily macro and calorie targets",
}

var (
	targetSetCalories float64
	targetSetProtein  float64
	targetSetCarbs    float64
	targetSetFat      float64
	targetSetDate     string
)

var targetSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set daily targets effective from a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		effective := targetSetDate
		if effective == "" {
			effective = time.Now().Format("2006-01-02")
		}
		return withDB(func(sqldb *sql.DB) error {
			err := service.SetProfile(sqldb, service.SetProfileInput{
				CalorieTarget:  targetSetCalories,
				ProteinTargetG: targetSetProtein,
				CarbTargetG:    targetSetCarbs,
				FatTargetG:     targetSetFat,
				EffectiveDate:  effective,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Targets set from %s: %.0f kcal | P %.0fg | C %.0fg | F %.0fg\n",
				effective, targetSetCalories, targetSetProtein, targetSetCarbs, targetSetFat)
			return nil
		})
	},
}

var targetShowDate string

var targetShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show targets active on a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := targetShowDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.CurrentProfile(sqldb, date)
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No targets set on or before %s.\n", date)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Targets effective %s: %.0f kcal | P %.0fg | C %.0fg | F %.0fg\n",
				p.EffectiveDate, p.CalorieTarget, p.ProteinTargetG, p.CarbTargetG, p.FatTargetG)
			return nil
		})
	},
}

var targetHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List all target changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			profiles, err := service.ProfileHistory(sqldb)
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No targets set yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "EFFECTIVE\tKCAL\tP\tC\tF")
			for _, p := range profiles {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.0f\t%.0f\t%.0f\t%.0f\n",
					p.EffectiveDate, p.CalorieTarget, p.ProteinTargetG, p.CarbTargetG, p.FatTargetG)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(targetCmd)
	targetCmd.AddCommand(targetSetCmd, targetShowCmd, targetHistoryCmd)

	targetSetCmd.Flags().Float64Var(&targetSetCalories, "calories", 0, "Daily calorie target (0 = no goal)")
	targetSetCmd.Flags().Float64Var(&targetSetProtein, "protein", 0, "Daily protein target in g (0 = no goal)")
	targetSetCmd.Flags().Float64Var(&targetSetCarbs, "carbs", 0, "Daily carb target in g (0 = no goal)")
	targetSetCmd.Flags().Float64Var(&targetSetFat, "fat", 0, "Daily fat target in g (0 = no goal)")
	targetSetCmd.Flags().StringVar(&targetSetDate, "date", "", "Effective date YYYY-MM-DD (default today)")
	targetShowCmd.Flags().StringVar(&targetShowDate, "date", "", "Date YYYY-MM-DD (default today)")
}
