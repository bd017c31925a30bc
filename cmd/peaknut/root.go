package peaknut

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "peaknut",
	Short: "peaknut tracks nutrition logs and computes historical goal analytics",
	Long:  "peaknut is a local-first nutrition tracker: log meals, set macro targets, and analyze streaks, consistency, trends, and weekday patterns over any date range.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (default $PEAKNUT_DB, then the user config dir)")
}
