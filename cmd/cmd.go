// Package cmd defines the command-line interface for coursepulse.
package cmd

import (
	"github.com/coursepulse/coursepulse/internal/contract"
	"github.com/coursepulse/coursepulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(studentsCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(thresholdsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(storeCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeExportCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("course-start", "", "Course start date (RFC3339 or YYYY-MM-DD); overrides the dataset window")
	rootCmd.PersistentFlags().String("course-end", "", "Course end date (RFC3339 or YYYY-MM-DD); overrides the dataset window")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of priority interventions to display")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-student feature columns (active weeks, max gap, message quality)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Result store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().Float64("min-commits-per-week", schema.DefaultMinCommitsPerWeek, "Expected healthy weekly commit cadence")
	rootCmd.PersistentFlags().Float64("inactivity-days", schema.DefaultInactivityDays, "Gap length in days that triggers the inactive pattern")
	rootCmd.PersistentFlags().Float64("procrastination-threshold", schema.DefaultProcrastinationThreshold, "Final-third commit fraction that triggers procrastinating")
	rootCmd.PersistentFlags().Float64("low-progress-threshold", schema.DefaultLowProgressThreshold, "Minimum active-week fraction to count as engaged")
	rootCmd.PersistentFlags().Float64("high-share-threshold", schema.DefaultHighShareThreshold, "Contribution share at or above which a member is flagged dominant")
	rootCmd.PersistentFlags().Float64("low-share-threshold", schema.DefaultLowShareThreshold, "Contribution share at or below which a member is flagged low")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of studentsCmd to Viper
	studentsCmd.Flags().Bool("explain", false, "Print per-student rule evidence")
	if err := viper.BindPFlags(studentsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding students flags", err)
	}

	// Bind all flags of checkCmd to Viper
	checkCmd.Flags().Int("max-high", 0, "Maximum number of high-severity students before the check fails")
	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		contract.LogFatal("Error binding check flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
