package cmd

import (
	"github.com/coursepulse/coursepulse/internal/contract"
	"github.com/coursepulse/coursepulse/internal/outwriter"
	"github.com/spf13/cobra"
)

// thresholdsCmd prints the active rule thresholds.
var thresholdsCmd = &cobra.Command{
	Use:   "thresholds",
	Short: "Show the active rule thresholds after all overrides.",
	Long: `Display the effective threshold table the rule engine will use,
after defaults, config file, environment variables and flags are merged.

Useful for:
- Verifying which cutoffs a scheduled check job is running with
- Debugging why a student was (or was not) flagged
- Documenting course-specific tuning

Examples:
  # Show the active thresholds
  coursepulse thresholds

  # Show what a tuned run would use
  coursepulse thresholds --inactivity-days 10 --procrastination-threshold 0.5`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := outwriter.WriteThresholds(cfg.Thresholds, cfg); err != nil {
			contract.LogFatal("Cannot write thresholds", err)
		}
	},
}
