package cmd

import (
	"github.com/coursepulse/coursepulse/core"
	"github.com/coursepulse/coursepulse/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd focused on automated monitoring enforcement.
var checkCmd = &cobra.Command{
	Use:   "check [dataset-path]",
	Short: "Enforce a high-severity budget (fails on violations)",
	Long: `Analyze the course and fail with a non-zero exit code when more
students are at high severity than the configured budget allows.

Designed for scheduled jobs and course dashboards - run it nightly against
the latest dataset export and alert when the exit code is non-zero.

Examples:
  # Fail if any student is at high severity
  coursepulse check course.json

  # Tolerate up to three high-severity students
  coursepulse check course.json --max-high 3`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCheck(rootCtx, cfg, eventSource, storeManager); err != nil {
			contract.LogFatal("Course check failed", err)
		}
	},
}
