package cmd

import (
	"github.com/coursepulse/coursepulse/core"
	"github.com/coursepulse/coursepulse/internal/contract"
	"github.com/spf13/cobra"
)

// summaryCmd prints the course-level rollup.
var summaryCmd = &cobra.Command{
	Use:   "summary [dataset-path]",
	Short: "Summarize a course and rank students needing intervention.",
	Long: `Run the full course analysis and print the headline numbers:
severity breakdown, most common patterns, and a ranked list of students
who most need an instructor's attention.

The priority ranking orders students by severity first, then by how many
concern rules fired, so the most urgent cases always surface at the top.

Examples:
  # Summarize a course
  coursepulse summary course.json

  # Keep only the top 10 interventions
  coursepulse summary course.json --limit 10

  # Full report as JSON for downstream tooling
  coursepulse summary course.json --output json --output-file report.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(rootCtx, cfg, eventSource, storeManager); err != nil {
			contract.LogFatal("Cannot run course summary", err)
		}
	},
}
