package cmd

import (
	"github.com/coursepulse/coursepulse/core"
	"github.com/coursepulse/coursepulse/internal/contract"
	"github.com/spf13/cobra"
)

// studentsCmd performs per-student pattern classification.
var studentsCmd = &cobra.Command{
	Use:   "students [dataset-path]",
	Short: "Classify each student's commit history into behavioral patterns.",
	Long: `Analyze individual commit histories and classify each student into
behavioral patterns with severity and a recommendation.

Patterns detected:
- consistent      - steady cadence, regular activity across the course
- inactive        - a long gap with no commits at all
- procrastinating - most commits crammed into the final course third
- declining       - engagement that starts strong and trends downward
- struggling      - many small erratic commits with irregular gaps

A student with too few commits to assess is reported as insufficient_data
rather than forced into a pattern.

Examples:
  # Classify a course dataset
  coursepulse students course.json

  # Include detailed feature columns
  coursepulse students course.json --detail

  # Show which rules fired and their evidence
  coursepulse students course.json --explain

  # Export for tracking
  coursepulse students course.json --output csv --output-file results.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStudents(rootCtx, cfg, eventSource, storeManager); err != nil {
			contract.LogFatal("Cannot run student analysis", err)
		}
	},
}
