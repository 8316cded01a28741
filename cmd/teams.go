package cmd

import (
	"github.com/coursepulse/coursepulse/core"
	"github.com/coursepulse/coursepulse/internal/contract"
	"github.com/spf13/cobra"
)

// teamsCmd performs team contribution analysis.
var teamsCmd = &cobra.Command{
	Use:   "teams [dataset-path]",
	Short: "Analyze team repositories for contribution imbalance.",
	Long: `Compute per-member contribution shares for each team repository and
flag members whose share crosses the configured bounds.

Each member's share blends their commit-count share and changed-line share.
Members at or above the high threshold are flagged as dominant contributors;
members at or below the low threshold are flagged as low contributors.
Teams with fewer than two members, or with no activity at all, are never
flagged.

Examples:
  # Analyze team repositories
  coursepulse teams course.json

  # Tighten the imbalance bounds
  coursepulse teams course.json --high-share-threshold 0.5 --low-share-threshold 0.15

  # Export member shares
  coursepulse teams course.json --output csv --output-file teams.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTeams(rootCtx, cfg, eventSource, storeManager); err != nil {
			contract.LogFatal("Cannot run team analysis", err)
		}
	},
}
