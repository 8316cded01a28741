package outwriter

import (
	"fmt"
	"io"

	"github.com/coursepulse/coursepulse/internal/contract"
	"github.com/coursepulse/coursepulse/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// thresholdRow pairs a threshold name with its active value and the rule
// it feeds.
type thresholdRow struct {
	name  string
	value string
	rule  string
}

// WriteThresholds outputs the active threshold table so operators can see
// the effective cutoffs after flags, env vars and config overrides.
func WriteThresholds(t schema.Thresholds, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	rows := []thresholdRow{
		{"min_commits_per_week", fmtFloat(t.MinCommitsPerWeek), "struggling, consistent"},
		{"inactivity_days", fmtFloat(t.InactivityDays), "inactive"},
		{"procrastination_threshold", fmtFloat(t.ProcrastinationThreshold), "procrastinating"},
		{"low_progress_threshold", fmtFloat(t.LowProgressThreshold), "declining, consistent"},
		{"decline_slope_min", fmtFloat(t.DeclineSlopeMin), "declining"},
		{"gap_cv_threshold", fmtFloat(t.GapCVThreshold), "struggling"},
		{"small_commit_median", fmtFloat(t.SmallCommitMedian), "struggling"},
		{"weekly_band_min", fmtFloat(t.WeeklyBandMin), "consistent"},
		{"weekly_band_max", fmtFloat(t.WeeklyBandMax), "consistent"},
		{"weekly_cv_max", fmtFloat(t.WeeklyCVMax), "consistent"},
		{"min_commits_assess", fmt.Sprintf(intFmt, t.MinCommitsAssess), "struggling, consistent"},
		{"high_share_threshold", fmtFloat(t.HighShareThreshold), "team imbalance"},
		{"low_share_threshold", fmtFloat(t.LowShareThreshold), "team imbalance"},
		{"share_commit_weight", fmtFloat(t.ShareCommitWeight), "team imbalance"},
		{"share_line_weight", fmtFloat(t.ShareLineWeight), "team imbalance"},
	}

	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, t)
		}, "Wrote JSON")
	}

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeThresholdTable(rows, w)
	}, "Wrote table")
}

func writeThresholdTable(rows []thresholdRow, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"Threshold", "Value", "Used by"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range rows {
		data = append(data, []string{r.name, r.value, r.rule})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
