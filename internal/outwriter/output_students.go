package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/coursepulse/coursepulse/internal/contract"
	"github.com/coursepulse/coursepulse/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteStudentResults outputs per-student classifications, dispatching on
// the configured output format.
func WriteStudentResults(report *schema.CourseReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report.Students)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStudentCSV(w, report.Students, fmtFloat, intFmt)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStudentTable(report, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
}

// writeStudentTable generates and writes the human-readable table.
func writeStudentTable(report *schema.CourseReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Student", "Pattern", "Label", "Commits"}
	if cfg.Detail {
		headers = append(headers, "ActiveWk", "MaxGap", "Third3", "MsgQ")
	}
	if cfg.Explain {
		headers = append(headers, "Evidence")
	}
	table.Header(headers)

	// 2. Right-align numeric columns to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxTextWidth := getMaxTableTextWidth(cfg, 60)
	var data [][]string
	for _, r := range report.Students {
		row := []string{
			r.Author,
			string(r.Primary),
			severityLabel(cfg, r.Primary, r.Severity),
			fmt.Sprintf(intFmt, r.TotalCommits),
		}
		if cfg.Detail {
			row = append(
				row,
				fmtFloat(r.Features.ActiveWeekFraction), // ActiveWk
				fmtFloat(r.Features.MaxGapDays),         // MaxGap
				fmtFloat(r.Features.ThirdFractions[2]),  // Third3
				fmtFloat(r.Features.MessageQuality),     // MsgQ
			)
		}
		if cfg.Explain {
			row = append(row, contract.TruncateText(formatMatches(r.Matches), maxTextWidth))
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Analyzed %d students (%d needing attention, %d events dropped at ingest)\n",
		report.Summary.TotalStudents, report.Summary.NeedingAttention, report.DroppedEvents); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v with %d workers. Store backend: %s\n",
		duration, cfg.Workers, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeStudentCSV writes the classification results in CSV format.
func writeStudentCSV(w io.Writer, students []schema.ClassificationResult, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"student",
		"repository",
		"primary_pattern",
		"severity",
		"total_commits",
		"match_count",
		"max_gap_days",
		"active_week_fraction",
		"third3_fraction",
		"message_quality",
		"recommendation",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range students {
			rec := []string{
				r.Author,
				r.Repository,
				string(r.Primary),
				string(r.Severity),
				fmt.Sprintf(intFmt, r.TotalCommits),
				strconv.Itoa(len(r.Matches)),
				fmtFloat(r.Features.MaxGapDays),
				fmtFloat(r.Features.ActiveWeekFraction),
				fmtFloat(r.Features.ThirdFractions[2]),
				fmtFloat(r.Features.MessageQuality),
				r.Recommendation,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// formatMatches flattens match descriptions for the explain column.
func formatMatches(matches []schema.PatternMatch) string {
	if len(matches) == 0 {
		return "no rule fired"
	}
	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		parts = append(parts, fmt.Sprintf("%s: %s", m.Kind, m.Description))
	}
	return strings.Join(parts, "; ")
}
