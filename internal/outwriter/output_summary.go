package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/coursepulse/coursepulse/internal/contract"
	"github.com/coursepulse/coursepulse/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteSummary outputs the course-level summary and the intervention
// ranking, dispatching on the configured output format.
func WriteSummary(report *schema.CourseReport, cfg *contract.Config, duration time.Duration) error {
	_, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePriorityCSV(w, report.Priority, intFmt)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryText(report, cfg, intFmt, duration, w)
		}, "Wrote summary")
	}
}

// writeSummaryText writes the headline numbers, pattern counts and the
// priority table.
func writeSummaryText(report *schema.CourseReport, cfg *contract.Config, intFmt string, duration time.Duration, writer io.Writer) error {
	s := report.Summary

	lines := []string{
		fmt.Sprintf("Course window: %s to %s",
			report.Window.Start.Format(contract.DateTimeFormat),
			report.Window.End.Format(contract.DateTimeFormat)),
		fmt.Sprintf("Students analyzed: %d", s.TotalStudents),
		fmt.Sprintf("Teams analyzed: %d", s.TotalTeams),
		fmt.Sprintf("Students needing attention: %d", s.NeedingAttention),
		fmt.Sprintf("Severity breakdown: high=%d medium=%d info=%d",
			s.SeverityBreakdown[schema.HighSeverity],
			s.SeverityBreakdown[schema.MediumSeverity],
			s.SeverityBreakdown[schema.InfoSeverity]),
		fmt.Sprintf("Events dropped at ingest: %d", report.DroppedEvents),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}

	if len(s.CommonPatterns) > 0 {
		if _, err := fmt.Fprintln(writer, "Most common patterns:"); err != nil {
			return err
		}
		for _, pc := range s.CommonPatterns {
			if _, err := fmt.Fprintf(writer, "  %s: %d\n", pc.Kind, pc.Count); err != nil {
				return err
			}
		}
	}

	if len(report.Priority) > 0 {
		if _, err := fmt.Fprintln(writer, "Priority interventions:"); err != nil {
			return err
		}
		if err := writePriorityTable(report.Priority, cfg, intFmt, writer); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Analysis completed in %v with %d workers. Store backend: %s\n",
		duration, cfg.Workers, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

func writePriorityTable(entries []schema.PriorityEntry, cfg *contract.Config, intFmt string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"Rank", "Student", "Concern", "Label", "Rules", "Recommendation"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxTextWidth := getMaxTableTextWidth(cfg, 50)
	var data [][]string
	for _, e := range entries {
		data = append(data, []string{
			fmt.Sprintf(intFmt, e.Rank),
			e.Author,
			string(e.PrimaryConcern),
			severityLabel(cfg, e.PrimaryConcern, e.Severity),
			fmt.Sprintf(intFmt, e.MatchCount),
			contract.TruncateText(e.Recommendation, maxTextWidth),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writePriorityCSV writes the intervention ranking as CSV records.
func writePriorityCSV(w io.Writer, entries []schema.PriorityEntry, intFmt string) error {
	header := []string{
		"rank",
		"author",
		"repository",
		"severity",
		"match_count",
		"primary_concern",
		"recommendation",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, e := range entries {
			rec := []string{
				fmt.Sprintf(intFmt, e.Rank),
				e.Author,
				e.Repository,
				string(e.Severity),
				fmt.Sprintf(intFmt, e.MatchCount),
				string(e.PrimaryConcern),
				e.Recommendation,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
