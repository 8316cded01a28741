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

// WriteTeamReports outputs team contribution reports, dispatching on the
// configured output format.
func WriteTeamReports(report *schema.CourseReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report.Teams)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTeamCSV(w, report.Teams, fmtFloat, intFmt)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTeamTable(report, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
}

// writeTeamTable writes one row per team member so imbalances are visible
// at a glance.
func writeTeamTable(report *schema.CourseReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Team", "Member", "Commits", "Lines", "Share", "Flag"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	flaggedTeams := 0
	var data [][]string
	for _, t := range report.Teams {
		if len(t.Flags) > 0 {
			flaggedTeams++
		}
		flagByAuthor := make(map[string]schema.FlagKind, len(t.Flags))
		for _, f := range t.Flags {
			flagByAuthor[f.Author] = f.Kind
		}
		for _, m := range t.Members {
			flag := ""
			if kind, ok := flagByAuthor[m.Author]; ok {
				flag = string(kind)
			}
			data = append(data, []string{
				t.TeamID,
				m.Author,
				fmt.Sprintf(intFmt, m.Commits),
				fmt.Sprintf(intFmt, m.Lines),
				fmtFloat(m.Share),
				flag,
			})
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Analyzed %d teams (%d with imbalance flags)\n", len(report.Teams), flaggedTeams); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v with %d workers. Store backend: %s\n",
		duration, cfg.Workers, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeTeamCSV writes one record per team member.
func writeTeamCSV(w io.Writer, teams []schema.TeamReport, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"team",
		"repository",
		"member",
		"commits",
		"lines",
		"commit_share",
		"line_share",
		"contribution_share",
		"flag",
		"recommendation",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, t := range teams {
			flagByAuthor := make(map[string]schema.FlagKind, len(t.Flags))
			for _, f := range t.Flags {
				flagByAuthor[f.Author] = f.Kind
			}
			for _, m := range t.Members {
				rec := []string{
					t.TeamID,
					t.Repository,
					m.Author,
					fmt.Sprintf(intFmt, m.Commits),
					fmt.Sprintf(intFmt, m.Lines),
					fmtFloat(m.CommitShare),
					fmtFloat(m.LineShare),
					fmtFloat(m.Share),
					string(flagByAuthor[m.Author]),
					t.Recommendation,
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
