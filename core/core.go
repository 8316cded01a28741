// Package core has core logic for timelines, features, classification and reporting.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coursepulse/coursepulse/internal/contract"
	"github.com/coursepulse/coursepulse/internal/outwriter"
	"github.com/coursepulse/coursepulse/schema"
)

// GetCourseReport loads the dataset and runs the full course analysis.
// It is shared by the CLI commands and the MCP tool handlers.
func GetCourseReport(ctx context.Context, cfg *contract.Config, source contract.EventSource, mgr contract.StoreManager) (*schema.CourseReport, error) {
	if cfg.DatasetPath == "" {
		return nil, errors.New("dataset path is required")
	}
	data, err := source.LoadCourse(ctx, cfg.DatasetPath)
	if err != nil {
		return nil, err
	}
	return AnalyzeCourse(ctx, cfg, data, mgr)
}

// ExecuteStudents runs the analysis and prints per-student classifications.
// It serves as the main entry point for the 'students' command.
func ExecuteStudents(ctx context.Context, cfg *contract.Config, source contract.EventSource, mgr contract.StoreManager) error {
	start := time.Now()
	report, err := GetCourseReport(ctx, cfg, source, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteStudentResults(report, cfg, time.Since(start))
}

// ExecuteTeams runs the analysis and prints team contribution reports.
func ExecuteTeams(ctx context.Context, cfg *contract.Config, source contract.EventSource, mgr contract.StoreManager) error {
	start := time.Now()
	report, err := GetCourseReport(ctx, cfg, source, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteTeamReports(report, cfg, time.Since(start))
}

// ExecuteSummary runs the analysis and prints the course summary together
// with the priority intervention ranking.
func ExecuteSummary(ctx context.Context, cfg *contract.Config, source contract.EventSource, mgr contract.StoreManager) error {
	start := time.Now()
	report, err := GetCourseReport(ctx, cfg, source, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteSummary(report, cfg, time.Since(start))
}

// ExecuteCheck runs the analysis and enforces the high-severity gate.
// It fails with a non-zero exit when more students are in the high tier
// than cfg.MaxHighSeverity allows, which makes it usable as a periodic
// alerting job.
func ExecuteCheck(ctx context.Context, cfg *contract.Config, source contract.EventSource, mgr contract.StoreManager) error {
	report, err := GetCourseReport(ctx, cfg, source, mgr)
	if err != nil {
		return err
	}

	high := report.Summary.SeverityBreakdown[schema.HighSeverity]
	if high > cfg.MaxHighSeverity {
		return fmt.Errorf("check failed: %d students at high severity (allowed %d)", high, cfg.MaxHighSeverity)
	}

	fmt.Printf("Check passed: %d/%d students at high severity, %d needing attention overall\n",
		high, cfg.MaxHighSeverity, report.Summary.NeedingAttention)
	return nil
}
