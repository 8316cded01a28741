// Package parquet provides data structures and functions for exporting
// course analysis data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/coursepulse/coursepulse/schema"
	"github.com/parquet-go/parquet-go"
)

// AnalysisRun represents a single course analysis run with metadata.
// This struct maps to the coursepulse_runs database table.
type AnalysisRun struct {
	// RunID is the unique identifier for this analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the analysis began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the analysis completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// TotalStudents is the number of students analyzed in this run
	TotalStudents int32 `parquet:"total_students,snappy"`

	// TotalTeams is the number of teams analyzed in this run
	TotalTeams int32 `parquet:"total_teams,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// StudentResult represents the classification outcome for a single student.
// This struct maps to the coursepulse_students database table.
type StudentResult struct {
	// RunID references the parent analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// Author is the student identifier
	Author string `parquet:"author_id,snappy"`

	// Repository is the repository the commits came from
	Repository string `parquet:"repository,snappy"`

	// RecordedAt is when this result was persisted (stored as TIMESTAMP with nanosecond precision)
	RecordedAt time.Time `parquet:"recorded_at,snappy"`

	// TotalCommits is the number of in-window commits for this student
	TotalCommits int32 `parquet:"total_commits,snappy"`

	// PrimaryPattern is the highest-priority matched pattern
	PrimaryPattern string `parquet:"primary_pattern,snappy"`

	// Severity is the severity of the primary pattern
	Severity string `parquet:"severity,snappy"`

	// MatchCount is the number of rules that fired
	MatchCount int32 `parquet:"match_count,snappy"`

	// MaxGapDays is the longest inactivity gap in days
	MaxGapDays float64 `parquet:"max_gap_days,snappy"`

	// ActiveWeekFraction is the fraction of course weeks with activity
	ActiveWeekFraction float64 `parquet:"active_week_fraction,snappy"`

	// ThirdFraction is the fraction of commits in the final course third
	ThirdFraction float64 `parquet:"third3_fraction,snappy"`

	// MatchesJSON contains the JSON-encoded rule matches (nullable)
	MatchesJSON *string `parquet:"matches_json,optional,snappy"`
}

// TeamResult represents the contribution report for a single team.
// This struct maps to the coursepulse_teams database table.
type TeamResult struct {
	// RunID references the parent analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// TeamID is the team identifier
	TeamID string `parquet:"team_id,snappy"`

	// Repository is the shared repository the commits came from
	Repository string `parquet:"repository,snappy"`

	// RecordedAt is when this result was persisted (stored as TIMESTAMP with nanosecond precision)
	RecordedAt time.Time `parquet:"recorded_at,snappy"`

	// MemberCount is the size of the team roster
	MemberCount int32 `parquet:"member_count,snappy"`

	// TotalCommits is the number of in-window commits across all members
	TotalCommits int32 `parquet:"total_commits,snappy"`

	// FlagCount is the number of imbalance flags raised
	FlagCount int32 `parquet:"flag_count,snappy"`

	// SharesJSON contains the JSON-encoded per-member shares (nullable)
	SharesJSON *string `parquet:"shares_json,optional,snappy"`
}

// WriteAnalysisRunsParquet writes a slice of AnalysisRun structs to a Parquet file.
func WriteAnalysisRunsParquet(data []AnalysisRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the AnalysisRun struct tags
	writer := parquet.NewGenericWriter[AnalysisRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteStudentResultsParquet writes a slice of StudentResult structs to a Parquet file.
func WriteStudentResultsParquet(data []StudentResult, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[StudentResult](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteTeamResultsParquet writes a slice of TeamResult structs to a Parquet file.
func WriteTeamResultsParquet(data []TeamResult, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[TeamResult](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts schema.RunRecord to AnalysisRun for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []AnalysisRun {
	result := make([]AnalysisRun, len(records))
	for i, record := range records {
		run := AnalysisRun{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			TotalStudents: int32(record.TotalStudents),
			TotalTeams:    int32(record.TotalTeams),
		}
		if record.ConfigParams != "" {
			params := record.ConfigParams
			run.ConfigParams = &params
		}
		result[i] = run
	}
	return result
}

// ConvertStudentRecords converts schema.StudentRecord to StudentResult for Parquet export.
func ConvertStudentRecords(records []schema.StudentRecord) []StudentResult {
	result := make([]StudentResult, len(records))
	for i, record := range records {
		sr := StudentResult{
			RunID:              record.RunID,
			Author:             record.Author,
			Repository:         record.Repository,
			RecordedAt:         record.RecordedAt,
			TotalCommits:       int32(record.TotalCommits),
			PrimaryPattern:     record.PrimaryPattern,
			Severity:           record.Severity,
			MatchCount:         int32(record.MatchCount),
			MaxGapDays:         record.MaxGapDays,
			ActiveWeekFraction: record.ActiveWeeks,
			ThirdFraction:      record.ThirdFraction,
		}
		if record.MatchesJSON != "" {
			matches := record.MatchesJSON
			sr.MatchesJSON = &matches
		}
		result[i] = sr
	}
	return result
}

// ConvertTeamRecords converts schema.TeamRecord to TeamResult for Parquet export.
func ConvertTeamRecords(records []schema.TeamRecord) []TeamResult {
	result := make([]TeamResult, len(records))
	for i, record := range records {
		tr := TeamResult{
			RunID:        record.RunID,
			TeamID:       record.TeamID,
			Repository:   record.Repository,
			RecordedAt:   record.RecordedAt,
			MemberCount:  int32(record.MemberCount),
			TotalCommits: int32(record.TotalCommits),
			FlagCount:    int32(record.FlagCount),
		}
		if record.SharesJSON != "" {
			shares := record.SharesJSON
			tr.SharesJSON = &shares
		}
		result[i] = tr
	}
	return result
}
