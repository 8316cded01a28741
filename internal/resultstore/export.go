package resultstore

import (
	"errors"
	"fmt"

	"github.com/coursepulse/coursepulse/internal/parquet"
)

// ExecuteExport exports all persisted analysis data to Parquet files.
func ExecuteExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the result store
	store := Manager.GetResultStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no analysis data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total analysis runs: %d\n", status.TotalRuns)
	fmt.Printf("Total student records: %d\n", status.TableSizes[studentsTable])
	fmt.Printf("Total team records: %d\n", status.TableSizes[teamsTable])

	// Retrieve all runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	// Retrieve all student results
	students, err := store.GetAllStudents()
	if err != nil {
		return fmt.Errorf("failed to retrieve student results: %w", err)
	}

	// Retrieve all team results
	teams, err := store.GetAllTeams()
	if err != nil {
		return fmt.Errorf("failed to retrieve team results: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetStudents := parquet.ConvertStudentRecords(students)
	parquetTeams := parquet.ConvertTeamRecords(teams)

	// Write runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteAnalysisRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	// Write student results to Parquet
	studentsFile := outputFile + ".students.parquet"
	if err := parquet.WriteStudentResultsParquet(parquetStudents, studentsFile); err != nil {
		return fmt.Errorf("failed to write student results: %w", err)
	}
	fmt.Printf("Exported %d student records to: %s\n", len(parquetStudents), studentsFile)

	// Write team results to Parquet
	teamsFile := outputFile + ".teams.parquet"
	if err := parquet.WriteTeamResultsParquet(parquetTeams, teamsFile); err != nil {
		return fmt.Errorf("failed to write team results: %w", err)
	}
	fmt.Printf("Exported %d team records to: %s\n", len(parquetTeams), teamsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
