// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/coursepulse/coursepulse/schema"
)

// EventSource defines the boundary to whatever collaborator supplies commit
// events (dataset files today, a hosting provider API tomorrow). The engine
// only ever sees already-filtered, well-typed events through it.
type EventSource interface {
	// LoadCourse reads and validates a course dataset. Malformed events are
	// dropped and counted, never returned as errors.
	LoadCourse(ctx context.Context, path string) (*schema.CourseData, error)
}

// ResultStore defines the interface for tracking analysis runs and
// persisting classification outcomes. This allows the store layer to be
// mocked for testing.
type ResultStore interface {
	// BeginRun creates a new analysis run and returns its unique ID.
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data.
	EndRun(runID int64, endTime time.Time, totalStudents, totalTeams int) error

	// RecordStudent stores one classification result.
	RecordStudent(runID int64, result schema.ClassificationResult) error

	// RecordTeam stores one team report.
	RecordTeam(runID int64, report schema.TeamReport) error

	// GetAllRuns returns every tracked run.
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllStudents returns every persisted classification record.
	GetAllStudents() ([]schema.StudentRecord, error)

	// GetAllTeams returns every persisted team record.
	GetAllTeams() ([]schema.TeamRecord, error)

	// GetStatus returns status information about the store.
	GetStatus() (schema.StoreStatus, error)

	// Clear removes all persisted rows.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}

// StoreManager exposes the process-wide result store. It exists so the
// command layer and the MCP server share one initialization path and so
// tests can swap in a mock.
type StoreManager interface {
	GetResultStore() ResultStore
}
