package resultstore

import (
	"time"

	"github.com/coursepulse/coursepulse/internal/contract"
	"github.com/coursepulse/coursepulse/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetResultStore implements the StoreManager interface.
func (m *MockStoreManager) GetResultStore() contract.ResultStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.ResultStore)
	return store
}

// MockResultStore is a mock implementation of ResultStore for testing.
type MockResultStore struct {
	mock.Mock
}

var _ contract.ResultStore = &MockResultStore{} // Compile-time check

// BeginRun implements the ResultStore interface.
func (m *MockResultStore) BeginRun(startTime time.Time, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the ResultStore interface.
func (m *MockResultStore) EndRun(runID int64, endTime time.Time, totalStudents, totalTeams int) error {
	args := m.Called(runID, endTime, totalStudents, totalTeams)
	return args.Error(0)
}

// RecordStudent implements the ResultStore interface.
func (m *MockResultStore) RecordStudent(runID int64, result schema.ClassificationResult) error {
	args := m.Called(runID, result)
	return args.Error(0)
}

// RecordTeam implements the ResultStore interface.
func (m *MockResultStore) RecordTeam(runID int64, report schema.TeamReport) error {
	args := m.Called(runID, report)
	return args.Error(0)
}

// GetAllRuns implements the ResultStore interface.
func (m *MockResultStore) GetAllRuns() ([]schema.RunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.RunRecord)
	return runs, args.Error(1)
}

// GetAllStudents implements the ResultStore interface.
func (m *MockResultStore) GetAllStudents() ([]schema.StudentRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.StudentRecord)
	return records, args.Error(1)
}

// GetAllTeams implements the ResultStore interface.
func (m *MockResultStore) GetAllTeams() ([]schema.TeamRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.TeamRecord)
	return records, args.Error(1)
}

// GetStatus implements the ResultStore interface.
func (m *MockResultStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Clear implements the ResultStore interface.
func (m *MockResultStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close implements the ResultStore interface.
func (m *MockResultStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
