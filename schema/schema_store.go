package schema

import "time"

// RunRecord describes one tracked analysis run in the result store.
type RunRecord struct {
	RunID         int64      `json:"run_id"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	TotalStudents int        `json:"total_students"`
	TotalTeams    int        `json:"total_teams"`
	ConfigParams  string     `json:"config_params"`
}

// StudentRecord is one persisted classification outcome.
type StudentRecord struct {
	RunID          int64     `json:"run_id"`
	Author         string    `json:"author_id"`
	Repository     string    `json:"repository"`
	RecordedAt     time.Time `json:"recorded_at"`
	TotalCommits   int       `json:"total_commits"`
	PrimaryPattern string    `json:"primary_pattern"`
	Severity       string    `json:"severity"`
	MatchCount     int       `json:"match_count"`
	MaxGapDays     float64   `json:"max_gap_days"`
	ActiveWeeks    float64   `json:"active_week_fraction"`
	ThirdFraction  float64   `json:"third3_fraction"`
	MatchesJSON    string    `json:"matches_json"`
}

// TeamRecord is one persisted team contribution report.
type TeamRecord struct {
	RunID        int64     `json:"run_id"`
	TeamID       string    `json:"team_id"`
	Repository   string    `json:"repository"`
	RecordedAt   time.Time `json:"recorded_at"`
	MemberCount  int       `json:"member_count"`
	TotalCommits int       `json:"total_commits"`
	FlagCount    int       `json:"flag_count"`
	SharesJSON   string    `json:"shares_json"`
}

// StoreStatus reports result store health and row counts per table.
type StoreStatus struct {
	Backend    StoreBackend   `json:"backend"`
	Location   string         `json:"location"`
	TotalRuns  int            `json:"total_runs"`
	TableSizes map[string]int `json:"table_sizes"`
}
