package contract

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/coursepulse/coursepulse/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 2
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// dateOnlyFormat accepts bare course dates like 2026-01-15.
const dateOnlyFormat = "2006-01-02"

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// Config holds the validated, final runtime configuration. It is built once
// by ProcessAndValidate and treated as read-only by every component.
type Config struct {
	DatasetPath string
	Window      schema.CourseWindow // zero values mean "take from dataset"
	ResultLimit int
	Workers     int
	Output      schema.OutputMode
	OutputFile  string
	Precision   int
	Detail      bool
	Explain     bool
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool

	Thresholds schema.Thresholds

	StoreBackend   schema.StoreBackend
	StoreDBConnect string // Please use env var as this is plaintext

	// MaxHighSeverity is the check-command gate: more high-severity
	// students than this fails the run.
	MaxHighSeverity int
}

// TuningRawInput holds the advanced rule cutoffs from the YAML config file.
// Pointers distinguish "absent" from explicit zero.
type TuningRawInput struct {
	DeclineSlopeMin   *float64 `mapstructure:"decline_slope_min"`
	GapCVThreshold    *float64 `mapstructure:"gap_cv_threshold"`
	SmallCommitMedian *float64 `mapstructure:"small_commit_median"`
	WeeklyBandMin     *float64 `mapstructure:"weekly_band_min"`
	WeeklyBandMax     *float64 `mapstructure:"weekly_band_max"`
	WeeklyCVMax       *float64 `mapstructure:"weekly_cv_max"`
	MinCommitsAssess  *int     `mapstructure:"min_commits_assess"`
	ShareCommitWeight *float64 `mapstructure:"share_commit_weight"`
	ShareLineWeight   *float64 `mapstructure:"share_line_weight"`
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DatasetPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	CourseStart    string `mapstructure:"course-start"`
	CourseEnd      string `mapstructure:"course-end"`
	Limit          int    `mapstructure:"limit"`
	Workers        int    `mapstructure:"workers"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Precision      int    `mapstructure:"precision"`
	Detail         bool   `mapstructure:"detail"`
	Explain        bool   `mapstructure:"explain"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`

	// --- Threshold flags (also settable via env and config file) ---
	MinCommitsPerWeek        float64 `mapstructure:"min-commits-per-week"`
	InactivityDays           float64 `mapstructure:"inactivity-days"`
	ProcrastinationThreshold float64 `mapstructure:"procrastination-threshold"`
	LowProgressThreshold     float64 `mapstructure:"low-progress-threshold"`
	HighShareThreshold       float64 `mapstructure:"high-share-threshold"`
	LowShareThreshold        float64 `mapstructure:"low-share-threshold"`

	// --- Fields from checkCmd.Flags() ---
	MaxHighSeverity int `mapstructure:"max-high"`

	// --- Advanced tuning from config file ---
	Tuning TuningRawInput `mapstructure:"tuning"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config. Invalid configuration fails here, before
// any classification begins, and is never partially applied.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 1 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	// --- 4. Course Window Parsing ---
	if input.CourseStart != "" {
		t, err := parseCourseDate(input.CourseStart)
		if err != nil {
			return fmt.Errorf("invalid course start date: %w", err)
		}
		cfg.Window.Start = t
	}
	if input.CourseEnd != "" {
		t, err := parseCourseDate(input.CourseEnd)
		if err != nil {
			return fmt.Errorf("invalid course end date: %w", err)
		}
		cfg.Window.End = t
	}
	if !cfg.Window.Start.IsZero() && !cfg.Window.End.IsZero() && !cfg.Window.Valid() {
		return fmt.Errorf("course start %s must be before course end %s",
			cfg.Window.Start.Format(DateTimeFormat), cfg.Window.End.Format(DateTimeFormat))
	}

	// --- 5. Threshold Assembly and Validation ---
	cfg.Thresholds = buildThresholds(input)
	if err := ValidateThresholds(cfg.Thresholds); err != nil {
		return err
	}

	// --- 6. Store Backend Validation ---
	backend := schema.StoreBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidStoreBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, or none", input.StoreBackend)
	}
	if err := ValidateStoreConnectionString(backend, input.StoreDBConnect); err != nil {
		return err
	}
	cfg.StoreBackend = backend
	cfg.StoreDBConnect = input.StoreDBConnect

	// --- 7. Check Gate ---
	if input.MaxHighSeverity < 0 {
		return fmt.Errorf("max-high cannot be negative (received %d)", input.MaxHighSeverity)
	}
	cfg.MaxHighSeverity = input.MaxHighSeverity

	// --- 8. Dataset Path ---
	if input.DatasetPathStr != "" {
		if _, err := os.Stat(input.DatasetPathStr); err != nil {
			return fmt.Errorf("dataset path %q is not readable: %w", input.DatasetPathStr, err)
		}
		cfg.DatasetPath = input.DatasetPathStr
	}

	return nil
}

// ValidateStoreConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateStoreConnectionString(backend schema.StoreBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.HasPrefix(connStr, "postgres://") && !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must be a postgres:// URL or contain 'host=' parameter")
		}
	}
	return nil
}

// RevalidateWindow re-parses window overrides supplied at call time, after
// the base Config has already been validated. The MCP tool handlers use it
// for per-request overrides.
func RevalidateWindow(cfg *Config, startStr, endStr string) error {
	if startStr != "" {
		t, err := parseCourseDate(startStr)
		if err != nil {
			return fmt.Errorf("invalid course start date: %w", err)
		}
		cfg.Window.Start = t
	}
	if endStr != "" {
		t, err := parseCourseDate(endStr)
		if err != nil {
			return fmt.Errorf("invalid course end date: %w", err)
		}
		cfg.Window.End = t
	}
	if !cfg.Window.Start.IsZero() && !cfg.Window.End.IsZero() && !cfg.Window.Valid() {
		return fmt.Errorf("course start %s must be before course end %s",
			cfg.Window.Start.Format(DateTimeFormat), cfg.Window.End.Format(DateTimeFormat))
	}
	return nil
}

// buildThresholds starts from the defaults, applies the flag-level
// thresholds and finally the config-file tuning overrides.
func buildThresholds(input *ConfigRawInput) schema.Thresholds {
	t := schema.DefaultThresholds()

	t.MinCommitsPerWeek = input.MinCommitsPerWeek
	t.InactivityDays = input.InactivityDays
	t.ProcrastinationThreshold = input.ProcrastinationThreshold
	t.LowProgressThreshold = input.LowProgressThreshold
	t.HighShareThreshold = input.HighShareThreshold
	t.LowShareThreshold = input.LowShareThreshold

	// Keep the consistent band anchored to the configured cadence unless
	// the tuning section pins it explicitly.
	t.WeeklyBandMin = t.MinCommitsPerWeek
	t.WeeklyBandMax = 5 * t.MinCommitsPerWeek

	tune := input.Tuning
	if tune.DeclineSlopeMin != nil {
		t.DeclineSlopeMin = *tune.DeclineSlopeMin
	}
	if tune.GapCVThreshold != nil {
		t.GapCVThreshold = *tune.GapCVThreshold
	}
	if tune.SmallCommitMedian != nil {
		t.SmallCommitMedian = *tune.SmallCommitMedian
	}
	if tune.WeeklyBandMin != nil {
		t.WeeklyBandMin = *tune.WeeklyBandMin
	}
	if tune.WeeklyBandMax != nil {
		t.WeeklyBandMax = *tune.WeeklyBandMax
	}
	if tune.WeeklyCVMax != nil {
		t.WeeklyCVMax = *tune.WeeklyCVMax
	}
	if tune.MinCommitsAssess != nil {
		t.MinCommitsAssess = *tune.MinCommitsAssess
	}
	if tune.ShareCommitWeight != nil {
		t.ShareCommitWeight = *tune.ShareCommitWeight
	}
	if tune.ShareLineWeight != nil {
		t.ShareLineWeight = *tune.ShareLineWeight
	}

	return t
}

// ValidateThresholds rejects any threshold outside its valid domain.
func ValidateThresholds(t schema.Thresholds) error {
	fractions := []struct {
		name  string
		value float64
	}{
		{"procrastination_threshold", t.ProcrastinationThreshold},
		{"low_progress_threshold", t.LowProgressThreshold},
		{"high_share_threshold", t.HighShareThreshold},
		{"low_share_threshold", t.LowShareThreshold},
		{"share_commit_weight", t.ShareCommitWeight},
		{"share_line_weight", t.ShareLineWeight},
	}
	for _, f := range fractions {
		if f.value < 0 || f.value > 1 {
			return fmt.Errorf("%s must be within [0,1] (received %g)", f.name, f.value)
		}
	}

	positives := []struct {
		name  string
		value float64
	}{
		{"min_commits_per_week", t.MinCommitsPerWeek},
		{"inactivity_days", t.InactivityDays},
	}
	for _, p := range positives {
		if p.value <= 0 {
			return fmt.Errorf("%s must be greater than 0 (received %g)", p.name, p.value)
		}
	}

	nonNegatives := []struct {
		name  string
		value float64
	}{
		{"decline_slope_min", t.DeclineSlopeMin},
		{"gap_cv_threshold", t.GapCVThreshold},
		{"small_commit_median", t.SmallCommitMedian},
		{"weekly_band_min", t.WeeklyBandMin},
		{"weekly_cv_max", t.WeeklyCVMax},
	}
	for _, n := range nonNegatives {
		if n.value < 0 {
			return fmt.Errorf("%s cannot be negative (received %g)", n.name, n.value)
		}
	}

	if t.WeeklyBandMax < t.WeeklyBandMin {
		return fmt.Errorf("weekly_band_max (%g) cannot be below weekly_band_min (%g)", t.WeeklyBandMax, t.WeeklyBandMin)
	}
	if t.MinCommitsAssess < 0 {
		return fmt.Errorf("min_commits_assess cannot be negative (received %d)", t.MinCommitsAssess)
	}
	if t.LowShareThreshold >= t.HighShareThreshold {
		return fmt.Errorf("low_share_threshold (%g) must be below high_share_threshold (%g)", t.LowShareThreshold, t.HighShareThreshold)
	}
	if math.Abs(t.ShareCommitWeight+t.ShareLineWeight-1) > 1e-9 {
		return fmt.Errorf("share weights must sum to 1 (received %g and %g)", t.ShareCommitWeight, t.ShareLineWeight)
	}

	return nil
}

// parseCourseDate accepts either a full RFC3339 timestamp or a bare date.
func parseCourseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateTimeFormat, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateOnlyFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected %s or %s: %w", dateOnlyFormat, DateTimeFormat, err)
	}
	return t.UTC(), nil
}
