package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/coursepulse/coursepulse/schema"
	"github.com/fatih/color"
)

// Severity label constants.
const (
	HighValue   = "High"   // urgent, reach out now
	MediumValue = "Medium" // needs a check-in
	InfoValue   = "Info"   // informational only
	NoDataValue = "NoData" // insufficient data to judge
)

// Color variables for console output.
var (
	HighColor   = color.New(color.FgRed, color.Bold) // highColor represents standard danger.
	MediumColor = color.New(color.FgYellow)          // mediumColor represents standard caution, not bold.
	InfoColor   = color.New(color.FgCyan)            // infoColor represents informational / low-priority signal.
	NoDataColor = color.New(color.FgWhite)           // noDataColor keeps inconclusive rows visible but muted.
)

// GetPlainLabel returns a plain text label for a classification outcome.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(primary schema.PatternKind, severity schema.Severity) string {
	if primary == schema.InsufficientDataPattern {
		return NoDataValue
	}
	switch severity {
	case schema.HighSeverity:
		return HighValue
	case schema.MediumSeverity:
		return MediumValue
	default:
		return InfoValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, then applies the color.
func GetColorLabel(primary schema.PatternKind, severity schema.Severity) string {
	text := GetPlainLabel(primary, severity)

	switch text {
	case HighValue:
		return HighColor.Sprint(text)
	case MediumValue:
		return MediumColor.Sprint(text)
	case NoDataValue:
		return NoDataColor.Sprint(text)
	default: // "Info"
		return InfoColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetStoreDBFilePath returns the path to the SQLite DB file for result storage.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".coursepulse_results.db"
	}
	return filepath.Join(homeDir, ".coursepulse_results.db")
}

// TruncateText truncates a string to a maximum width with an ellipsis
// suffix. Requires maxWidth > 3 so there is room for the ellipsis and at
// least one character of content.
func TruncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
