// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/coursepulse/coursepulse/internal/contract"
	"github.com/coursepulse/coursepulse/schema"
	"golang.org/x/term"
)

// severityLabel returns the table label for a classification outcome,
// colored only when the config asks for it.
func severityLabel(cfg *contract.Config, primary schema.PatternKind, severity schema.Severity) string {
	if cfg.UseColors {
		return contract.GetColorLabel(primary, severity)
	}
	return contract.GetPlainLabel(primary, severity)
}

// getMaxTableTextWidth calculates the maximum width for free-form text
// columns (recommendations, match descriptions) based on terminal width
// and the fixed columns a table carries.
func getMaxTableTextWidth(cfg *contract.Config, baseWidth int) int {
	termWidth := cfg.Width

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Conservative default for narrow terminals and CI
			termWidth = 100
		} else {
			termWidth = detectedWidth
		}
	}

	maxWidth := termWidth - baseWidth
	if maxWidth < 20 {
		maxWidth = 20
	}
	return maxWidth
}
