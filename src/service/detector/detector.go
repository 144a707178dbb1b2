package detector

import (
	"debt-detective/src/model"
	"debt-detective/src/service/scanner"
)

// Detector is the interface for all debt detectors. Detectors are
// stateless per file and must tolerate malformed input: a file whose
// structure the heuristic cannot follow yields zero issues, never an
// error.
type Detector interface {
	// Name returns the detector name
	Name() string

	// IsEnabled returns whether the detector is enabled
	IsEnabled() bool

	// Detect analyzes one file's line stream and returns found issues
	Detect(path string, lines []scanner.Line) []model.Issue
}

// escalate maps how far a measured value overshoots its threshold to a
// severity: within 2 is medium, within 5 is high, beyond is critical.
func escalate(value, threshold int) model.Severity {
	switch {
	case value <= threshold+2:
		return model.SeverityMedium
	case value <= threshold+5:
		return model.SeverityHigh
	default:
		return model.SeverityCritical
	}
}
