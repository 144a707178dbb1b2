package detector

import (
	"fmt"
	"unicode/utf8"

	"debt-detective/src/config"
	"debt-detective/src/model"
	"debt-detective/src/service/scanner"
)

// LineLengthDetector flags overlong lines. This is an exact measurement,
// not a heuristic, so its confidence is high.
type LineLengthDetector struct {
	cfg config.LineLengthDetectorConfig
}

// NewLineLengthDetector creates a new line length detector
func NewLineLengthDetector(cfg config.LineLengthDetectorConfig) *LineLengthDetector {
	return &LineLengthDetector{cfg: cfg}
}

// Name returns the detector name
func (d *LineLengthDetector) Name() string {
	return "line_length"
}

// IsEnabled returns whether the detector is enabled
func (d *LineLengthDetector) IsEnabled() bool {
	return d.cfg.Enabled
}

// Detect flags every line whose character count exceeds the limit
func (d *LineLengthDetector) Detect(path string, lines []scanner.Line) []model.Issue {
	var issues []model.Issue

	for _, ln := range lines {
		length := utf8.RuneCountInString(ln.Text)
		if length <= d.cfg.MaxLength {
			continue
		}

		severity := model.SeverityLow
		if length > d.cfg.SevereLength {
			severity = model.SeverityMedium
		}

		issues = append(issues, model.Issue{
			Category:   model.CategoryLineLength,
			Severity:   severity,
			Confidence: d.cfg.Confidence,
			FilePath:   path,
			Line:       ln.Num,
			Message:    fmt.Sprintf("Line is %d characters long (limit: %d)", length, d.cfg.MaxLength),
			Suggestion: "Break the line or refactor the expression for readability",
		})
	}

	return issues
}
