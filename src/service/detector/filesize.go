package detector

import (
	"fmt"

	"debt-detective/src/config"
	"debt-detective/src/model"
	"debt-detective/src/service/scanner"
)

// FileSizeDetector flags files whose total line count suggests they
// have accumulated too many responsibilities.
type FileSizeDetector struct {
	cfg config.FileSizeDetectorConfig
}

// NewFileSizeDetector creates a new large file detector
func NewFileSizeDetector(cfg config.FileSizeDetectorConfig) *FileSizeDetector {
	return &FileSizeDetector{cfg: cfg}
}

// Name returns the detector name
func (d *FileSizeDetector) Name() string {
	return "file_size"
}

// IsEnabled returns whether the detector is enabled
func (d *FileSizeDetector) IsEnabled() bool {
	return d.cfg.Enabled
}

// Detect emits at most one issue per file, anchored at line 1
func (d *FileSizeDetector) Detect(path string, lines []scanner.Line) []model.Issue {
	if len(lines) <= d.cfg.MaxLines {
		return nil
	}

	return []model.Issue{{
		Category:   model.CategoryLargeFile,
		Severity:   model.SeverityMedium,
		Confidence: d.cfg.Confidence,
		FilePath:   path,
		Line:       1,
		Message:    fmt.Sprintf("File has %d lines (threshold: %d)", len(lines), d.cfg.MaxLines),
		Suggestion: "Split into multiple files organized by responsibility",
	}}
}
