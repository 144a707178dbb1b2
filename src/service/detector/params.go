package detector

import (
	"fmt"
	"strings"

	"debt-detective/src/config"
	"debt-detective/src/model"
	"debt-detective/src/service/scanner"
)

// ParameterDetector flags function definitions declaring too many
// parameters. Signatures are matched with a per-language pattern over a
// single line; multi-line signatures are missed and the odd call site
// can misfire, which the medium confidence acknowledges.
type ParameterDetector struct {
	cfg config.ParameterDetectorConfig
}

// NewParameterDetector creates a new parameter count detector
func NewParameterDetector(cfg config.ParameterDetectorConfig) *ParameterDetector {
	return &ParameterDetector{cfg: cfg}
}

// Name returns the detector name
func (d *ParameterDetector) Name() string {
	return "parameters"
}

// IsEnabled returns whether the detector is enabled
func (d *ParameterDetector) IsEnabled() bool {
	return d.cfg.Enabled
}

// Detect scans signature lines and counts declared parameters
func (d *ParameterDetector) Detect(path string, lines []scanner.Line) []model.Issue {
	cues := cuesFor(path)
	if cues.funcPattern == nil {
		return nil
	}

	var issues []model.Issue

	for _, ln := range lines {
		m := cues.funcPattern.FindStringSubmatch(ln.Text)
		if m == nil {
			continue
		}
		name := m[1]
		if cues.funcPattern == cFunc && cKeywords[firstWord(ln.Text)] {
			continue
		}

		count := countParams(m[2])
		if count <= d.cfg.MaxParameters {
			continue
		}

		issues = append(issues, model.Issue{
			Category:   model.CategoryTooManyParams,
			Severity:   escalate(count, d.cfg.MaxParameters),
			Confidence: d.cfg.Confidence,
			FilePath:   path,
			Line:       ln.Num,
			Message:    fmt.Sprintf("Function '%s' declares %d parameters (threshold: %d)", name, count, d.cfg.MaxParameters),
			Suggestion: "Group related parameters into a configuration object or struct",
		})
	}

	return issues
}

func firstWord(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimRight(fields[0], "(")
}
