package detector

import (
	"sort"

	"debt-detective/src/config"
	"debt-detective/src/model"
	"debt-detective/src/service/scanner"
	"debt-detective/src/util"
)

// Runner holds the registered detectors and applies every enabled one
// to a file's line stream. Detectors are independent and stateless, so
// a single Runner is safe to share across concurrently analyzed files.
type Runner struct {
	detectors []Detector
}

// NewRunner creates a runner with all detectors registered
func NewRunner(cfg *config.Config) *Runner {
	detectors := []Detector{
		NewNestingDetector(cfg.Detectors.Nesting),
		NewLineLengthDetector(cfg.Detectors.LineLength),
		NewDebtCommentDetector(cfg.Detectors.DebtComment),
		NewParameterDetector(cfg.Detectors.Parameters),
		NewFileSizeDetector(cfg.Detectors.FileSize),
	}

	util.Debug("Detector runner initialized with %d detectors", len(detectors))
	for _, d := range detectors {
		status := "disabled"
		if d.IsEnabled() {
			status = "enabled"
		}
		util.Debug("  - %s: %s", d.Name(), status)
	}

	return &Runner{detectors: detectors}
}

// AnalyzeFile runs all enabled detectors over one file and returns the
// combined issues in line order.
func (r *Runner) AnalyzeFile(path string, lines []scanner.Line) []model.Issue {
	var issues []model.Issue
	for _, d := range r.detectors {
		if !d.IsEnabled() {
			continue
		}
		issues = append(issues, d.Detect(path, lines)...)
	}

	// Detectors each emit in line order; interleave them so the file's
	// issues read top to bottom
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Line < issues[j].Line
	})

	return issues
}

// ListDetectors returns names of all registered detectors
func (r *Runner) ListDetectors() []string {
	names := make([]string, len(r.detectors))
	for i, d := range r.detectors {
		names[i] = d.Name()
	}
	return names
}

// EnabledDetectors returns names of enabled detectors only
func (r *Runner) EnabledDetectors() []string {
	var names []string
	for _, d := range r.detectors {
		if d.IsEnabled() {
			names = append(names, d.Name())
		}
	}
	return names
}
