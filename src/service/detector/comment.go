package detector

import (
	"fmt"
	"regexp"
	"strings"

	"debt-detective/src/config"
	"debt-detective/src/model"
	"debt-detective/src/service/scanner"
)

// markerPattern matches debt markers as whole words, case-insensitively
var markerPattern = regexp.MustCompile(`(?i)\b(TODO|FIXME|HACK|XXX)\b`)

// markerSeverity reflects typical urgency per marker kind
var markerSeverity = map[string]model.Severity{
	"FIXME": model.SeverityHigh,
	"HACK":  model.SeverityMedium,
	"XXX":   model.SeverityMedium,
	"TODO":  model.SeverityLow,
}

// DebtCommentDetector finds author-acknowledged deferred work markers
// (TODO, FIXME, HACK, XXX) inside comment-like syntax. Exact string
// matching, so confidence is high.
type DebtCommentDetector struct {
	cfg config.DebtCommentDetectorConfig
}

// NewDebtCommentDetector creates a new debt marker detector
func NewDebtCommentDetector(cfg config.DebtCommentDetectorConfig) *DebtCommentDetector {
	return &DebtCommentDetector{cfg: cfg}
}

// Name returns the detector name
func (d *DebtCommentDetector) Name() string {
	return "debt_comment"
}

// IsEnabled returns whether the detector is enabled
func (d *DebtCommentDetector) IsEnabled() bool {
	return d.cfg.Enabled
}

// Detect emits one issue per marker occurrence found in a comment
func (d *DebtCommentDetector) Detect(path string, lines []scanner.Line) []model.Issue {
	cues := cuesFor(path)
	var issues []model.Issue

	for _, ln := range lines {
		comment, ok := commentPortion(ln.Text, cues.commentPrefixes)
		if !ok {
			continue
		}

		for _, marker := range markerPattern.FindAllString(comment, -1) {
			marker = strings.ToUpper(marker)
			issues = append(issues, model.Issue{
				Category:   model.CategoryDebtComment,
				Severity:   markerSeverity[marker],
				Confidence: d.cfg.Confidence,
				FilePath:   path,
				Line:       ln.Num,
				Message:    fmt.Sprintf("Debt marker %s: %s", marker, strings.TrimSpace(comment)),
				Suggestion: "Resolve the noted work and remove the marker, or file it as a tracked task",
			})
		}
	}

	return issues
}

// genericCommentPrefixes supplement the per-language cues so markers in
// unfamiliar comment styles are still caught
var genericCommentPrefixes = []string{"//", "#", "/*", "*", "--", "<!--", ";"}

// commentPortion returns the comment part of a line, if any. Markers in
// code or string literals before a comment introducer are ignored.
func commentPortion(text string, prefixes []string) (string, bool) {
	idx := -1
	for _, prefix := range append(prefixes, genericCommentPrefixes...) {
		if i := strings.Index(text, prefix); i >= 0 && (idx < 0 || i < idx) {
			idx = i
		}
	}
	if idx < 0 {
		return "", false
	}
	return text[idx:], true
}
