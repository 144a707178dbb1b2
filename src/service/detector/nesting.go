package detector

import (
	"fmt"
	"strings"

	"debt-detective/src/config"
	"debt-detective/src/model"
	"debt-detective/src/service/scanner"
)

// NestingDetector flags deeply nested blocks. Depth is tracked per line
// from indentation width or brace balance depending on the file's
// language cues; neither is a guaranteed proxy for logical nesting, so
// the reported confidence stays below certainty.
type NestingDetector struct {
	cfg config.NestingDetectorConfig
}

// NewNestingDetector creates a new nesting depth detector
func NewNestingDetector(cfg config.NestingDetectorConfig) *NestingDetector {
	return &NestingDetector{cfg: cfg}
}

// Name returns the detector name
func (d *NestingDetector) Name() string {
	return "nesting"
}

// IsEnabled returns whether the detector is enabled
func (d *NestingDetector) IsEnabled() bool {
	return d.cfg.Enabled
}

// Detect emits one issue per contiguous run of lines above the depth
// threshold, located at the run's first line and graded by its peak depth.
func (d *NestingDetector) Detect(path string, lines []scanner.Line) []model.Issue {
	cues := cuesFor(path)

	confidence := d.cfg.BraceConfidence
	if cues.mode == nestingByIndent {
		confidence = d.cfg.IndentConfidence
	}

	var issues []model.Issue
	var startLine, peak int
	braceDepth := 0

	flush := func() {
		if startLine == 0 {
			return
		}
		issues = append(issues, model.Issue{
			Category:   model.CategoryNestingDepth,
			Severity:   escalate(peak, d.cfg.MaxDepth),
			Confidence: confidence,
			FilePath:   path,
			Line:       startLine,
			Message:    fmt.Sprintf("Code block nested %d levels deep (threshold: %d)", peak, d.cfg.MaxDepth),
			Suggestion: "Flatten control flow with early returns, guard clauses, or extracted helpers",
		})
		startLine, peak = 0, 0
	}

	for _, ln := range lines {
		var depth int
		switch cues.mode {
		case nestingByIndent:
			if strings.TrimSpace(ln.Text) == "" {
				continue // blank lines carry no indentation signal
			}
			depth = d.indentLevel(ln.Text)
		default:
			depth, braceDepth = lineBraceDepth(ln.Text, braceDepth)
		}

		if depth > d.cfg.MaxDepth {
			if startLine == 0 {
				startLine = ln.Num
			}
			if depth > peak {
				peak = depth
			}
		} else {
			flush()
		}
	}
	flush()

	return issues
}

// indentLevel converts leading whitespace to a nesting level. A tab
// counts as one level regardless of the configured indent width.
func (d *NestingDetector) indentLevel(text string) int {
	width := d.cfg.IndentWidth
	if width <= 0 {
		width = 4
	}

	level, spaces := 0, 0
	for _, r := range text {
		if r == '\t' {
			level++
			continue
		}
		if r == ' ' {
			spaces++
			continue
		}
		break
	}
	return level + spaces/width
}

// lineBraceDepth scans one line's braces and returns the maximum depth
// reached inside the line and the depth at its end. String and comment
// contents are not lexed; the confidence score covers that imprecision.
func lineBraceDepth(text string, depth int) (maxDepth, endDepth int) {
	maxDepth = depth
	for _, r := range text {
		switch r {
		case '{':
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
		case '}':
			if depth > 0 {
				depth--
			}
		}
	}
	return maxDepth, depth
}
