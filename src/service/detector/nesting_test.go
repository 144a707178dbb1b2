package detector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debt-detective/src/config"
	"debt-detective/src/model"
	"debt-detective/src/service/scanner"
)

func toLines(text string) []scanner.Line {
	raw := strings.Split(text, "\n")
	lines := make([]scanner.Line, len(raw))
	for i, s := range raw {
		lines[i] = scanner.Line{Num: i + 1, Text: s}
	}
	return lines
}

func standardNestingConfig() config.NestingDetectorConfig {
	return config.DefaultConfig().Detectors.Nesting
}

func TestNestingDetector_NineLevelsIndentation(t *testing.T) {
	// One block nested 9 levels deep, standard threshold 4: a single
	// high-severity issue at 70% confidence
	var sb strings.Builder
	sb.WriteString("def deep():\n")
	for i := 1; i <= 8; i++ {
		sb.WriteString(strings.Repeat("    ", i) + "if x:\n")
	}
	sb.WriteString(strings.Repeat("    ", 9) + "do_it()\n")

	d := NewNestingDetector(standardNestingConfig())
	issues := d.Detect("deep.py", toLines(sb.String()))

	require.Len(t, issues, 1)
	issue := issues[0]
	assert.Equal(t, model.CategoryNestingDepth, issue.Category)
	assert.Contains(t, []model.Severity{model.SeverityHigh, model.SeverityCritical}, issue.Severity)
	assert.Equal(t, model.SeverityHigh, issue.Severity) // 9 is threshold+5
	assert.Equal(t, 70, issue.Confidence)
	assert.Equal(t, 6, issue.Line) // first line deeper than 4 levels
	assert.Contains(t, issue.Message, "9 levels")
}

func TestNestingDetector_SeverityTiers(t *testing.T) {
	tests := []struct {
		name     string
		depth    int
		expected model.Severity
	}{
		{"just over threshold", 5, model.SeverityMedium},
		{"two over threshold", 6, model.SeverityMedium},
		{"three over threshold", 7, model.SeverityHigh},
		{"five over threshold", 9, model.SeverityHigh},
		{"six over threshold", 10, model.SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.Repeat("    ", tt.depth) + "statement()\n"
			d := NewNestingDetector(standardNestingConfig())
			issues := d.Detect("f.py", toLines(text))
			require.Len(t, issues, 1)
			assert.Equal(t, tt.expected, issues[0].Severity)
		})
	}
}

func TestNestingDetector_BraceDepth(t *testing.T) {
	text := `func f() {
	if a {
		if b {
			if c {
				if d {
					if e {
						work()
					}
				}
			}
		}
	}
}
`
	d := NewNestingDetector(standardNestingConfig())
	issues := d.Detect("f.go", toLines(text))

	require.Len(t, issues, 1)
	assert.Equal(t, model.SeverityMedium, issues[0].Severity) // depth 6 is threshold+2
	assert.Equal(t, 80, issues[0].Confidence)
}

func TestNestingDetector_SeparateBlocksSeparateIssues(t *testing.T) {
	deep := strings.Repeat("    ", 5) + "x()\n"
	text := deep + "top_level()\n" + deep

	d := NewNestingDetector(standardNestingConfig())
	issues := d.Detect("f.py", toLines(text))

	require.Len(t, issues, 2)
	assert.Equal(t, 1, issues[0].Line)
	assert.Equal(t, 3, issues[1].Line)
}

func TestNestingDetector_BlankLinesDoNotSplitBlocks(t *testing.T) {
	deep := strings.Repeat("    ", 5) + "x()\n"
	text := deep + "\n" + deep

	d := NewNestingDetector(standardNestingConfig())
	issues := d.Detect("f.py", toLines(text))

	assert.Len(t, issues, 1)
}

func TestNestingDetector_ShallowFileIsClean(t *testing.T) {
	text := "def f():\n    if a:\n        return 1\n    return 2\n"
	d := NewNestingDetector(standardNestingConfig())
	assert.Empty(t, d.Detect("f.py", toLines(text)))
}

func TestNestingDetector_TabsCountAsLevels(t *testing.T) {
	text := strings.Repeat("\t", 7) + "statement()\n"
	d := NewNestingDetector(standardNestingConfig())
	issues := d.Detect("f.py", toLines(text))
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "7 levels")
}
