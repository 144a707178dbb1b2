package detector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debt-detective/src/config"
	"debt-detective/src/model"
)

func TestFileSizeDetector_LargeFile(t *testing.T) {
	text := strings.Repeat("x = 1\n", 501)

	d := NewFileSizeDetector(config.DefaultConfig().Detectors.FileSize)
	issues := d.Detect("big.py", toLines(text))

	require.Len(t, issues, 1)
	assert.Equal(t, model.CategoryLargeFile, issues[0].Category)
	assert.Equal(t, model.SeverityMedium, issues[0].Severity)
	assert.Equal(t, 1, issues[0].Line)
}

func TestFileSizeDetector_SmallFileIsClean(t *testing.T) {
	d := NewFileSizeDetector(config.DefaultConfig().Detectors.FileSize)
	assert.Empty(t, d.Detect("small.py", toLines("x = 1\n")))
}

func TestRunner_CombinesDetectorsInLineOrder(t *testing.T) {
	text := "# TODO: tidy\n" +
		strings.Repeat("    ", 6) + "deep()\n" +
		strings.Repeat("z", 130) + "\n"

	r := NewRunner(config.DefaultConfig())
	issues := r.AnalyzeFile("mixed.py", toLines(text))

	require.Len(t, issues, 3)
	assert.Equal(t, model.CategoryDebtComment, issues[0].Category)
	assert.Equal(t, model.CategoryNestingDepth, issues[1].Category)
	assert.Equal(t, model.CategoryLineLength, issues[2].Category)

	for _, issue := range issues {
		assert.Equal(t, "mixed.py", issue.FilePath)
		assert.GreaterOrEqual(t, issue.Line, 1)
		assert.GreaterOrEqual(t, issue.Confidence, 0)
		assert.LessOrEqual(t, issue.Confidence, 100)
	}
}

func TestRunner_DisabledDetectorsSkipped(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Analysis.Depth = config.DepthQuick
	cfg.ApplyDepth()

	text := strings.Repeat("    ", 8) + "deep()\n"
	r := NewRunner(cfg)

	assert.Empty(t, r.AnalyzeFile("f.py", toLines(text)))
	assert.NotContains(t, r.EnabledDetectors(), "nesting")
	assert.Contains(t, r.EnabledDetectors(), "line_length")
}

func TestRunner_ListDetectors(t *testing.T) {
	r := NewRunner(config.DefaultConfig())
	assert.Equal(t, []string{"nesting", "line_length", "debt_comment", "parameters", "file_size"}, r.ListDetectors())
}

func TestRunner_MalformedInputYieldsNoIssues(t *testing.T) {
	r := NewRunner(config.DefaultConfig())
	assert.Empty(t, r.AnalyzeFile("weird.bin", nil))
	assert.Empty(t, r.AnalyzeFile("empty.py", toLines("")))
}
