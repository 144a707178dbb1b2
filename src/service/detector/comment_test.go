package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debt-detective/src/config"
	"debt-detective/src/model"
)

func standardCommentConfig() config.DebtCommentDetectorConfig {
	return config.DefaultConfig().Detectors.DebtComment
}

func TestDebtCommentDetector_FixmeAndTodo(t *testing.T) {
	text := "# FIXME: refactor\nvalue = 1\n# TODO: cleanup\n"

	d := NewDebtCommentDetector(standardCommentConfig())
	issues := d.Detect("f.py", toLines(text))

	require.Len(t, issues, 2)

	fixme, todo := issues[0], issues[1]
	assert.Equal(t, 1, fixme.Line)
	assert.Contains(t, fixme.Message, "FIXME")
	assert.Equal(t, 3, todo.Line)
	assert.Contains(t, todo.Message, "TODO")

	// FIXME outranks TODO
	assert.Greater(t, fixme.Severity.Weight(), todo.Severity.Weight())
	for _, issue := range issues {
		assert.Equal(t, model.CategoryDebtComment, issue.Category)
		assert.GreaterOrEqual(t, issue.Confidence, 90)
	}
}

func TestDebtCommentDetector_MarkerSeverities(t *testing.T) {
	tests := []struct {
		marker   string
		expected model.Severity
	}{
		{"FIXME", model.SeverityHigh},
		{"HACK", model.SeverityMedium},
		{"XXX", model.SeverityMedium},
		{"TODO", model.SeverityLow},
	}

	d := NewDebtCommentDetector(standardCommentConfig())
	for _, tt := range tests {
		t.Run(tt.marker, func(t *testing.T) {
			issues := d.Detect("f.go", toLines("// "+tt.marker+" sort this out\n"))
			require.Len(t, issues, 1)
			assert.Equal(t, tt.expected, issues[0].Severity)
		})
	}
}

func TestDebtCommentDetector_CaseInsensitiveWholeWord(t *testing.T) {
	d := NewDebtCommentDetector(standardCommentConfig())

	issues := d.Detect("f.py", toLines("# todo: lower case still counts\n"))
	require.Len(t, issues, 1)
	assert.Equal(t, model.SeverityLow, issues[0].Severity)

	// Substrings inside words are not markers
	assert.Empty(t, d.Detect("f.py", toLines("# methodology notes\n")))
	assert.Empty(t, d.Detect("f.py", toLines("# hacksaw inventory\n")))
}

func TestDebtCommentDetector_IgnoresMarkersOutsideComments(t *testing.T) {
	d := NewDebtCommentDetector(standardCommentConfig())
	assert.Empty(t, d.Detect("f.py", toLines("todo_list = fetch_items()\n")))
}

func TestDebtCommentDetector_MultipleMarkersOneLine(t *testing.T) {
	d := NewDebtCommentDetector(standardCommentConfig())
	issues := d.Detect("f.go", toLines("// TODO then HACK around it\n"))
	assert.Len(t, issues, 2)
}
