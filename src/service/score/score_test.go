package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debt-detective/src/config"
	"debt-detective/src/model"
)

func newCalculator() *Calculator {
	return NewCalculator(config.DefaultConfig().Scoring)
}

func issuesOf(sevs ...model.Severity) []model.Issue {
	issues := make([]model.Issue, len(sevs))
	for i, s := range sevs {
		issues[i] = model.Issue{Severity: s, Line: 1, FilePath: "f.py"}
	}
	return issues
}

func TestScore_NoIssuesIsPerfect(t *testing.T) {
	c := newCalculator()
	assert.Equal(t, 100, c.Score(nil, 0))
	assert.Equal(t, "Healthy", c.Status(100))
}

func TestScore_SeverityWeights(t *testing.T) {
	c := newCalculator()

	// 1000 lines: penalty applies at face value
	assert.Equal(t, 90, c.Score(issuesOf(model.SeverityCritical), 1000))
	assert.Equal(t, 95, c.Score(issuesOf(model.SeverityHigh), 1000))
	assert.Equal(t, 98, c.Score(issuesOf(model.SeverityMedium), 1000))
	assert.Equal(t, 99, c.Score(issuesOf(model.SeverityLow), 1000))
}

func TestScore_NormalizedByCodebaseSize(t *testing.T) {
	c := newCalculator()

	// Same issue density in a codebase twice the size scores the same
	small := issuesOf(model.SeverityHigh, model.SeverityHigh)
	large := issuesOf(model.SeverityHigh, model.SeverityHigh, model.SeverityHigh, model.SeverityHigh)

	assert.Equal(t, c.Score(small, 2000), c.Score(large, 4000))
}

func TestScore_SmallTreesNotInflated(t *testing.T) {
	c := newCalculator()

	// A 10-line file is normalized as 1 KLOC, not 0.01
	assert.Equal(t, 95, c.Score(issuesOf(model.SeverityHigh), 10))
}

func TestScore_ClampedToZero(t *testing.T) {
	c := newCalculator()

	var sevs []model.Severity
	for i := 0; i < 50; i++ {
		sevs = append(sevs, model.SeverityCritical)
	}

	value := c.Score(issuesOf(sevs...), 100)
	assert.Equal(t, 0, value)
}

func TestScore_Deterministic(t *testing.T) {
	c := newCalculator()
	issues := issuesOf(model.SeverityHigh, model.SeverityLow, model.SeverityMedium)

	first := c.Score(issues, 1234)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Score(issues, 1234))
	}
	require.GreaterOrEqual(t, first, 0)
	require.LessOrEqual(t, first, 100)
}

func TestStatus_Bands(t *testing.T) {
	c := newCalculator()

	tests := []struct {
		value    int
		expected string
	}{
		{100, "Healthy"},
		{80, "Healthy"},
		{79, "Needs Attention"},
		{60, "Needs Attention"},
		{59, "Concerning"},
		{40, "Concerning"},
		{39, "Critical"},
		{0, "Critical"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, c.Status(tt.value), "score %d", tt.value)
	}
}

func TestStatus_CustomBands(t *testing.T) {
	c := NewCalculator(config.ScoringConfig{
		Weights: config.SeverityWeights{Low: 1, Medium: 2, High: 5, Critical: 10},
		Bands: []config.ScoreBand{
			{Min: 90, Label: "Excellent"},
			{Min: 0, Label: "Poor"},
		},
	})

	assert.Equal(t, "Excellent", c.Status(95))
	assert.Equal(t, "Poor", c.Status(89))
}
