package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debt-detective/src/config"
	"debt-detective/src/model"
)

func sampleReport() *model.AnalysisReport {
	issues := []model.Issue{
		{
			Category:   model.CategoryDebtComment,
			Severity:   model.SeverityHigh,
			Confidence: 95,
			FilePath:   "src/auth.py",
			Line:       12,
			Message:    "FIXME marker found: FIXME: token refresh races",
			Suggestion: "Resolve the flagged work or file a tracked ticket",
		},
		{
			Category:   model.CategoryLineLength,
			Severity:   model.SeverityLow,
			Confidence: 95,
			FilePath:   "src/auth.py",
			Line:       40,
			Message:    "Line is 134 characters (limit 120)",
			Suggestion: "Break the line across multiple statements",
		},
	}

	return &model.AnalysisReport{
		RootPath:    "/repo",
		Depth:       config.DepthStandard,
		GeneratedAt: time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
		Issues:      issues,
		Stats:       model.ScanStats{FilesScanned: 3, FilesSkipped: 1, TotalLines: 420},
		Summary: model.ReportSummary{
			TotalIssues: 2,
			BySeverity: map[model.Severity]int{
				model.SeverityLow: 1, model.SeverityMedium: 0,
				model.SeverityHigh: 1, model.SeverityCritical: 0,
			},
			ByCategory: map[model.Category]int{
				model.CategoryDebtComment: 1,
				model.CategoryLineLength:  1,
			},
			HotspotFiles: []model.FileHotspot{{FilePath: "src/auth.py", IssueCount: 2}},
			HealthScore:  93,
			Status:       "Healthy",
		},
	}
}

func TestGenerate_JSONRoundTrip(t *testing.T) {
	g := NewGenerator(config.DefaultConfig().Output)

	out, err := g.Generate(sampleReport(), "json")
	require.NoError(t, err)

	var decoded model.AnalysisReport
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "/repo", decoded.RootPath)
	assert.Equal(t, 93, decoded.Summary.HealthScore)
	assert.Equal(t, "Healthy", decoded.Summary.Status)
	require.Len(t, decoded.Issues, 2)
	assert.Equal(t, model.CategoryDebtComment, decoded.Issues[0].Category)
	assert.Equal(t, 12, decoded.Issues[0].Line)
}

func TestGenerate_Markdown(t *testing.T) {
	g := NewGenerator(config.DefaultConfig().Output)

	out, err := g.Generate(sampleReport(), "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "# Technical Debt Analysis Report")
	assert.Contains(t, out, "93/100")
	assert.Contains(t, out, "Healthy")
	assert.Contains(t, out, "src/auth.py:12")
	assert.Contains(t, out, "Suggestion:")
	assert.Contains(t, out, "Hotspot Files")
}

func TestGenerate_MarkdownAliasMd(t *testing.T) {
	g := NewGenerator(config.DefaultConfig().Output)

	long, err := g.Generate(sampleReport(), "markdown")
	require.NoError(t, err)
	short, err := g.Generate(sampleReport(), "md")
	require.NoError(t, err)

	assert.Equal(t, long, short)
}

func TestGenerate_MarkdownSuggestionsSuppressed(t *testing.T) {
	cfg := config.DefaultConfig().Output
	cfg.IncludeSuggestions = false

	out, err := NewGenerator(cfg).Generate(sampleReport(), "markdown")
	require.NoError(t, err)
	assert.NotContains(t, out, "Suggestion:")
}

func TestGenerate_MarkdownCapsPerCategory(t *testing.T) {
	report := sampleReport()
	for i := 0; i < 10; i++ {
		report.Issues = append(report.Issues, model.Issue{
			Category: model.CategoryLineLength,
			Severity: model.SeverityLow,
			FilePath: "src/wide.py",
			Line:     i + 1,
			Message:  "Line is 140 characters (limit 120)",
		})
	}

	cfg := config.DefaultConfig().Output
	cfg.MaxIssuesPerCategory = 3

	out, err := NewGenerator(cfg).Generate(report, "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "more instances")
}

func TestGenerate_HTML(t *testing.T) {
	g := NewGenerator(config.DefaultConfig().Output)

	out, err := g.Generate(sampleReport(), "html")
	require.NoError(t, err)

	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "93")
	assert.Contains(t, out, "src/auth.py")
}

func TestGenerate_Console(t *testing.T) {
	g := NewGenerator(config.DefaultConfig().Output)

	out, err := g.Generate(sampleReport(), "console")
	require.NoError(t, err)

	assert.Contains(t, out, "93")
	assert.Contains(t, out, "Healthy")
}

func TestGenerate_UnsupportedFormat(t *testing.T) {
	g := NewGenerator(config.DefaultConfig().Output)

	_, err := g.Generate(sampleReport(), "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
