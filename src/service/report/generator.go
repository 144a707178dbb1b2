// Package report renders AnalysisReport values into output formats.
// This is presentation only; the engine never formats its own output.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"debt-detective/src/config"
	"debt-detective/src/model"
	"debt-detective/src/util"
)

// Generator generates reports in various formats
type Generator struct {
	cfg config.OutputConfig
}

// NewGenerator creates a new report generator
func NewGenerator(cfg config.OutputConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Generate generates a report in the specified format
func (g *Generator) Generate(report *model.AnalysisReport, format string) (string, error) {
	util.Debug("Generating report in %s format (%d issues)", format, len(report.Issues))
	switch format {
	case "json":
		return g.generateJSON(report)
	case "markdown", "md":
		return g.generateMarkdown(report)
	case "console":
		return g.generateConsole(report)
	case "html":
		return g.generateHTML(report)
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (g *Generator) generateJSON(report *model.AnalysisReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateMarkdown(report *model.AnalysisReport) (string, error) {
	var sb strings.Builder

	// Header
	sb.WriteString("# Technical Debt Analysis Report\n\n")
	sb.WriteString(fmt.Sprintf("**Path:** %s\n", report.RootPath))
	sb.WriteString(fmt.Sprintf("**Depth:** %s\n", report.Depth))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))

	// Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Health Score:** %d/100 (%s)\n", report.Summary.HealthScore, report.Summary.Status))
	sb.WriteString(fmt.Sprintf("- **Total Issues:** %d\n", report.Summary.TotalIssues))
	sb.WriteString(fmt.Sprintf("- **Files Scanned:** %d (%d skipped)\n", report.Stats.FilesScanned, report.Stats.FilesSkipped))
	sb.WriteString(fmt.Sprintf("- **Lines Scanned:** %d\n\n", report.Stats.TotalLines))

	// By Severity
	sb.WriteString("### Issues by Severity\n\n")
	sb.WriteString("| Severity | Count |\n")
	sb.WriteString("|----------|-------|\n")
	for _, sev := range []model.Severity{model.SeverityCritical, model.SeverityHigh, model.SeverityMedium, model.SeverityLow} {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", sev, report.Summary.BySeverity[sev]))
	}
	sb.WriteString("\n")

	// By Category
	sb.WriteString("### Issues by Category\n\n")
	sb.WriteString("| Category | Count |\n")
	sb.WriteString("|----------|-------|\n")
	for _, cat := range model.Categories() {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", cat, report.Summary.ByCategory[cat]))
	}
	sb.WriteString("\n")

	// Hotspots
	if len(report.Summary.HotspotFiles) > 0 {
		sb.WriteString("### Hotspot Files\n\n")
		sb.WriteString("| File | Issue Count |\n")
		sb.WriteString("|------|-------------|\n")
		for _, hs := range report.Summary.HotspotFiles {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", hs.FilePath, hs.IssueCount))
		}
		sb.WriteString("\n")
	}

	// Issues by Category
	sb.WriteString("## Issues\n\n")

	issuesByCategory := groupByCategory(report.Issues)

	for _, cat := range model.Categories() {
		issues := issuesByCategory[cat]
		if len(issues) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("### %s (%d issues)\n\n", categoryTitle(cat), len(issues)))

		shown := g.capPerCategory(issues)
		for _, issue := range shown {
			sb.WriteString(fmt.Sprintf("- %s `%s:%d`: %s (confidence %d%%)\n",
				severityMarker(issue.Severity), issue.FilePath, issue.Line, issue.Message, issue.Confidence))
			if g.cfg.IncludeSuggestions && issue.Suggestion != "" {
				sb.WriteString(fmt.Sprintf("  - Suggestion: %s\n", issue.Suggestion))
			}
		}
		if len(issues) > len(shown) {
			sb.WriteString(fmt.Sprintf("\n_... and %d more instances_\n", len(issues)-len(shown)))
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func (g *Generator) capPerCategory(issues []model.Issue) []model.Issue {
	max := g.cfg.MaxIssuesPerCategory
	if max <= 0 || len(issues) <= max {
		return issues
	}
	return issues[:max]
}

func groupByCategory(issues []model.Issue) map[model.Category][]model.Issue {
	grouped := make(map[model.Category][]model.Issue)
	for _, issue := range issues {
		grouped[issue.Category] = append(grouped[issue.Category], issue)
	}
	return grouped
}

func categoryTitle(cat model.Category) string {
	words := strings.Split(string(cat), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func severityMarker(sev model.Severity) string {
	switch sev {
	case model.SeverityCritical:
		return "[CRITICAL]"
	case model.SeverityHigh:
		return "[HIGH]"
	case model.SeverityMedium:
		return "[MEDIUM]"
	default:
		return "[LOW]"
	}
}
