package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"debt-detective/src/model"
)

var (
	headerColor   = color.New(color.FgCyan, color.Bold)
	criticalColor = color.New(color.FgRed, color.Bold)
	highColor     = color.New(color.FgRed)
	mediumColor   = color.New(color.FgYellow)
	lowColor      = color.New(color.FgGreen)
	dimColor      = color.New(color.Faint)
)

// generateConsole renders a colored terminal report
func (g *Generator) generateConsole(report *model.AnalysisReport) (string, error) {
	var sb strings.Builder

	rule := strings.Repeat("=", 72)
	sb.WriteString(rule + "\n")
	sb.WriteString(headerColor.Sprintf("TECHNICAL DEBT REPORT: %s", report.RootPath) + "\n")
	sb.WriteString(rule + "\n\n")

	// Health score with band color
	scoreColor := lowColor
	switch {
	case report.Summary.HealthScore < 40:
		scoreColor = criticalColor
	case report.Summary.HealthScore < 60:
		scoreColor = highColor
	case report.Summary.HealthScore < 80:
		scoreColor = mediumColor
	}
	sb.WriteString(fmt.Sprintf("Health score: %s (%s)\n\n",
		scoreColor.Sprintf("%d/100", report.Summary.HealthScore), report.Summary.Status))

	sb.WriteString(fmt.Sprintf("Total issues: %d\n", report.Summary.TotalIssues))
	sb.WriteString(fmt.Sprintf("  %s %d\n", criticalColor.Sprint("critical:"), report.Summary.BySeverity[model.SeverityCritical]))
	sb.WriteString(fmt.Sprintf("  %s %d\n", highColor.Sprint("high:    "), report.Summary.BySeverity[model.SeverityHigh]))
	sb.WriteString(fmt.Sprintf("  %s %d\n", mediumColor.Sprint("medium:  "), report.Summary.BySeverity[model.SeverityMedium]))
	sb.WriteString(fmt.Sprintf("  %s %d\n", lowColor.Sprint("low:     "), report.Summary.BySeverity[model.SeverityLow]))
	sb.WriteString(fmt.Sprintf("Files scanned: %d", report.Stats.FilesScanned))
	if report.Stats.FilesSkipped > 0 {
		sb.WriteString(dimColor.Sprintf(" (%d skipped)", report.Stats.FilesSkipped))
	}
	sb.WriteString(fmt.Sprintf("\nLines scanned: %d\n", report.Stats.TotalLines))

	grouped := groupByCategory(report.Issues)
	for _, cat := range model.Categories() {
		issues := grouped[cat]
		if len(issues) == 0 {
			continue
		}

		sb.WriteString("\n" + headerColor.Sprintf("%s (%d instances)", categoryTitle(cat), len(issues)) + "\n")

		shown := g.capPerCategory(issues)
		for _, issue := range shown {
			sb.WriteString(fmt.Sprintf("  %s %s\n", g.severityBadge(issue.Severity), issue.Message))
			sb.WriteString(dimColor.Sprintf("    %s:%d | confidence %d%%", issue.FilePath, issue.Line, issue.Confidence) + "\n")
			if g.cfg.IncludeSuggestions && issue.Suggestion != "" {
				sb.WriteString(dimColor.Sprintf("    hint: %s", issue.Suggestion) + "\n")
			}
		}
		if len(issues) > len(shown) {
			sb.WriteString(dimColor.Sprintf("  ... and %d more instances", len(issues)-len(shown)) + "\n")
		}
	}

	if len(report.Summary.HotspotFiles) > 0 {
		sb.WriteString("\n" + headerColor.Sprint("Hotspot files") + "\n")
		for _, hs := range report.Summary.HotspotFiles {
			sb.WriteString(fmt.Sprintf("  %3d  %s\n", hs.IssueCount, hs.FilePath))
		}
	}

	sb.WriteString("\n" + rule + "\n")
	return sb.String(), nil
}

func (g *Generator) severityBadge(sev model.Severity) string {
	switch sev {
	case model.SeverityCritical:
		return criticalColor.Sprint("[CRITICAL]")
	case model.SeverityHigh:
		return highColor.Sprint("[HIGH]")
	case model.SeverityMedium:
		return mediumColor.Sprint("[MEDIUM]")
	default:
		return lowColor.Sprint("[LOW]")
	}
}
