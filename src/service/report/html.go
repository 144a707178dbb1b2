package report

import (
	"html/template"
	"strings"

	"debt-detective/src/model"
)

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"title": categoryTitle,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<title>Technical Debt Report - {{.Report.RootPath}}</title>
<meta charset="UTF-8">
<style>
body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; margin: 40px; background: #f8f9fa; }
.container { max-width: 1100px; margin: 0 auto; background: white; padding: 40px; border-radius: 12px; }
h1 { color: #2563eb; border-bottom: 3px solid #2563eb; padding-bottom: 10px; }
.metrics { display: grid; grid-template-columns: repeat(auto-fit, minmax(180px, 1fr)); gap: 16px; margin: 20px 0; }
.metric-card { border: 1px solid #e5e7eb; padding: 16px; border-radius: 8px; text-align: center; }
.critical { border-left: 4px solid #ef4444; }
.high { border-left: 4px solid #f97316; }
.medium { border-left: 4px solid #eab308; }
.low { border-left: 4px solid #22c55e; }
.issue { margin: 8px 0; padding: 10px; background: #f9fafb; border-radius: 4px; font-size: 14px; }
.path { font-family: monospace; font-size: 12px; color: #6b7280; }
.confidence { float: right; font-weight: bold; }
</style>
</head>
<body>
<div class="container">
<h1>Technical Debt Report</h1>
<p><strong>Path:</strong> {{.Report.RootPath}} |
<strong>Depth:</strong> {{.Report.Depth}} |
<strong>Generated:</strong> {{.Report.GeneratedAt.Format "2006-01-02 15:04"}}</p>
<h2>Health Score: {{.Report.Summary.HealthScore}}/100 ({{.Report.Summary.Status}})</h2>
<div class="metrics">
<div class="metric-card critical"><h3>{{.Critical}}</h3><p>Critical</p></div>
<div class="metric-card high"><h3>{{.High}}</h3><p>High</p></div>
<div class="metric-card medium"><h3>{{.Medium}}</h3><p>Medium</p></div>
<div class="metric-card low"><h3>{{.Low}}</h3><p>Low</p></div>
</div>
<p>{{.Report.Stats.FilesScanned}} files scanned ({{.Report.Stats.FilesSkipped}} skipped), {{.Report.Stats.TotalLines}} lines.</p>
{{if not .Report.Issues}}
<h2>No issues found</h2>
{{else}}
<h2>Findings</h2>
{{range .Groups}}
<h3>{{title .Category}} ({{len .Issues}} instances)</h3>
{{range .Issues}}
<div class="issue {{.Severity}}">
<div class="path">{{.FilePath}}:{{.Line}}</div>
<span class="confidence">Confidence: {{.Confidence}}%</span>
<strong>{{.Message}}</strong><br>
<em>{{.Suggestion}}</em>
</div>
{{end}}
{{if .Overflow}}<p><em>... and {{.Overflow}} more instances</em></p>{{end}}
{{end}}
{{end}}
</div>
</body>
</html>
`))

type htmlGroup struct {
	Category model.Category
	Issues   []model.Issue
	Overflow int
}

type htmlView struct {
	Report   *model.AnalysisReport
	Groups   []htmlGroup
	Critical int
	High     int
	Medium   int
	Low      int
}

// generateHTML renders a standalone HTML report
func (g *Generator) generateHTML(report *model.AnalysisReport) (string, error) {
	grouped := groupByCategory(report.Issues)

	var groups []htmlGroup
	for _, cat := range model.Categories() {
		issues := grouped[cat]
		if len(issues) == 0 {
			continue
		}
		shown := g.capPerCategory(issues)
		groups = append(groups, htmlGroup{
			Category: cat,
			Issues:   shown,
			Overflow: len(issues) - len(shown),
		})
	}

	view := htmlView{
		Report:   report,
		Groups:   groups,
		Critical: report.Summary.BySeverity[model.SeverityCritical],
		High:     report.Summary.BySeverity[model.SeverityHigh],
		Medium:   report.Summary.BySeverity[model.SeverityMedium],
		Low:      report.Summary.BySeverity[model.SeverityLow],
	}

	var sb strings.Builder
	if err := htmlTemplate.Execute(&sb, view); err != nil {
		return "", err
	}
	return sb.String(), nil
}
