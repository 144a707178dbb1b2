package model

import "time"

// Severity represents the severity level of a debt issue
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Weight returns a numeric rank for ordering severities (critical > high > medium > low)
func (s Severity) Weight() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Category represents the category of technical debt
type Category string

const (
	CategoryNestingDepth  Category = "nesting_depth"
	CategoryLineLength    Category = "line_length"
	CategoryDebtComment   Category = "debt_comment"
	CategoryTooManyParams Category = "too_many_parameters"
	CategoryLargeFile     Category = "large_file"
)

// Categories lists all categories in canonical report order
func Categories() []Category {
	return []Category{
		CategoryNestingDepth,
		CategoryLineLength,
		CategoryDebtComment,
		CategoryTooManyParams,
		CategoryLargeFile,
	}
}

// Issue represents a single detected technical debt instance.
// Issues are value objects: created by a detector, never mutated afterwards.
type Issue struct {
	Category   Category `json:"category"`
	Severity   Severity `json:"severity"`
	Confidence int      `json:"confidence"` // heuristic strength, percentage in [0,100]
	FilePath   string   `json:"file_path"`
	Line       int      `json:"line"` // 1-based
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion"`
}

// AnalysisReport represents the complete analysis output
type AnalysisReport struct {
	RootPath    string        `json:"root_path"`
	Depth       string        `json:"depth"`
	GeneratedAt time.Time     `json:"generated_at"`
	Summary     ReportSummary `json:"summary"`
	Stats       ScanStats     `json:"stats"`
	Issues      []Issue       `json:"issues"`
}

// ReportSummary contains aggregated statistics
type ReportSummary struct {
	TotalIssues  int              `json:"total_issues"`
	BySeverity   map[Severity]int `json:"by_severity"`
	ByCategory   map[Category]int `json:"by_category"`
	HotspotFiles []FileHotspot    `json:"hotspot_files"`
	HealthScore  int              `json:"health_score"` // 0-100, higher is healthier
	Status       string           `json:"status"`
}

// ScanStats discloses traversal coverage so skipped files are never
// mistaken for clean ones.
type ScanStats struct {
	FilesScanned int `json:"files_scanned"`
	FilesSkipped int `json:"files_skipped"`
	TotalLines   int `json:"total_lines"`
}

// FileHotspot represents a file with many issues
type FileHotspot struct {
	FilePath   string `json:"file_path"`
	IssueCount int    `json:"issue_count"`
}
