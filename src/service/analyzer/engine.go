// Package analyzer contains the core analysis engine: a single pure
// entry point from (root, config) to an AnalysisReport, callable from
// any CLI, service, or test harness.
package analyzer

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"debt-detective/src/config"
	"debt-detective/src/model"
	"debt-detective/src/service/detector"
	"debt-detective/src/service/scanner"
	"debt-detective/src/service/score"
	"debt-detective/src/util"
)

// Engine runs the full analysis pipeline: walk, detect, aggregate, score
type Engine struct {
	cfg    *config.Config
	walker *scanner.Walker
	runner *detector.Runner
	calc   *score.Calculator
}

// NewEngine creates an engine from a validated-or-not config; Analyze
// performs the pre-flight validation itself.
func NewEngine(cfg *config.Config) *Engine {
	return &Engine{
		cfg:    cfg,
		walker: scanner.NewWalker(cfg.Analysis),
		runner: detector.NewRunner(cfg),
		calc:   score.NewCalculator(cfg.Scoring),
	}
}

// fileResult is the private per-file output of one worker. Files are
// independent analysis units; nothing here is shared until the merge.
type fileResult struct {
	issues  []model.Issue
	lines   int
	skipped bool
}

// Analyze scans the tree under root and returns the analysis report.
// Only pre-flight failures (bad config, bad root) are fatal; file-level
// failures are counted as skips and the run continues. Cancelling ctx
// stops scheduling further files without discarding completed work.
func (e *Engine) Analyze(ctx context.Context, root string) (*model.AnalysisReport, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	startTime := time.Now()
	util.Info("Starting %s analysis of %s", e.cfg.Analysis.Depth, root)

	files, walkSkipped, err := e.walker.Walk(root)
	if err != nil {
		return nil, err
	}
	util.Debug("Walker found %d eligible files (%d skipped)", len(files), walkSkipped)

	results := make([]fileResult, len(files))

	g := new(errgroup.Group)
	g.SetLimit(e.cfg.Analysis.Workers)

	for i, entry := range files {
		if ctx.Err() != nil {
			// Run-level cancellation: unscheduled files count as skipped
			results[i] = fileResult{skipped: true}
			continue
		}

		i, entry := i, entry
		g.Go(func() error {
			lines, err := scanner.ReadLines(entry.Path)
			if err != nil {
				util.Warn("Skipping file: %v", err)
				results[i] = fileResult{skipped: true}
				return nil
			}
			results[i] = fileResult{
				issues: e.runner.AnalyzeFile(entry.Rel, lines),
				lines:  len(lines),
			}
			return nil
		})
	}

	// Workers never return errors; Wait is only a barrier
	_ = g.Wait()

	// Merge in walker order so the report's issue order is the canonical
	// discovery order regardless of how the pool interleaved the work
	stats := model.ScanStats{FilesSkipped: walkSkipped}
	var issues []model.Issue
	for _, res := range results {
		if res.skipped {
			stats.FilesSkipped++
			continue
		}
		stats.FilesScanned++
		stats.TotalLines += res.lines
		issues = append(issues, res.issues...)
	}

	report := &model.AnalysisReport{
		RootPath:    root,
		Depth:       e.cfg.Analysis.Depth,
		GeneratedAt: time.Now().UTC(),
		Issues:      issues,
		Stats:       stats,
		Summary:     e.summarize(issues, stats),
	}

	util.Info("Analysis complete: %d issues in %d files, health score %d/100 (took %v)",
		len(issues), stats.FilesScanned, report.Summary.HealthScore, time.Since(startTime))

	return report, nil
}

func (e *Engine) summarize(issues []model.Issue, stats model.ScanStats) model.ReportSummary {
	bySeverity := map[model.Severity]int{
		model.SeverityLow:      0,
		model.SeverityMedium:   0,
		model.SeverityHigh:     0,
		model.SeverityCritical: 0,
	}
	byCategory := make(map[model.Category]int)
	byFile := make(map[string]int)

	for _, issue := range issues {
		bySeverity[issue.Severity]++
		byCategory[issue.Category]++
		byFile[issue.FilePath]++
	}

	healthScore := e.calc.Score(issues, stats.TotalLines)

	return model.ReportSummary{
		TotalIssues:  len(issues),
		BySeverity:   bySeverity,
		ByCategory:   byCategory,
		HotspotFiles: e.hotspots(byFile),
		HealthScore:  healthScore,
		Status:       e.calc.Status(healthScore),
	}
}

// hotspots returns the top-N files by issue count, ties broken by path
// so the summary is deterministic
func (e *Engine) hotspots(byFile map[string]int) []model.FileHotspot {
	spots := make([]model.FileHotspot, 0, len(byFile))
	for path, count := range byFile {
		spots = append(spots, model.FileHotspot{FilePath: path, IssueCount: count})
	}

	sort.Slice(spots, func(i, j int) bool {
		if spots[i].IssueCount != spots[j].IssueCount {
			return spots[i].IssueCount > spots[j].IssueCount
		}
		return spots[i].FilePath < spots[j].FilePath
	})

	topN := e.cfg.Output.HotspotsTopN
	if topN > 0 && len(spots) > topN {
		spots = spots[:topN]
	}
	return spots
}
