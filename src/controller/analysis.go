package controller

import (
	"context"

	"debt-detective/src/config"
	"debt-detective/src/model"
	"debt-detective/src/service/analyzer"
	"debt-detective/src/util"
)

// AnalysisController orchestrates the debt analysis process
type AnalysisController struct {
	cfg *config.Config
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(cfg *config.Config) *AnalysisController {
	return &AnalysisController{cfg: cfg}
}

// AnalyzeRequest represents a request to analyze a source tree
type AnalyzeRequest struct {
	RootPath string
}

// Analyze runs the full analysis pipeline
func (c *AnalysisController) Analyze(ctx context.Context, req AnalyzeRequest) (*model.AnalysisReport, error) {
	engine := analyzer.NewEngine(c.cfg)

	report, err := engine.Analyze(ctx, req.RootPath)
	if err != nil {
		util.Error("Analysis failed: %v", err)
		return nil, err
	}

	if report.Stats.FilesSkipped > 0 {
		util.Warn("Coverage incomplete: %d files skipped", report.Stats.FilesSkipped)
	}

	return report, nil
}
