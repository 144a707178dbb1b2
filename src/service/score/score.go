// Package score turns aggregated issues into the 0-100 health score
// and its status label. Both are pure functions of their inputs: the
// same issues and totals always produce the same score and label.
package score

import (
	"math"
	"sort"

	"debt-detective/src/config"
	"debt-detective/src/model"
)

// Calculator computes health scores from configured weights and bands
type Calculator struct {
	cfg config.ScoringConfig
}

// NewCalculator creates a calculator from scoring settings
func NewCalculator(cfg config.ScoringConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

// Score starts from 100 and subtracts a severity-weighted penalty
// normalized per thousand lines, so a large codebase with the same
// issue density as a small one scores the same. Codebases under 1000
// lines are normalized as if they had 1000, keeping tiny trees from
// being over-penalized per issue. The result is clamped to [0,100].
func (c *Calculator) Score(issues []model.Issue, totalLines int) int {
	if len(issues) == 0 {
		return 100
	}

	penalty := 0
	for _, issue := range issues {
		penalty += c.weightFor(issue.Severity)
	}

	kloc := float64(totalLines) / 1000.0
	if kloc < 1 {
		kloc = 1
	}

	score := 100 - int(math.Round(float64(penalty)/kloc))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// Status maps a score to its band label, highest minimum first
func (c *Calculator) Status(value int) string {
	bands := make([]config.ScoreBand, len(c.cfg.Bands))
	copy(bands, c.cfg.Bands)
	sort.Slice(bands, func(i, j int) bool { return bands[i].Min > bands[j].Min })

	for _, band := range bands {
		if value >= band.Min {
			return band.Label
		}
	}
	if len(bands) > 0 {
		return bands[len(bands)-1].Label
	}
	return ""
}

func (c *Calculator) weightFor(sev model.Severity) int {
	switch sev {
	case model.SeverityCritical:
		return c.cfg.Weights.Critical
	case model.SeverityHigh:
		return c.cfg.Weights.High
	case model.SeverityMedium:
		return c.cfg.Weights.Medium
	default:
		return c.cfg.Weights.Low
	}
}
