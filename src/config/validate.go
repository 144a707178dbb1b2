package config

import "fmt"

// Validate performs pre-flight validation of run parameters. Validation
// failures are fatal and surface before any traversal begins; everything
// downstream (unreadable files, detector misfires) is recoverable.
func (c *Config) Validate() error {
	switch c.Analysis.Depth {
	case DepthQuick, DepthStandard, DepthDeep:
	default:
		return fmt.Errorf("invalid depth level %q (expected quick, standard, or deep)", c.Analysis.Depth)
	}

	if c.Analysis.MaxFileSizeBytes < 0 {
		return fmt.Errorf("max_file_size_bytes must not be negative (got %d)", c.Analysis.MaxFileSizeBytes)
	}

	if len(c.Analysis.Extensions) == 0 {
		return fmt.Errorf("extension allow-list is empty; nothing would be analyzed")
	}

	if c.Analysis.Workers < 1 {
		return fmt.Errorf("workers must be at least 1 (got %d)", c.Analysis.Workers)
	}

	for _, check := range []struct {
		name  string
		value int
	}{
		{"nesting.indent_confidence", c.Detectors.Nesting.IndentConfidence},
		{"nesting.brace_confidence", c.Detectors.Nesting.BraceConfidence},
		{"line_length.confidence", c.Detectors.LineLength.Confidence},
		{"debt_comment.confidence", c.Detectors.DebtComment.Confidence},
		{"parameters.confidence", c.Detectors.Parameters.Confidence},
		{"file_size.confidence", c.Detectors.FileSize.Confidence},
	} {
		if check.value < 0 || check.value > 100 {
			return fmt.Errorf("detector confidence %s out of range [0,100]: %d", check.name, check.value)
		}
	}

	if len(c.Scoring.Bands) == 0 {
		return fmt.Errorf("scoring must define at least one status band")
	}

	return nil
}
