package config

// DefaultConfig returns the default configuration, tuned for the
// standard depth level. Severity weights (10/5/2/1) and score bands
// (80/60/40) are the documented scoring constants; override them in
// the scoring section of the config file to retune.
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "debt-detective",
			Version:     "1.0.0",
			Description: "Technical debt analysis engine",
		},
		Analysis: AnalysisConfig{
			Depth: DepthStandard,
			Extensions: []string{
				".py", ".js", ".ts", ".java", ".go", ".c", ".cpp", ".cs", ".rb", ".rs",
			},
			Exclusions: []string{
				".git/", "__pycache__/", "node_modules/", ".venv/", "venv/",
				"vendor/", "dist/", "build/", "target/",
			},
			MaxFileSizeBytes: 5 * 1024 * 1024,
			Workers:          4,
		},
		Detectors: DetectorsConfig{
			Nesting: NestingDetectorConfig{
				Enabled:          true,
				MaxDepth:         4,
				IndentWidth:      4,
				IndentConfidence: 70,
				BraceConfidence:  80,
			},
			LineLength: LineLengthDetectorConfig{
				Enabled:      true,
				MaxLength:    120,
				SevereLength: 160,
				Confidence:   95,
			},
			DebtComment: DebtCommentDetectorConfig{
				Enabled:    true,
				Confidence: 95,
			},
			Parameters: ParameterDetectorConfig{
				Enabled:       true,
				MaxParameters: 5,
				Confidence:    60,
			},
			FileSize: FileSizeDetectorConfig{
				Enabled:    true,
				MaxLines:   500,
				Confidence: 80,
			},
		},
		Scoring: ScoringConfig{
			Weights: SeverityWeights{
				Low:      1,
				Medium:   2,
				High:     5,
				Critical: 10,
			},
			Bands: []ScoreBand{
				{Min: 80, Label: "Healthy"},
				{Min: 60, Label: "Needs Attention"},
				{Min: 40, Label: "Concerning"},
				{Min: 0, Label: "Critical"},
			},
		},
		Output: OutputConfig{
			Formats:              []string{"console"},
			OutputDir:            ".",
			IncludeSuggestions:   true,
			MaxIssuesPerCategory: 100,
			HotspotsTopN:         10,
		},
		Logging: LoggingConfig{
			Level:            "info",
			IncludeTimestamp: true,
		},
	}
}

// ApplyDepth adjusts detector selection and thresholds for the
// configured depth level. Quick keeps only the exact, cheap detectors;
// deep tightens every heuristic threshold. Depth profiles take
// precedence over individually configured thresholds.
func (c *Config) ApplyDepth() {
	switch c.Analysis.Depth {
	case DepthQuick:
		c.Detectors.Nesting.Enabled = false
		c.Detectors.Parameters.Enabled = false
		c.Detectors.LineLength.MaxLength = 120
		c.Detectors.LineLength.SevereLength = 160
	case DepthDeep:
		c.Detectors.Nesting.MaxDepth = 3
		c.Detectors.LineLength.MaxLength = 100
		c.Detectors.LineLength.SevereLength = 140
		c.Detectors.Parameters.MaxParameters = 4
		c.Detectors.FileSize.MaxLines = 400
	}
}
