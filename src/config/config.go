package config

// Config is the root configuration structure
type Config struct {
	Agent     AgentConfig     `yaml:"agent"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Detectors DetectorsConfig `yaml:"detectors"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// AgentConfig contains agent metadata
type AgentConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// Depth levels control detector selection and threshold strictness
const (
	DepthQuick    = "quick"
	DepthStandard = "standard"
	DepthDeep     = "deep"
)

// AnalysisConfig contains run-wide traversal settings.
// It is built once per run and read-only thereafter.
type AnalysisConfig struct {
	Depth            string   `yaml:"depth"` // quick, standard, deep
	Extensions       []string `yaml:"extensions"`
	Exclusions       []string `yaml:"exclusions"` // gitignore-style patterns
	MaxFileSizeBytes int64    `yaml:"max_file_size_bytes"`
	Workers          int      `yaml:"workers"` // bounded file-analysis pool size
}

// DetectorsConfig contains settings for all detectors
type DetectorsConfig struct {
	Nesting     NestingDetectorConfig     `yaml:"nesting"`
	LineLength  LineLengthDetectorConfig  `yaml:"line_length"`
	DebtComment DebtCommentDetectorConfig `yaml:"debt_comment"`
	Parameters  ParameterDetectorConfig   `yaml:"parameters"`
	FileSize    FileSizeDetectorConfig    `yaml:"file_size"`
}

// NestingDetectorConfig contains nesting depth detector settings
type NestingDetectorConfig struct {
	Enabled bool `yaml:"enabled"`
	// MaxDepth is the deepest nesting tolerated before an issue is raised
	MaxDepth int `yaml:"max_depth"`
	// IndentWidth is the number of spaces treated as one nesting level
	// for indentation-significant languages
	IndentWidth int `yaml:"indent_width"`
	// IndentConfidence applies when depth is inferred from indentation,
	// BraceConfidence when inferred from brace balance
	IndentConfidence int `yaml:"indent_confidence"`
	BraceConfidence  int `yaml:"brace_confidence"`
}

// LineLengthDetectorConfig contains line length detector settings
type LineLengthDetectorConfig struct {
	Enabled bool `yaml:"enabled"`
	// MaxLength flags a line as low severity; SevereLength escalates to medium
	MaxLength    int `yaml:"max_length"`
	SevereLength int `yaml:"severe_length"`
	Confidence   int `yaml:"confidence"`
}

// DebtCommentDetectorConfig contains debt marker detector settings
type DebtCommentDetectorConfig struct {
	Enabled    bool `yaml:"enabled"`
	Confidence int  `yaml:"confidence"`
}

// ParameterDetectorConfig contains function parameter count detector settings
type ParameterDetectorConfig struct {
	Enabled       bool `yaml:"enabled"`
	MaxParameters int  `yaml:"max_parameters"`
	Confidence    int  `yaml:"confidence"`
}

// FileSizeDetectorConfig contains large file detector settings
type FileSizeDetectorConfig struct {
	Enabled    bool `yaml:"enabled"`
	MaxLines   int  `yaml:"max_lines"`
	Confidence int  `yaml:"confidence"`
}

// ScoringConfig contains health score weights and status bands.
// These are tunable constants, not fixed law; defaults are documented
// in DefaultConfig.
type ScoringConfig struct {
	Weights SeverityWeights `yaml:"weights"`
	Bands   []ScoreBand     `yaml:"bands"`
}

// SeverityWeights maps each severity to its per-issue penalty
type SeverityWeights struct {
	Low      int `yaml:"low"`
	Medium   int `yaml:"medium"`
	High     int `yaml:"high"`
	Critical int `yaml:"critical"`
}

// ScoreBand maps a minimum score to a status label. Bands are evaluated
// highest minimum first.
type ScoreBand struct {
	Min   int    `yaml:"min"`
	Label string `yaml:"label"`
}

// OutputConfig contains report output settings
type OutputConfig struct {
	Formats              []string `yaml:"formats"` // json, markdown, console, html
	OutputDir            string   `yaml:"output_dir"`
	IncludeSuggestions   bool     `yaml:"include_suggestions"`
	MaxIssuesPerCategory int      `yaml:"max_issues_per_category"`
	HotspotsTopN         int      `yaml:"hotspots_top_n"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level            string `yaml:"level"`
	File             string `yaml:"file"`
	IncludeTimestamp bool   `yaml:"include_timestamp"`
}
