package detector

import (
	"path/filepath"
	"regexp"
	"strings"
)

// nestingMode selects how nesting depth is inferred for a file
type nestingMode int

const (
	nestingByBrace nestingMode = iota
	nestingByIndent
)

// languageCues holds the minimal per-extension structural hints the
// detectors need: how nesting is expressed, what starts a comment, and
// what a function signature looks like. Supporting a new language is a
// matter of adding a table entry, not a parser.
type languageCues struct {
	mode            nestingMode
	commentPrefixes []string
	funcPattern     *regexp.Regexp // groups: 1 = name, 2 = parameter list
}

var (
	pyFunc = regexp.MustCompile(`^\s*(?:async\s+)?def\s+(\w+)\s*\(([^)]*)\)`)
	rbFunc = regexp.MustCompile(`^\s*def\s+(\w+)\s*\(([^)]*)\)`)
	goFunc = regexp.MustCompile(`^\s*func\s+(?:\([^)]*\)\s*)?(\w+)\s*\(([^)]*)\)`)
	jsFunc = regexp.MustCompile(`^\s*(?:export\s+)?(?:async\s+)?function\s*\*?\s*(\w+)\s*\(([^)]*)\)`)
	rsFunc = regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?fn\s+(\w+)\s*(?:<[^>]*>)?\s*\(([^)]*)\)`)
	cFunc  = regexp.MustCompile(`^\s*(?:[\w\[\]<>,&*:]+\s+)+(\w+)\s*\(([^)]*)\)\s*\{?\s*$`)
)

var slashComments = []string{"//", "/*", "*"}

var cueTable = map[string]languageCues{
	".py": {nestingByIndent, []string{"#"}, pyFunc},
	".rb": {nestingByIndent, []string{"#"}, rbFunc},
	".go": {nestingByBrace, slashComments, goFunc},
	".js": {nestingByBrace, slashComments, jsFunc},
	".ts": {nestingByBrace, slashComments, jsFunc},
	".rs": {nestingByBrace, slashComments, rsFunc},

	// C-family signatures share one heuristic pattern
	".c":    {nestingByBrace, slashComments, cFunc},
	".cpp":  {nestingByBrace, slashComments, cFunc},
	".cs":   {nestingByBrace, slashComments, cFunc},
	".java": {nestingByBrace, slashComments, cFunc},
}

// defaultCues covers extensions not in the table: indentation-based
// nesting with common comment styles, and no signature pattern (the
// parameter detector stays silent rather than guessing).
var defaultCues = languageCues{
	mode:            nestingByIndent,
	commentPrefixes: []string{"#", "//"},
	funcPattern:     nil,
}

func cuesFor(path string) languageCues {
	if cues, ok := cueTable[strings.ToLower(filepath.Ext(path))]; ok {
		return cues
	}
	return defaultCues
}

// cKeywords are control-flow words the C-family signature pattern must
// not mistake for return types
var cKeywords = map[string]bool{
	"if": true, "for": true, "while": true, "switch": true,
	"return": true, "else": true, "case": true, "do": true,
}

// countParams counts declared parameters in a captured parameter list,
// splitting only on top-level commas
func countParams(list string) int {
	s := strings.TrimSpace(list)
	if s == "" {
		return 0
	}

	depth := 0
	count := 1
	for _, r := range s {
		switch r {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				count++
			}
		}
	}
	return count
}
