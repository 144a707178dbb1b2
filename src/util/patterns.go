package util

import (
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// ExclusionMatcher matches paths against gitignore-style exclusion
// patterns. Matching is done on slash-separated paths relative to the
// analysis root, so directory patterns like "vendor/" prune whole
// subtrees.
type ExclusionMatcher struct {
	matcher *ignore.GitIgnore
}

// NewExclusionMatcher compiles a matcher from exclusion patterns
func NewExclusionMatcher(patterns []string) *ExclusionMatcher {
	return &ExclusionMatcher{
		matcher: ignore.CompileIgnoreLines(patterns...),
	}
}

// Matches reports whether a root-relative path is excluded
func (m *ExclusionMatcher) Matches(relPath string) bool {
	if m.matcher == nil || relPath == "" || relPath == "." {
		return false
	}
	return m.matcher.MatchesPath(filepathToSlash(relPath))
}

func filepathToSlash(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}
