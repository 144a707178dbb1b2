package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"debt-detective/src/config"
	"debt-detective/src/util"
)

// FileEntry identifies one eligible file discovered during traversal
type FileEntry struct {
	Path string // absolute path
	Rel  string // path relative to the analysis root
	Size int64
}

// Walker traverses a directory tree and yields eligible files in
// deterministic lexical order. Excluded directories are pruned without
// reading their contents; symlink cycles terminate via a visited set of
// resolved real paths.
type Walker struct {
	cfg        config.AnalysisConfig
	exclusions *util.ExclusionMatcher
	extensions map[string]bool
}

// NewWalker creates a walker from analysis settings
func NewWalker(cfg config.AnalysisConfig) *Walker {
	exts := make(map[string]bool, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		exts[strings.ToLower(ext)] = true
	}

	return &Walker{
		cfg:        cfg,
		exclusions: util.NewExclusionMatcher(cfg.Exclusions),
		extensions: exts,
	}
}

// Walk returns every eligible file under root in traversal order, plus
// the count of files skipped for being oversized or unreadable. An
// invalid root is the only fatal error.
func (w *Walker) Walk(root string) ([]FileEntry, int, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid root path %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, 0, fmt.Errorf("root path %q is not a directory", root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, 0, fmt.Errorf("resolving root path: %w", err)
	}

	state := &walkState{visited: make(map[string]bool)}
	w.walkDir(absRoot, absRoot, state)
	return state.files, state.skipped, nil
}

type walkState struct {
	files   []FileEntry
	skipped int
	visited map[string]bool // resolved real paths of visited directories
}

func (w *Walker) walkDir(root, dir string, state *walkState) {
	real, err := filepath.EvalSymlinks(dir)
	if err != nil {
		util.Warn("Skipping unresolvable directory %s: %v", dir, err)
		return
	}
	if state.visited[real] {
		util.Debug("Skipping already-visited directory %s", dir)
		return
	}
	state.visited[real] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		util.Warn("Skipping unreadable directory %s: %v", dir, err)
		return
	}

	// os.ReadDir sorts entries by name, which fixes traversal order
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		rel, err := filepath.Rel(root, path)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)

		isDir, isRegular, size, ok := w.resolveEntry(path, entry)
		if !ok {
			state.skipped++
			continue
		}

		if isDir {
			if w.exclusions.Matches(rel + "/") {
				util.Debug("Pruning excluded directory: %s", rel)
				continue
			}
			w.walkDir(root, path, state)
			continue
		}

		if !isRegular || w.exclusions.Matches(rel) {
			continue
		}
		if !w.extensions[strings.ToLower(filepath.Ext(path))] {
			continue
		}
		if size > w.cfg.MaxFileSizeBytes {
			util.Debug("Skipping oversized file %s (%d bytes)", rel, size)
			state.skipped++
			continue
		}

		state.files = append(state.files, FileEntry{Path: path, Rel: rel, Size: size})
	}
}

// resolveEntry classifies a directory entry, following symlinks to
// their targets. ok is false when the entry cannot be stat'd.
func (w *Walker) resolveEntry(path string, entry fs.DirEntry) (isDir, isRegular bool, size int64, ok bool) {
	if entry.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			util.Warn("Skipping broken symlink %s: %v", path, err)
			return false, false, 0, false
		}
		return info.IsDir(), info.Mode().IsRegular(), info.Size(), true
	}

	if entry.IsDir() {
		return true, false, 0, true
	}

	info, err := entry.Info()
	if err != nil {
		util.Warn("Skipping unreadable entry %s: %v", path, err)
		return false, false, 0, false
	}
	return false, info.Mode().IsRegular(), info.Size(), true
}
