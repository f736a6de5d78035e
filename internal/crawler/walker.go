// Package crawler implements spec.md §4.7: walking a root directory,
// invoking the pipeline per file, and materializing output files.
package crawler

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// WalkOptions controls which files WalkFiles visits (spec.md §4.7 "Skip if
// filename matches file_exclusions ... Hidden files are skipped when
// configured").
type WalkOptions struct {
	FileExclusions []string
	SkipHidden     bool
}

// matchesExclusion reports whether name matches one of patterns. Each
// pattern is either an exact filename, or a glob (`*.ext`, `prefix*`,
// `*substr*`) matched via doublestar, the same library the teacher uses
// for its own include/exclude glob handling.
func matchesExclusion(name string, patterns []string) bool {
	for _, p := range patterns {
		if p == name {
			return true
		}
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

// WalkFiles walks root depth-first in lexical order, returning the
// root-relative path of every regular file that does not match
// opts.FileExclusions (and is not a dotfile when opts.SkipHidden is set).
// Directories themselves are never returned; a directory whose name
// matches an exclusion pattern is pruned entirely.
func WalkFiles(root string, opts WalkOptions) ([]string, error) {
	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		name := info.Name()
		if opts.SkipHidden && strings.HasPrefix(name, ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if matchesExclusion(name, opts.FileExclusions) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
