// Package fs provides the cell filesystem and direct glob evaluation.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker walks a directory tree, skipping VCS metadata and caller-chosen directories.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// SkipFunc decides whether the directory at rel (slash separated, relative to the
// walk root) is pruned.
type SkipFunc func(rel string) bool

// WalkFiles yields the files below root as slash separated paths relative to root.
// Unreadable entries are skipped.
func (w *Walker) WalkFiles(root string, skip SkipFunc) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() && path != root {
					return filepath.SkipDir
				}
				return nil
			}

			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return nil
			}
			rel = filepath.ToSlash(rel)

			if d.IsDir() {
				if path != root && (IsVCSDir(d.Name()) || (skip != nil && skip(rel))) {
					return filepath.SkipDir
				}
				return nil
			}

			if !yield(rel) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// IsVCSDir reports whether name is a version-control metadata directory.
func IsVCSDir(name string) bool {
	switch name {
	case ".git", ".jj", ".hg", ".svn":
		return true
	default:
		return false
	}
}
