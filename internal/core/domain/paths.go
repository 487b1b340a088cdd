package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// CanonicalPath returns the absolute, cleaned form of p. Cells are keyed by this form.
func CanonicalPath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve absolute path"), "path", p)
	}
	return filepath.Clean(abs), nil
}

// HasPathPrefix reports whether prefix equals p or is one of its ancestors.
// Both paths must be clean. Matching is per component, so "/a/b" is a prefix of
// "/a/b/c" but not of "/a/bc".
func HasPathPrefix(p, prefix string) bool {
	if p == prefix {
		return true
	}
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(p, prefix)
}
