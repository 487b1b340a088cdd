package fs

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"go.trai.ch/zerr"
)

// ValidatePattern rejects patterns that are malformed or leave the package.
func ValidatePattern(pattern string) error {
	invalid := func(reason string) error {
		return zerr.With(zerr.Wrap(domain.ErrInvalidGlobPattern, reason), "pattern", pattern)
	}

	if pattern == "" {
		return invalid("empty pattern")
	}
	if strings.HasPrefix(pattern, "/") {
		return invalid("pattern must be relative to the package")
	}
	for _, seg := range strings.Split(pattern, "/") {
		if seg == ".." || seg == "." {
			return invalid("pattern must not contain '.' or '..' segments")
		}
	}
	if !doublestar.ValidatePattern(pattern) {
		return invalid(doublestar.ErrBadPattern.Error())
	}
	return nil
}

// MatchPattern matches a slash separated path against a glob pattern. "*", "?",
// character classes and "{a,b}" alternatives match within one segment; a "**"
// segment matches zero or more segments. Malformed patterns match nothing.
func MatchPattern(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}

// MatchAny reports whether name matches an include pattern and no exclude pattern.
func MatchAny(name string, include, exclude []string) bool {
	matched := false
	for _, p := range include {
		if MatchPattern(p, name) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	for _, p := range exclude {
		if MatchPattern(p, name) {
			return false
		}
	}
	return true
}
