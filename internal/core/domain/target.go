package domain

import (
	"path"
	"strings"

	"github.com/bazelbuild/bazel-gazelle/label"
	"go.trai.ch/zerr"
)

// TargetSpec is a build target as written by a user, before its cell name is resolved to a root.
type TargetSpec struct {
	CellName  string
	BasePath  string
	ShortName string
}

// BuildTarget identifies one rule inside one cell.
// CellPath is the absolute root of the owning cell; BasePath is slash separated and
// relative to that root ("" for the root package).
type BuildTarget struct {
	CellPath  string
	CellName  string
	BasePath  string
	ShortName string
}

// FullyQualifiedName returns the target in "cell//base/path:name" form.
func (t BuildTarget) FullyQualifiedName() string {
	return t.CellName + "//" + t.BasePath + ":" + t.ShortName
}

// String implements fmt.Stringer.
func (t BuildTarget) String() string {
	return t.FullyQualifiedName()
}

// ParseTargetSpec parses "//pkg:name", "cell//pkg:name" or "@cell//pkg:name".
// A missing ":name" defaults to the last package component.
func ParseTargetSpec(raw string) (TargetSpec, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return TargetSpec{}, zerr.With(zerr.Wrap(ErrInvalidTarget, "empty target"), "target", raw)
	}

	// Buck writes cell-qualified targets without the leading '@' Bazel expects.
	if idx := strings.Index(s, "//"); idx > 0 && !strings.HasPrefix(s, "@") {
		s = "@" + s
	}

	l, err := label.Parse(s)
	if err != nil {
		return TargetSpec{}, zerr.With(zerr.Wrap(ErrInvalidTarget, err.Error()), "target", raw)
	}
	if l.Relative {
		return TargetSpec{}, zerr.With(
			zerr.Wrap(ErrInvalidTarget, "relative targets need a package context"),
			"target", raw,
		)
	}

	return TargetSpec{
		CellName:  l.Repo,
		BasePath:  path.Clean("/" + l.Pkg)[1:],
		ShortName: l.Name,
	}, nil
}

// String returns the spec in "cell//base/path:name" form.
func (s TargetSpec) String() string {
	return s.CellName + "//" + s.BasePath + ":" + s.ShortName
}
