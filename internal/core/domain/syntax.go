package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Syntax names one build-file front end.
type Syntax string

const (
	// SyntaxYAML is the declarative YAML front end.
	SyntaxYAML Syntax = "yaml"
	// SyntaxHCL is the HCL front end, which supports glob() expressions.
	SyntaxHCL Syntax = "hcl"
)

// ParseSyntax maps a configured or marked syntax name to a Syntax.
// Unknown names are returned as-is alongside ErrInvalidSyntax so callers can report them.
func ParseSyntax(s string) (Syntax, error) {
	name := Syntax(strings.ToLower(strings.TrimSpace(s)))
	switch name {
	case SyntaxYAML, SyntaxHCL:
		return name, nil
	default:
		return name, zerr.With(zerr.Wrap(ErrInvalidSyntax, "unrecognized syntax"), "syntax", s)
	}
}

// GlobHandler selects how glob expressions in build files are evaluated.
type GlobHandler string

const (
	// GlobHandlerDirect walks the filesystem for every glob.
	GlobHandlerDirect GlobHandler = "direct"
	// GlobHandlerWatch answers globs from the file-watch service index.
	GlobHandlerWatch GlobHandler = "watch"
)

// ParseGlobHandler validates a configured glob handler name. Empty means direct.
func ParseGlobHandler(s string) (GlobHandler, error) {
	switch GlobHandler(strings.ToLower(strings.TrimSpace(s))) {
	case "", GlobHandlerDirect:
		return GlobHandlerDirect, nil
	case GlobHandlerWatch:
		return GlobHandlerWatch, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidGlobHandler, "unrecognized glob handler"), "glob_handler", s)
	}
}
