package ports

import (
	"context"

	"github.com/sandeepsanjusplr/buck/internal/core/domain"
)

//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks

// BuildFileParser reads build files into rule declarations.
//
// A parser is a scoped resource bound to one parse session: callers must Close it
// when done, whether parsing succeeded or not. Parse is safe for concurrent use.
type BuildFileParser interface {
	// Parse reads the build file at the given absolute path.
	Parse(ctx context.Context, buildFile string) (*domain.BuildFileManifest, error)
	// Close releases the parser and everything it wraps.
	Close() error
}

// FrontEnd creates parsers for one build-file syntax.
type FrontEnd interface {
	// Syntax returns the syntax this front end reads.
	Syntax() domain.Syntax
	// NewParser creates a parser for one parse session.
	NewParser(opts domain.ParserOptions, fs Filesystem, globber Globber) (BuildFileParser, error)
}
