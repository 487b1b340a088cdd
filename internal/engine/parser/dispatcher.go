// Package parser chooses the build-file parser for a cell: a single front end
// when one syntax is enabled, or a syntax-dispatching hybrid when polyglot
// parsing is on.
package parser

import (
	"maps"
	"slices"
	"strings"

	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
	"go.trai.ch/zerr"
)

// Mode labels reported to metrics.
const (
	ModeSingle   = "single"
	ModePolyglot = "polyglot"
)

// New creates the parser described by opts. Front ends are keyed by the syntax
// they read.
func New(
	opts domain.ParserOptions,
	frontEnds map[domain.Syntax]ports.FrontEnd,
	fs ports.Filesystem,
	globber ports.Globber,
) (ports.BuildFileParser, error) {
	if !opts.Polyglot {
		fe, ok := frontEnds[opts.DefaultSyntax]
		if !ok {
			return nil, missingFrontEnd(opts.DefaultSyntax, frontEnds)
		}
		return fe.NewParser(opts, fs, globber)
	}

	if _, ok := frontEnds[opts.DefaultSyntax]; !ok {
		return nil, missingFrontEnd(opts.DefaultSyntax, frontEnds)
	}

	parsers := make(map[domain.Syntax]ports.BuildFileParser, len(frontEnds))
	for _, syntax := range slices.Sorted(maps.Keys(frontEnds)) {
		p, err := frontEnds[syntax].NewParser(opts, fs, globber)
		if err != nil {
			for _, created := range parsers {
				_ = created.Close()
			}
			return nil, err
		}
		parsers[syntax] = p
	}
	return NewHybrid(parsers, opts.DefaultSyntax, fs), nil
}

func missingFrontEnd(syntax domain.Syntax, frontEnds map[domain.Syntax]ports.FrontEnd) error {
	enabled := make([]string, 0, len(frontEnds))
	for _, s := range slices.Sorted(maps.Keys(frontEnds)) {
		enabled = append(enabled, string(s))
	}
	err := zerr.With(zerr.Wrap(domain.ErrParserConfiguration, "no front end for syntax "+string(syntax)), "syntax", string(syntax))
	return zerr.With(err, "enabled", strings.Join(enabled, ","))
}
