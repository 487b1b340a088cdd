package parser

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildFileParser = (*Hybrid)(nil)

// Hybrid routes each build file to the parser of its syntax. A file selects its
// syntax with a first-line marker such as "# build-syntax: hcl"; unmarked files
// use the default syntax.
type Hybrid struct {
	parsers       map[domain.Syntax]ports.BuildFileParser
	defaultSyntax domain.Syntax
	fs            ports.Filesystem

	closeOnce sync.Once
	closeErr  error
}

// NewHybrid wraps one parser per syntax. The Hybrid owns the wrapped parsers.
func NewHybrid(parsers map[domain.Syntax]ports.BuildFileParser, defaultSyntax domain.Syntax, fs ports.Filesystem) *Hybrid {
	return &Hybrid{parsers: parsers, defaultSyntax: defaultSyntax, fs: fs}
}

// Parse implements ports.BuildFileParser.
func (h *Hybrid) Parse(ctx context.Context, buildFile string) (*domain.BuildFileManifest, error) {
	syntax, err := h.SyntaxOf(buildFile)
	if err != nil {
		return nil, err
	}
	p, ok := h.parsers[syntax]
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrParserConfiguration, "build file asks for a syntax that is not enabled"), "syntax", string(syntax))
		return nil, zerr.With(err, "path", buildFile)
	}
	return p.Parse(ctx, buildFile)
}

// SyntaxOf returns the syntax a build file is written in.
func (h *Hybrid) SyntaxOf(buildFile string) (domain.Syntax, error) {
	data, err := h.fs.ReadFile(buildFile)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrBuildFileReadFailed, err.Error()), "path", buildFile)
	}
	if name, ok := SyntaxMarker(data); ok {
		return domain.Syntax(strings.ToLower(name)), nil
	}
	return h.defaultSyntax, nil
}

// Syntaxes lists the enabled syntaxes.
func (h *Hybrid) Syntaxes() []domain.Syntax {
	return slices.Sorted(maps.Keys(h.parsers))
}

// Close closes every wrapped parser exactly once.
func (h *Hybrid) Close() error {
	h.closeOnce.Do(func() {
		var errs []error
		for _, syntax := range slices.Sorted(maps.Keys(h.parsers)) {
			if err := h.parsers[syntax].Close(); err != nil {
				errs = append(errs, err)
			}
		}
		h.closeErr = errors.Join(errs...)
	})
	return h.closeErr
}

// SyntaxMarker extracts the syntax named on the first line of a build file.
func SyntaxMarker(data []byte) (string, bool) {
	line, _, _ := bufio.NewReader(bytes.NewReader(data)).ReadLine()
	rest, ok := strings.CutPrefix(strings.TrimSpace(string(line)), domain.SyntaxMarkerPrefix)
	if !ok {
		return "", false
	}
	name := strings.TrimSpace(rest)
	return name, name != ""
}
