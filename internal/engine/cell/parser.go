package cell

import (
	"context"

	"github.com/google/uuid"
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
	"github.com/sandeepsanjusplr/buck/internal/engine/parser"
)

// ParserOption adjusts one parser request.
type ParserOption func(*parserRequest)

type parserRequest struct {
	profiling bool
}

// WithProfiling records per-file parse timings and logs them when the parser is closed.
func WithProfiling(enabled bool) ParserOption {
	return func(r *parserRequest) {
		r.profiling = enabled
	}
}

// CreateBuildFileParser returns a fresh parser for this cell. The caller owns
// the parser and must Close it.
func (c *Cell) CreateBuildFileParser(ctx context.Context, opts ...ParserOption) (ports.BuildFileParser, error) {
	var req parserRequest
	for _, opt := range opts {
		opt(&req)
	}

	registry, err := c.KnownBuildRuleTypes(ctx)
	if err != nil {
		return nil, err
	}

	popts := c.ParserOptions(registry, req.profiling)
	var globber ports.Globber = c.provider.deps.Globbers.NewGlobber(c.fs, popts.BuildFileName)
	if popts.GlobHandler == domain.GlobHandlerWatch {
		globber = c.watch
	}

	deps := c.provider.deps
	p, err := parser.New(popts, deps.FrontEnds, c.fs, globber)
	if err != nil {
		return nil, err
	}

	mode := parser.ModeSingle
	if popts.Polyglot {
		mode = parser.ModePolyglot
	}
	deps.Metrics.ParserCreated(mode)
	return parser.NewInstrumented(p, deps.Tracer, deps.Metrics, deps.Logger, req.profiling), nil
}

// ParserOptions resolves the parser settings of this cell. The result is
// computed per request and never cached.
func (c *Cell) ParserOptions(registry *domain.RuleTypeRegistry, profiling bool) domain.ParserOptions {
	pc := c.config.Parser()
	handler := domain.GlobHandlerDirect
	if pc.GlobHandler == domain.GlobHandlerWatch && c.watch != nil {
		handler = domain.GlobHandlerWatch
	}

	return domain.ParserOptions{
		SessionID:         uuid.NewString(),
		ProjectRoot:       c.root,
		CellRoots:         c.CellPathResolver(),
		CellName:          c.CanonicalName(),
		BuildFileName:     pc.BuildFileName,
		DefaultIncludes:   pc.DefaultIncludes,
		IgnorePaths:       c.fs.IgnorePaths(),
		DefaultSyntax:     pc.DefaultBuildFileSyntax,
		Polyglot:          pc.PolyglotParsingEnabled,
		GlobHandler:       handler,
		AllowEmptyGlobs:   pc.AllowEmptyGlobs,
		EnableProfiling:   profiling,
		WatchQueryTimeout: pc.WatchQueryTimeout,
		Descriptions:      registry.AllDescriptions(),
	}
}
