package parser

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
)

var _ ports.BuildFileParser = (*Instrumented)(nil)

// Profiler is implemented by parsers that record per-file timings.
type Profiler interface {
	Profiles() []domain.ParseProfile
}

// Instrumented traces and counts every parse. With profiling enabled it also
// keeps per-file timings and logs them when closed.
type Instrumented struct {
	inner   ports.BuildFileParser
	tracer  ports.Tracer
	metrics ports.Metrics
	logger  ports.Logger
	profile bool
	now     func() time.Time

	mu       sync.Mutex
	profiles []domain.ParseProfile

	closeOnce sync.Once
	closeErr  error
}

// NewInstrumented wraps inner. The wrapper owns inner.
func NewInstrumented(
	inner ports.BuildFileParser,
	tracer ports.Tracer,
	metrics ports.Metrics,
	logger ports.Logger,
	profile bool,
) *Instrumented {
	return &Instrumented{
		inner:   inner,
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
		profile: profile,
		now:     time.Now,
	}
}

// Parse implements ports.BuildFileParser.
func (p *Instrumented) Parse(ctx context.Context, buildFile string) (*domain.BuildFileManifest, error) {
	ctx, span := p.tracer.Start(ctx, "parse_build_file")
	defer span.End()
	span.SetAttribute("build_file", buildFile)

	start := p.now()
	m, err := p.inner.Parse(ctx, buildFile)
	elapsed := p.now().Sub(start)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttribute("syntax", string(m.Syntax))
	span.SetAttribute("rules", len(m.Rules))
	p.metrics.BuildFileParsed(string(m.Syntax), elapsed.Seconds())

	if p.profile {
		p.mu.Lock()
		p.profiles = append(p.profiles, domain.ParseProfile{
			Path:     m.Path,
			Syntax:   m.Syntax,
			Rules:    len(m.Rules),
			Duration: elapsed,
		})
		p.mu.Unlock()
	}
	return m, nil
}

// Profiles returns the recorded timings ordered by path.
func (p *Instrumented) Profiles() []domain.ParseProfile {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := slices.Clone(p.profiles)
	slices.SortFunc(out, func(a, b domain.ParseProfile) int {
		return strings.Compare(a.Path, b.Path)
	})
	return out
}

// Close logs the recorded timings and closes the wrapped parser. Only the first
// call has an effect.
func (p *Instrumented) Close() error {
	p.closeOnce.Do(func() {
		if p.profile {
			for _, prof := range p.Profiles() {
				p.logger.Info("parsed build file",
					"path", prof.Path,
					"syntax", string(prof.Syntax),
					"rules", prof.Rules,
					"duration", prof.Duration.String(),
				)
			}
		}
		p.closeErr = p.inner.Close()
	})
	return p.closeErr
}
