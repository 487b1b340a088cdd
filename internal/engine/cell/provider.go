// Package cell models repository checkouts (cells) and the session-scoped
// provider that constructs exactly one Cell per root.
package cell

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// Dependencies are the collaborators a Provider builds cells from.
type Dependencies struct {
	Loader        ports.ConfigLoader
	Filesystems   ports.FilesystemFactory
	RuleTypes     ports.RuleTypesFactory
	FrontEnds     map[domain.Syntax]ports.FrontEnd
	Globbers      ports.GlobberFactory
	WatchServices ports.WatchServiceFactory // optional
	Tracer        ports.Tracer
	Metrics       ports.Metrics
	Logger        ports.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithPreviousSession lets the new session reuse realized state from cells of
// prev that are compatible for caching.
func WithPreviousSession(prev *Provider) Option {
	return func(p *Provider) {
		p.previous.Store(prev)
	}
}

// Provider is the session-scoped authority over cells. It holds at most one Cell
// per canonical root; concurrent first requests for a root share one construction.
type Provider struct {
	deps      Dependencies
	root      string
	sessionID string
	previous  atomic.Pointer[Provider]

	cells sync.Map // root -> *Cell
	group singleflight.Group
}

// NewProvider creates a Provider for the project rooted at root.
func NewProvider(root string, deps Dependencies, opts ...Option) (*Provider, error) {
	canonical, err := domain.CanonicalPath(root)
	if err != nil {
		return nil, err
	}
	p := &Provider{deps: deps, root: canonical, sessionID: uuid.NewString()}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// SessionID identifies this provider's session.
func (p *Provider) SessionID() string {
	return p.sessionID
}

// RootPath returns the canonical root of the project cell.
func (p *Provider) RootPath() string {
	return p.root
}

// Root returns the project cell.
func (p *Provider) Root(ctx context.Context) (*Cell, error) {
	return p.CellByPath(ctx, p.root)
}

// CellByPath returns the Cell rooted at path, constructing it on first use.
// A failed construction is not cached.
func (p *Provider) CellByPath(ctx context.Context, path string) (*Cell, error) {
	root, err := domain.CanonicalPath(path)
	if err != nil {
		return nil, err
	}
	if c, ok := p.cells.Load(root); ok {
		return c.(*Cell), nil
	}

	v, err, _ := p.group.Do(root, func() (any, error) {
		if c, ok := p.cells.Load(root); ok {
			return c, nil
		}
		// Shared by every concurrent caller; detached from their cancellation.
		c, err := p.newCell(context.WithoutCancel(ctx), root)
		if err != nil {
			return nil, err
		}
		actual, _ := p.cells.LoadOrStore(root, c)
		return actual, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Cell), nil
}

// LoadedCells returns a snapshot of every cell constructed so far, keyed by root.
func (p *Provider) LoadedCells() map[string]*Cell {
	out := make(map[string]*Cell)
	p.cells.Range(func(k, v any) bool {
		out[k.(string)] = v.(*Cell)
		return true
	})
	return out
}

// Close stops the watch services of every loaded cell and drops the reference
// to the previous session.
func (p *Provider) Close() error {
	p.previous.Store(nil)
	loaded := p.LoadedCells()
	var errs []error
	for _, root := range slices.Sorted(maps.Keys(loaded)) {
		if ws := loaded[root].watch; ws != nil {
			if err := ws.Stop(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (p *Provider) newCell(ctx context.Context, root string) (*Cell, error) {
	ctx, span := p.deps.Tracer.Start(ctx, "load_cell")
	defer span.End()
	span.SetAttribute("cell_root", root)

	cfg, err := p.deps.Loader.Load(root)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	fs, err := p.deps.Filesystems.Open(root, cfg.Ignore())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	known := map[string]struct{}{root: {}}
	for _, r := range cfg.Repositories() {
		known[r] = struct{}{}
	}

	c := &Cell{
		provider:   p,
		root:       root,
		knownRoots: known,
		name:       cfg.CellName(),
		config:     cfg,
		fs:         fs,
		sdk:        domain.ResolveSDKEnvironment(cfg),
	}
	c.seedFrom(p.previousCell(root))
	c.watch = p.startWatch(ctx, c)

	p.deps.Metrics.CellLoaded()
	p.deps.Logger.Debug("loaded cell", "root", root, "known_roots", len(known))
	return c, nil
}

// declaredName returns the name under which the project cell declares root.
// Aliases of one root resolve to the first name in sorted order.
func (p *Provider) declaredName(root string) (string, bool) {
	var repos map[string]string
	if c, ok := p.cells.Load(p.root); ok {
		repos = c.(*Cell).config.Repositories()
	} else if cfg, err := p.deps.Loader.Load(p.root); err == nil {
		repos = cfg.Repositories()
	}
	for _, name := range slices.Sorted(maps.Keys(repos)) {
		if repos[name] == root {
			return name, true
		}
	}
	return "", false
}

func (p *Provider) previousCell(root string) *Cell {
	prev := p.previous.Load()
	if prev == nil {
		return nil
	}
	if c, ok := prev.cells.Load(root); ok {
		return c.(*Cell)
	}
	return nil
}

// startWatch starts a watch service when the cell asks for watch-backed globbing.
// Cells fall back to direct globbing when the service is unavailable.
func (p *Provider) startWatch(ctx context.Context, c *Cell) ports.WatchService {
	pc := c.config.Parser()
	if pc.GlobHandler != domain.GlobHandlerWatch || p.deps.WatchServices == nil {
		return nil
	}

	ws, err := p.deps.WatchServices.NewWatchService(domain.WatchOptions{
		BuildFileName: pc.BuildFileName,
		Ignore:        c.fs.IgnorePaths(),
		QueryTimeout:  pc.WatchQueryTimeout,
	})
	if err == nil {
		// The service outlives the request that loaded the cell.
		err = ws.Start(context.WithoutCancel(ctx), c.root)
	}
	if err != nil {
		p.deps.Logger.Warn("watch service unavailable, using direct globbing", "root", c.root, "error", err.Error())
		return nil
	}
	return ws
}
