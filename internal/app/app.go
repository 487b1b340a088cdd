// Package app implements the application layer for buck.
package app

import (
	"context"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
	"github.com/sandeepsanjusplr/buck/internal/engine/cell"
	"github.com/sandeepsanjusplr/buck/internal/engine/parser"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App answers questions about the cells of one project. Every call opens a new
// session, so configuration edits between calls are picked up.
type App struct {
	deps     cell.Dependencies
	logger   ports.Logger
	previous *cell.Provider
	mu       sync.Mutex
}

// New creates a new App instance.
func New(deps cell.Dependencies) *App {
	return &App{deps: deps, logger: deps.Logger}
}

// Session opens a provider for the project rooted at root and loads the root
// cell. Realized state from the previous session is reused where compatible.
func (a *App) Session(ctx context.Context, root string) (*cell.Provider, *cell.Cell, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var opts []cell.Option
	if a.previous != nil {
		opts = append(opts, cell.WithPreviousSession(a.previous))
	}
	p, err := cell.NewProvider(root, a.deps, opts...)
	if err != nil {
		return nil, nil, err
	}
	rootCell, err := p.Root(ctx)
	if err != nil {
		_ = p.Close()
		return nil, nil, zerr.Wrap(err, "failed to load root cell")
	}

	// Closing the previous session cuts its link to older ones; p still
	// reuses realized state from it.
	if a.previous != nil {
		_ = a.previous.Close()
	}
	a.previous = p
	return p, rootCell, nil
}

// Close releases the last session.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.previous == nil {
		return nil
	}
	err := a.previous.Close()
	a.previous = nil
	return err
}

// CellInfo summarizes one cell.
type CellInfo struct {
	Name          string        `json:"name"`
	Root          string        `json:"root"`
	KnownRoots    []string      `json:"known_roots"`
	BuildFileName string        `json:"build_file_name"`
	DefaultSyntax domain.Syntax `json:"default_syntax"`
	Polyglot      bool          `json:"polyglot"`
	GlobHandler   string        `json:"glob_handler"`
	Fingerprint   uint64        `json:"fingerprint"`
}

// CellsOptions configures Cells.
type CellsOptions struct {
	// Check verifies that the root cell declares every reachable cell.
	Check bool
}

// Cells lists the root cell and the cells it declares, ordered by root.
func (a *App) Cells(ctx context.Context, root string, opts CellsOptions) ([]CellInfo, error) {
	_, rootCell, err := a.Session(ctx, root)
	if err != nil {
		return nil, err
	}

	var cells []*cell.Cell
	if opts.Check {
		cells, err = cell.CheckClosure(ctx, rootCell)
	} else {
		cells, err = rootCell.AllCells(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]CellInfo, 0, len(cells))
	for _, c := range cells {
		pc := c.Config().Parser()
		out = append(out, CellInfo{
			Name:          c.CanonicalName(),
			Root:          c.Root(),
			KnownRoots:    c.KnownRoots(),
			BuildFileName: pc.BuildFileName,
			DefaultSyntax: pc.DefaultBuildFileSyntax,
			Polyglot:      pc.PolyglotParsingEnabled,
			GlobHandler:   string(pc.GlobHandler),
			Fingerprint:   c.Config().Fingerprint(),
		})
	}
	return out, nil
}

// Rules returns the rule kinds available in the named cell ("" for the root cell).
func (a *App) Rules(ctx context.Context, root, cellName string) ([]*domain.RuleDescriptor, error) {
	_, rootCell, err := a.Session(ctx, root)
	if err != nil {
		return nil, err
	}
	c, err := cellNamed(ctx, rootCell, cellName)
	if err != nil {
		return nil, err
	}
	return c.AllDescriptions(ctx)
}

// ParseOptions configures Parse.
type ParseOptions struct {
	// Profile records per-file timings.
	Profile bool
}

// ParseResult holds the manifests of every parsed build file, ordered by path.
type ParseResult struct {
	Manifests []*domain.BuildFileManifest `json:"manifests"`
	Profiles  []domain.ParseProfile       `json:"profiles,omitempty"`
}

// Parse reads the build files named by args. Each argument is either a target
// ("//pkg:name", "cell//pkg") or a package directory of the root cell. Files are
// parsed concurrently, one parser per owning cell.
func (a *App) Parse(ctx context.Context, root string, args []string, opts ParseOptions) (*ParseResult, error) {
	_, rootCell, err := a.Session(ctx, root)
	if err != nil {
		return nil, err
	}

	byCell := make(map[*cell.Cell][]string)
	for _, arg := range args {
		owner, buildFile, err := a.locate(ctx, rootCell, arg)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(byCell[owner], buildFile) {
			byCell[owner] = append(byCell[owner], buildFile)
		}
	}

	var (
		mu      sync.Mutex
		result  ParseResult
		parsers []ports.BuildFileParser
	)
	defer func() {
		for _, p := range parsers {
			_ = p.Close()
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for owner, files := range byCell {
		p, err := owner.CreateBuildFileParser(ctx, cell.WithProfiling(opts.Profile))
		if err != nil {
			_ = g.Wait()
			return nil, err
		}
		parsers = append(parsers, p)

		for _, file := range files {
			g.Go(func() error {
				m, err := p.Parse(gctx, file)
				if err != nil {
					return err
				}
				mu.Lock()
				result.Manifests = append(result.Manifests, m)
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(result.Manifests, func(x, y *domain.BuildFileManifest) int {
		return strings.Compare(x.Path, y.Path)
	})
	if opts.Profile {
		for _, p := range parsers {
			if prof, ok := p.(parser.Profiler); ok {
				result.Profiles = append(result.Profiles, prof.Profiles()...)
			}
		}
		slices.SortFunc(result.Profiles, func(x, y domain.ParseProfile) int {
			return strings.Compare(x.Path, y.Path)
		})
	}
	return &result, nil
}

// BuildFile returns the build file that declares target.
func (a *App) BuildFile(ctx context.Context, root, target string) (string, error) {
	_, rootCell, err := a.Session(ctx, root)
	if err != nil {
		return "", err
	}
	t, err := resolveTarget(rootCell, target)
	if err != nil {
		return "", err
	}
	return rootCell.AbsolutePathToBuildFile(ctx, t)
}

// Boundary reports whether package boundaries are enforced for path in the root cell.
func (a *App) Boundary(ctx context.Context, root, path string) (bool, error) {
	_, rootCell, err := a.Session(ctx, root)
	if err != nil {
		return false, err
	}
	return rootCell.IsEnforcingPackageBoundaries(path), nil
}

func (a *App) locate(ctx context.Context, rootCell *cell.Cell, arg string) (*cell.Cell, string, error) {
	if !strings.Contains(arg, "//") {
		dir := rootCell.Filesystem().Resolve(arg)
		buildFile := filepath.Join(dir, rootCell.BuildFileName())
		if !rootCell.Filesystem().IsFile(buildFile) {
			err := zerr.With(zerr.Wrap(domain.ErrMissingBuildFile, "directory has no build file"), "path", arg)
			return nil, "", err
		}
		return rootCell, buildFile, nil
	}

	t, err := resolveTarget(rootCell, arg)
	if err != nil {
		return nil, "", err
	}
	owner, err := rootCell.CellForTarget(ctx, t)
	if err != nil {
		return nil, "", err
	}
	buildFile, err := rootCell.AbsolutePathToBuildFile(ctx, t)
	if err != nil {
		return nil, "", err
	}
	a.logger.Debug("located build file", "target", t.FullyQualifiedName(), "path", buildFile)
	return owner, buildFile, nil
}

func resolveTarget(c *cell.Cell, raw string) (domain.BuildTarget, error) {
	spec, err := domain.ParseTargetSpec(raw)
	if err != nil {
		return domain.BuildTarget{}, err
	}
	return c.ResolveTarget(spec)
}

func cellNamed(ctx context.Context, rootCell *cell.Cell, name string) (*cell.Cell, error) {
	if name == "" {
		return rootCell, nil
	}
	r, ok := rootCell.CellPathResolver()[name]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownCellName, "cell "+name+" is not declared"), "cell", name)
	}
	return rootCell.Cell(ctx, r)
}
