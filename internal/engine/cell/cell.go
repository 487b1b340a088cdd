package cell

import (
	"context"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cell is one repository checkout: its filesystem, configuration, the roots it
// may reference and its lazily built rule-type registry. Cells are immutable
// once constructed and are identified by their root.
//
// Known roots are stored as paths and resolved through the Provider, so cells
// that know about each other never hold references to one another.
type Cell struct {
	provider   *Provider
	root       string
	knownRoots map[string]struct{}
	name       string
	config     domain.Config
	fs         ports.Filesystem
	sdk        domain.SDKEnvironment
	watch      ports.WatchService

	ruleTypes ruleTypesMemo
}

// Root returns the canonical absolute root of the cell.
func (c *Cell) Root() string {
	return c.root
}

// CanonicalName returns the short name of the cell, or "" for the project cell.
// A cell is named after the project cell's repositories entry that points at it;
// an undeclared cell falls back to its own cell.name, then to its directory name.
func (c *Cell) CanonicalName() string {
	if c.root == c.provider.root {
		return ""
	}
	if name, ok := c.provider.declaredName(c.root); ok {
		return name
	}
	if c.name != "" {
		return c.name
	}
	return filepath.Base(c.root)
}

// Config returns the configuration snapshot of the cell.
func (c *Cell) Config() domain.Config {
	return c.config
}

// Filesystem returns the filesystem of the cell.
func (c *Cell) Filesystem() ports.Filesystem {
	return c.fs
}

// SDKEnvironment returns the platform SDKs visible to the cell.
func (c *Cell) SDKEnvironment() domain.SDKEnvironment {
	return c.sdk
}

// KnownRoots returns the roots this cell may resolve, including its own, sorted.
func (c *Cell) KnownRoots() []string {
	return slices.Sorted(maps.Keys(c.knownRoots))
}

// Equal reports whether both cells have the same root.
func (c *Cell) Equal(other *Cell) bool {
	return other != nil && c.root == other.root
}

// IsCompatibleForCaching reports whether state built for other may be reused
// for c: same root, restart-equal configuration and equal SDK environment.
func (c *Cell) IsCompatibleForCaching(other *Cell) bool {
	return c.Equal(other) &&
		c.config.EqualForRestart(other.config) &&
		c.sdk == other.sdk
}

// Cell returns the cell rooted at path. The path must be one of the known roots.
func (c *Cell) Cell(ctx context.Context, path string) (*Cell, error) {
	root, err := domain.CanonicalPath(path)
	if err != nil {
		return nil, err
	}
	if _, ok := c.knownRoots[root]; !ok {
		known := strings.Join(c.KnownRoots(), ", ")
		msg := "repository " + root + " is not known to cell " + c.root + " (known roots: " + known + ")"
		err := zerr.With(zerr.Wrap(domain.ErrUnknownCell, msg), "path", root)
		err = zerr.With(err, "cell_root", c.root)
		return nil, zerr.With(err, "known_roots", known)
	}
	return c.provider.CellByPath(ctx, root)
}

// CellIgnoringVisibilityCheck returns the cell rooted at path without checking
// that this cell may see it.
func (c *Cell) CellIgnoringVisibilityCheck(ctx context.Context, path string) (*Cell, error) {
	return c.provider.CellByPath(ctx, path)
}

// CellForTarget returns the cell that owns target.
func (c *Cell) CellForTarget(ctx context.Context, target domain.BuildTarget) (*Cell, error) {
	return c.Cell(ctx, target.CellPath)
}

// CellIfKnown returns the owning cell of target, or false when its root is not
// known to this cell.
func (c *Cell) CellIfKnown(ctx context.Context, target domain.BuildTarget) (*Cell, bool, error) {
	root, err := domain.CanonicalPath(target.CellPath)
	if err != nil {
		return nil, false, err
	}
	if _, ok := c.knownRoots[root]; !ok {
		return nil, false, nil
	}
	owner, err := c.provider.CellByPath(ctx, root)
	if err != nil {
		return nil, false, err
	}
	return owner, true, nil
}

// AllCells returns this cell and every known cell once each, ordered by root.
func (c *Cell) AllCells(ctx context.Context) ([]*Cell, error) {
	roots := c.KnownRoots()
	cells := make([]*Cell, 0, len(roots))
	for _, root := range roots {
		if root == c.root {
			cells = append(cells, c)
			continue
		}
		other, err := c.provider.CellByPath(ctx, root)
		if err != nil {
			return nil, err
		}
		cells = append(cells, other)
	}
	return cells, nil
}

// LoadedCells returns every cell the session has constructed, keyed by root.
func (c *Cell) LoadedCells() map[string]*Cell {
	return c.provider.LoadedCells()
}

// CellPathResolver maps every cell name visible to this cell, including its
// own configured name, to a root.
func (c *Cell) CellPathResolver() map[string]string {
	names := c.config.Repositories()
	if c.name != "" {
		names[c.name] = c.root
	}
	return names
}

// ResolveTarget binds a parsed target to the root of the cell it names.
func (c *Cell) ResolveTarget(spec domain.TargetSpec) (domain.BuildTarget, error) {
	root := c.root
	if spec.CellName != "" {
		r, ok := c.CellPathResolver()[spec.CellName]
		if !ok {
			err := zerr.With(zerr.Wrap(domain.ErrUnknownCellName, "cell "+spec.CellName+" is not declared"), "cell", spec.CellName)
			return domain.BuildTarget{}, zerr.With(err, "target", spec.String())
		}
		root = r
	}
	return domain.BuildTarget{
		CellPath:  root,
		CellName:  spec.CellName,
		BasePath:  spec.BasePath,
		ShortName: spec.ShortName,
	}, nil
}

// BuildFileName returns the configured build-file name.
func (c *Cell) BuildFileName() string {
	return c.config.Parser().BuildFileName
}

// AbsolutePathToBuildFileUnsafe returns where target's build file would be,
// without checking that it exists.
func (c *Cell) AbsolutePathToBuildFileUnsafe(ctx context.Context, target domain.BuildTarget) (string, error) {
	_, path, err := c.buildFileOf(ctx, target)
	return path, err
}

// AbsolutePathToBuildFile returns target's build file, failing when it does not exist.
func (c *Cell) AbsolutePathToBuildFile(ctx context.Context, target domain.BuildTarget) (string, error) {
	owner, path, err := c.buildFileOf(ctx, target)
	if err != nil {
		return "", err
	}
	if !owner.fs.IsFile(path) {
		rel, relErr := owner.fs.Relativize(path)
		if relErr != nil {
			rel = path
		}
		err := zerr.Wrap(domain.ErrMissingBuildFile, "no build file found for "+target.FullyQualifiedName())
		err = zerr.With(err, "target", target.FullyQualifiedName())
		return "", zerr.With(err, "path", rel)
	}
	return path, nil
}

func (c *Cell) buildFileOf(ctx context.Context, target domain.BuildTarget) (*Cell, string, error) {
	owner, err := c.CellForTarget(ctx, target)
	if err != nil {
		return nil, "", err
	}
	return owner, filepath.Join(owner.fs.Resolve(target.BasePath), owner.BuildFileName()), nil
}

// IsEnforcingPackageBoundaries reports whether package boundaries apply to path.
// Relative paths are taken from the cell root. The first configured exception
// that is a path prefix of path disables enforcement.
func (c *Cell) IsEnforcingPackageBoundaries(path string) bool {
	pc := c.config.Parser()
	if !pc.EnforcePackageBoundary {
		return false
	}
	abs := c.fs.Resolve(path)
	for _, exception := range pc.PackageBoundaryExceptions {
		if domain.HasPathPrefix(abs, exception) {
			return false
		}
	}
	return true
}
