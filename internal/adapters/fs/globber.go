package fs

import (
	"context"
	"path"
	"path/filepath"
	"slices"

	"github.com/sandeepsanjusplr/buck/internal/core/ports"
)

var (
	_ ports.Globber        = (*Globber)(nil)
	_ ports.GlobberFactory = (*GlobberFactory)(nil)
)

// Globber evaluates globs by walking the filesystem on every call. Globs never
// descend into ignored directories or into subpackages, i.e. directories that
// carry their own build file.
type Globber struct {
	walker        *Walker
	fs            ports.Filesystem
	buildFileName string
}

// NewGlobber creates a direct Globber for the given cell filesystem.
func NewGlobber(walker *Walker, filesystem ports.Filesystem, buildFileName string) *Globber {
	return &Globber{walker: walker, fs: filesystem, buildFileName: buildFileName}
}

// Glob returns the files below dir matching include and not exclude.
func (g *Globber) Glob(ctx context.Context, dir string, include, exclude []string) ([]string, error) {
	for _, p := range slices.Concat(include, exclude) {
		if err := ValidatePattern(p); err != nil {
			return nil, err
		}
	}

	dir = g.fs.Resolve(dir)
	base, err := g.fs.Relativize(dir)
	if err != nil {
		return nil, err
	}
	ignore := g.fs.IgnorePaths()

	skip := func(rel string) bool {
		if IsIgnored(path.Join(base, rel), ignore) {
			return true
		}
		return g.fs.IsFile(filepath.Join(dir, filepath.FromSlash(rel), g.buildFileName))
	}

	var matches []string
	for rel := range g.walker.WalkFiles(dir, skip) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if MatchAny(rel, include, exclude) {
			matches = append(matches, rel)
		}
	}
	slices.Sort(matches)
	return matches, nil
}

// GlobberFactory creates direct Globbers sharing one Walker.
type GlobberFactory struct {
	walker *Walker
}

// NewGlobberFactory creates a GlobberFactory.
func NewGlobberFactory(walker *Walker) *GlobberFactory {
	return &GlobberFactory{walker: walker}
}

// NewGlobber implements ports.GlobberFactory.
func (f *GlobberFactory) NewGlobber(filesystem ports.Filesystem, buildFileName string) ports.Globber {
	return NewGlobber(f.walker, filesystem, buildFileName)
}
