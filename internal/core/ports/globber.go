package ports

import (
	"context"

	"github.com/sandeepsanjusplr/buck/internal/core/domain"
)

//go:generate mockgen -source=globber.go -destination=mocks/mock_globber.go -package=mocks

// Globber evaluates glob expressions from build files.
type Globber interface {
	// Glob returns the files below dir matching any include pattern and no exclude
	// pattern. Results are slash separated, relative to dir and sorted.
	Glob(ctx context.Context, dir string, include, exclude []string) ([]string, error)
}

// WatchService is a long-lived file index that can answer globs without walking
// the filesystem.
type WatchService interface {
	Globber
	// Start begins watching root recursively.
	Start(ctx context.Context, root string) error
	// Stop releases the service.
	Stop() error
}

// WatchServiceFactory creates watch services for cells whose configuration asks
// for watch-backed globbing.
type WatchServiceFactory interface {
	// NewWatchService returns an unstarted watch service.
	NewWatchService(opts domain.WatchOptions) (WatchService, error)
}

// GlobberFactory creates globbers that walk the filesystem on every call.
type GlobberFactory interface {
	// NewGlobber returns a Globber for one cell. Directories holding buildFileName
	// are subpackages and are never descended into.
	NewGlobber(fs Filesystem, buildFileName string) Globber
}
