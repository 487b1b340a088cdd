// Package watch answers glob queries from an fsnotify-maintained file index.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	fsadapter "github.com/sandeepsanjusplr/buck/internal/adapters/fs"
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.WatchService = (*Service)(nil)

// Service keeps an index of every file below a root current by listening to
// filesystem events. Paths in the index are slash separated and root relative.
type Service struct {
	opts      domain.WatchOptions
	walker    *fsadapter.Walker
	logger    ports.Logger
	fsWatcher *fsnotify.Watcher

	mu       sync.RWMutex
	root     string
	files    map[string]struct{}
	packages map[string]struct{} // directories holding a build file
	started  bool

	stopOnce sync.Once
	done     chan struct{}
}

// NewService creates an unstarted Service.
func NewService(walker *fsadapter.Walker, logger ports.Logger, opts domain.WatchOptions) (*Service, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	return &Service{
		opts:      opts,
		walker:    walker,
		logger:    logger,
		fsWatcher: w,
		files:     make(map[string]struct{}),
		packages:  make(map[string]struct{}),
		done:      make(chan struct{}),
	}, nil
}

// Start indexes root and begins watching it recursively. Events are processed
// until ctx is done or Stop is called.
func (s *Service) Start(ctx context.Context, root string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return zerr.With(zerr.New("watch service already started"), "root", s.root)
	}
	s.root = filepath.Clean(root)

	if err := s.addTree(""); err != nil {
		return err
	}
	s.started = true

	go s.processEvents(ctx)
	return nil
}

// Stop stops watching and releases the underlying watcher.
func (s *Service) Stop() error {
	var err error
	s.stopOnce.Do(func() {
		err = s.fsWatcher.Close()
		<-s.doneIfStarted()
	})
	return err
}

func (s *Service) doneIfStarted() <-chan struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.started {
		return s.done
	}
	closed := make(chan struct{})
	close(closed)
	return closed
}

// Glob answers a glob from the index. It fails with ErrWatchQueryTimeout when the
// answer is not ready within the configured query timeout.
func (s *Service) Glob(ctx context.Context, dir string, include, exclude []string) ([]string, error) {
	for _, p := range slices.Concat(include, exclude) {
		if err := fsadapter.ValidatePattern(p); err != nil {
			return nil, err
		}
	}

	if s.opts.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.QueryTimeout)
		defer cancel()
	}

	type result struct {
		files []string
		err   error
	}
	ch := make(chan result, 1)
	go func() {
		files, err := s.query(ctx, dir, include, exclude)
		ch <- result{files, err}
	}()

	select {
	case r := <-ch:
		return r.files, r.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err := zerr.Wrap(domain.ErrWatchQueryTimeout, "glob query did not complete")
			err = zerr.With(err, "dir", dir)
			return nil, zerr.With(err, "timeout", s.opts.QueryTimeout.String())
		}
		return nil, ctx.Err()
	}
}

func (s *Service) query(ctx context.Context, dir string, include, exclude []string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, zerr.New("watch service is not started")
	}

	base, err := s.relativize(dir)
	if err != nil {
		return nil, err
	}

	var matches []string
	for file := range s.files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rel, ok := cutDir(file, base)
		if !ok || s.crossesPackage(base, rel) {
			continue
		}
		if fsadapter.MatchAny(rel, include, exclude) {
			matches = append(matches, rel)
		}
	}
	slices.Sort(matches)
	return matches, nil
}

// crossesPackage reports whether rel (relative to base) lies in a subpackage of base.
func (s *Service) crossesPackage(base, rel string) bool {
	d := path.Dir(rel)
	for d != "." {
		if _, ok := s.packages[path.Join(base, d)]; ok {
			return true
		}
		d = path.Dir(d)
	}
	return false
}

func (s *Service) relativize(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		return strings.Trim(path.Clean(filepath.ToSlash(dir)), "/"), nil
	}
	rel, err := filepath.Rel(s.root, filepath.Clean(dir))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(zerr.New("directory is outside the watched root"), "dir", dir)
	}
	if rel == "." {
		return "", nil
	}
	return filepath.ToSlash(rel), nil
}

func cutDir(file, base string) (string, bool) {
	if base == "" {
		return file, true
	}
	return strings.CutPrefix(file, base+"/")
}

// addTree indexes and watches the directory rel. mu must be held for writing.
func (s *Service) addTree(rel string) error {
	abs := filepath.Join(s.root, filepath.FromSlash(rel))

	err := filepath.WalkDir(abs, func(p string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil //nolint:nilerr // unreadable directories are skipped
		}
		r, relErr := filepath.Rel(s.root, p)
		if relErr != nil {
			return nil //nolint:nilerr // cannot happen below root
		}
		r = filepath.ToSlash(r)
		if r != "." && (fsadapter.IsIgnored(r, s.opts.Ignore) || fsadapter.IsVCSDir(d.Name())) {
			return filepath.SkipDir
		}
		return s.fsWatcher.Add(p)
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch directory"), "dir", abs)
	}

	for file := range s.walker.WalkFiles(abs, func(r string) bool {
		return fsadapter.IsIgnored(path.Join(rel, r), s.opts.Ignore)
	}) {
		s.indexFile(path.Join(rel, file))
	}
	return nil
}

func (s *Service) indexFile(rel string) {
	s.files[rel] = struct{}{}
	if path.Base(rel) == s.opts.BuildFileName {
		s.packages[path.Dir(rel)] = struct{}{}
	}
}

// removePath drops rel and, when it was a directory, everything below it.
func (s *Service) removePath(rel string) {
	delete(s.files, rel)
	if path.Base(rel) == s.opts.BuildFileName {
		delete(s.packages, path.Dir(rel))
	}
	prefix := rel + "/"
	for f := range s.files {
		if strings.HasPrefix(f, prefix) {
			delete(s.files, f)
		}
	}
	for p := range s.packages {
		if p == rel || strings.HasPrefix(p, prefix) {
			delete(s.packages, p)
		}
	}
}

func (s *Service) processEvents(ctx context.Context) {
	defer close(s.done)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-s.fsWatcher.Events:
			if !ok {
				return
			}
			s.apply(event)
		case err, ok := <-s.fsWatcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("file watcher error", "error", err.Error())
		}
	}
}

// apply updates the index for one event.
func (s *Service) apply(event fsnotify.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rel, err := filepath.Rel(s.root, event.Name)
	if err != nil {
		return
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || strings.HasPrefix(rel, "../") || fsadapter.IsIgnored(rel, s.opts.Ignore) {
		return
	}

	switch {
	case event.Has(fsnotify.Create):
		info, err := os.Stat(event.Name)
		if err != nil {
			return
		}
		if info.IsDir() {
			if err := s.addTree(rel); err != nil {
				s.logger.Warn("cannot watch new directory", "dir", rel)
			}
			return
		}
		s.indexFile(rel)
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		s.removePath(rel)
	}
}
