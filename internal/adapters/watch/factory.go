package watch

import (
	fsadapter "github.com/sandeepsanjusplr/buck/internal/adapters/fs"
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
)

var _ ports.WatchServiceFactory = (*Factory)(nil)

// Factory creates watch services.
type Factory struct {
	walker *fsadapter.Walker
	logger ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(walker *fsadapter.Walker, logger ports.Logger) *Factory {
	return &Factory{walker: walker, logger: logger}
}

// NewWatchService returns an unstarted Service.
func (f *Factory) NewWatchService(opts domain.WatchOptions) (ports.WatchService, error) {
	return NewService(f.walker, f.logger, opts)
}
