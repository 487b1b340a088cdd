package watch

import (
	"context"

	"github.com/grindlemire/graft"
	fsadapter "github.com/sandeepsanjusplr/buck/internal/adapters/fs"
	"github.com/sandeepsanjusplr/buck/internal/adapters/logger"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
)

// NodeID is the unique identifier for the watch service factory Graft node.
const NodeID graft.ID = "adapter.watch"

func init() {
	graft.Register(graft.Node[ports.WatchServiceFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fsadapter.WalkerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.WatchServiceFactory, error) {
			walker, err := graft.Dep[*fsadapter.Walker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(walker, log), nil
		},
	})
}
