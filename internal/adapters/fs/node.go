package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// FactoryNodeID is the unique identifier for the filesystem factory Graft node.
	FactoryNodeID graft.ID = "adapter.fs.factory"
	// GlobberNodeID is the unique identifier for the direct globber factory Graft node.
	GlobberNodeID graft.ID = "adapter.fs.globber"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.FilesystemFactory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FilesystemFactory, error) {
			return NewFactory(), nil
		},
	})

	graft.Register(graft.Node[ports.GlobberFactory]{
		ID:        GlobberNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.GlobberFactory, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewGlobberFactory(walker), nil
		},
	})
}
