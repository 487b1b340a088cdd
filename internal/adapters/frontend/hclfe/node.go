package hclfe

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/sandeepsanjusplr/buck/internal/adapters/logger"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
)

// NodeID is the unique identifier for the HCL front end Graft node.
const NodeID graft.ID = "adapter.frontend.hcl"

func init() {
	graft.Register(graft.Node[*FrontEnd]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*FrontEnd, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
