package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/sandeepsanjusplr/buck/internal/adapters/config"          //nolint:depguard // Wired in app layer
	"github.com/sandeepsanjusplr/buck/internal/adapters/frontend/hclfe"  //nolint:depguard // Wired in app layer
	"github.com/sandeepsanjusplr/buck/internal/adapters/frontend/yamlfe" //nolint:depguard // Wired in app layer
	"github.com/sandeepsanjusplr/buck/internal/adapters/fs"              //nolint:depguard // Wired in app layer
	"github.com/sandeepsanjusplr/buck/internal/adapters/logger"          //nolint:depguard // Wired in app layer
	"github.com/sandeepsanjusplr/buck/internal/adapters/metrics"         //nolint:depguard // Wired in app layer
	"github.com/sandeepsanjusplr/buck/internal/adapters/telemetry"       //nolint:depguard // Wired in app layer
	"github.com/sandeepsanjusplr/buck/internal/adapters/toolchain"       //nolint:depguard // Wired in app layer
	"github.com/sandeepsanjusplr/buck/internal/adapters/watch"           //nolint:depguard // Wired in app layer
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
	"github.com/sandeepsanjusplr/buck/internal/engine/cell"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.FactoryNodeID,
			fs.GlobberNodeID,
			toolchain.NodeID,
			yamlfe.NodeID,
			hclfe.NodeID,
			watch.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			collector, err := graft.Dep[*metrics.Collector](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(a, log, collector), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	filesystems, err := graft.Dep[ports.FilesystemFactory](ctx)
	if err != nil {
		return nil, err
	}
	globbers, err := graft.Dep[ports.GlobberFactory](ctx)
	if err != nil {
		return nil, err
	}
	ruleTypes, err := graft.Dep[ports.RuleTypesFactory](ctx)
	if err != nil {
		return nil, err
	}
	yamlFrontEnd, err := graft.Dep[*yamlfe.FrontEnd](ctx)
	if err != nil {
		return nil, err
	}
	hclFrontEnd, err := graft.Dep[*hclfe.FrontEnd](ctx)
	if err != nil {
		return nil, err
	}
	watchServices, err := graft.Dep[ports.WatchServiceFactory](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	collector, err := graft.Dep[*metrics.Collector](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(cell.Dependencies{
		Loader:      loader,
		Filesystems: filesystems,
		RuleTypes:   ruleTypes,
		FrontEnds: map[domain.Syntax]ports.FrontEnd{
			domain.SyntaxYAML: yamlFrontEnd,
			domain.SyntaxHCL:  hclFrontEnd,
		},
		Globbers:      globbers,
		WatchServices: watchServices,
		Tracer:        tracer,
		Metrics:       collector,
		Logger:        log,
	}), nil
}
