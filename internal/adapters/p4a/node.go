package p4a

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/droidforge/droidforge/internal/adapters/logger"
	"github.com/droidforge/droidforge/internal/adapters/shell"
	"github.com/droidforge/droidforge/internal/core/ports"
)

const (
	InvokerNodeID   graft.ID = "adapter.p4a.invoker"
	ArtifactsNodeID graft.ID = "adapter.p4a.artifacts"
)

func init() {
	graft.Register(graft.Node[ports.Invoker]{
		ID:        InvokerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Invoker, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInvoker(executor, log), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactLocator]{
		ID:        ArtifactsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ArtifactLocator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewArtifacts(log), nil
		},
	})
}
