package dist

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/droidforge/droidforge/internal/adapters/logger"
	"github.com/droidforge/droidforge/internal/core/ports"
)

const NodeID graft.ID = "adapter.dist"

func init() {
	graft.Register(graft.Node[ports.Publisher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Publisher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPublisher(log), nil
		},
	})
}
