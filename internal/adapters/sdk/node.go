package sdk

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/droidforge/droidforge/internal/adapters/logger"
	"github.com/droidforge/droidforge/internal/core/ports"
)

const NodeID graft.ID = "adapter.sdk"

func init() {
	graft.Register(graft.Node[*AndroidSDK]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*AndroidSDK, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFromEnvironment(log), nil
		},
	})
}
