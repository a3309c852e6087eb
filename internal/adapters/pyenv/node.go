package pyenv

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/droidforge/droidforge/internal/adapters/logger"
	"github.com/droidforge/droidforge/internal/adapters/shell"
	"github.com/droidforge/droidforge/internal/core/ports"
)

const NodeID graft.ID = "adapter.pyenv"

func init() {
	graft.Register(graft.Node[ports.Diagnoser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Diagnoser, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(executor, log), nil
		},
	})
}
