package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/droidforge/droidforge/internal/adapters/logger"
	"github.com/droidforge/droidforge/internal/adapters/p4a"
	"github.com/droidforge/droidforge/internal/adapters/pyenv"
	"github.com/droidforge/droidforge/internal/adapters/sdk"
	"github.com/droidforge/droidforge/internal/adapters/telemetry"
	"github.com/droidforge/droidforge/internal/core/ports"
)

const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			sdk.NodeID,
			pyenv.NodeID,
			p4a.InvokerNodeID,
			p4a.ArtifactsNodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			toolchain, err := graft.Dep[*sdk.AndroidSDK](ctx)
			if err != nil {
				return nil, err
			}
			diagnoser, err := graft.Dep[ports.Diagnoser](ctx)
			if err != nil {
				return nil, err
			}
			invoker, err := graft.Dep[ports.Invoker](ctx)
			if err != nil {
				return nil, err
			}
			artifacts, err := graft.Dep[ports.ArtifactLocator](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(toolchain, diagnoser, invoker, artifacts, tel, log), nil
		},
	})
}
