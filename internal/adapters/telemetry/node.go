package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	"github.com/droidforge/droidforge/internal/core/ports"
)

const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			if os.Getenv("DROIDFORGE_PROGRESS") != "" {
				return New(), nil
			}
			return NewNoOp(), nil
		},
	})
}
