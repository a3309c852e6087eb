package adb

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/droidforge/droidforge/internal/adapters/logger"
	"github.com/droidforge/droidforge/internal/adapters/sdk"
	"github.com/droidforge/droidforge/internal/adapters/shell"
	"github.com/droidforge/droidforge/internal/core/ports"
)

const NodeID graft.ID = "adapter.adb"

func init() {
	graft.Register(graft.Node[ports.DeviceBridge]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{sdk.NodeID, shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DeviceBridge, error) {
			androidSDK, err := graft.Dep[*sdk.AndroidSDK](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBridge(androidSDK.ADBPath(), executor, log), nil
		},
	})
}
