package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"

	"github.com/droidforge/droidforge/internal/app"
	_ "github.com/droidforge/droidforge/internal/wiring"
)

// TestGraphResolves exercises the full dependency graph: every node on the
// path to app.Components must construct without error.
func TestGraphResolves(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NotNil(t, components.Telemetry)
}
