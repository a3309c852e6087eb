package telemetry

import (
	"context"
	"io"

	"github.com/droidforge/droidforge/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry, the default when no
// progress recording was requested.
type NoOp struct{}

// NewNoOp creates a NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (n *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close does nothing.
func (n *NoOp) Close() error { return nil }

type noopVertex struct{}

func (noopVertex) Stdout() io.Writer { return io.Discard }
func (noopVertex) Complete(error)    {}
