package ports

import (
	"context"
	"io"
)

// Telemetry records build progress as named vertices, one per pipeline stage.
type Telemetry interface {
	// Record starts a new vertex. The returned context carries the vertex
	// for nested recording.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one in-flight unit of recorded work.
type Vertex interface {
	// Stdout returns a writer for output associated with this vertex.
	Stdout() io.Writer

	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
}

type vertexContextKey struct{}

// ContextWithVertex attaches the active vertex to the context so that
// downstream collaborators, the executor in particular, can stream child
// output to it.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexContextKey{}, v)
}

// VertexFromContext returns the active vertex, if one is recording.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexContextKey{}).(Vertex)
	return v, ok
}
