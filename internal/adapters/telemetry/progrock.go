// Package telemetry records build-stage progress.
package telemetry

import (
	"context"
	"io"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"

	"github.com/droidforge/droidforge/internal/core/ports"
)

// Recorder implements ports.Telemetry using the progrock library: each
// pipeline stage becomes a vertex on the tape, and the tape is rendered to
// the output when the session closes.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
	out io.Writer
}

// New creates a Recorder with a default tape, rendered to stderr on Close.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
		out: os.Stderr,
	}
}

// SetOutput updates the render destination. Used by tests.
func (r *Recorder) SetOutput(w io.Writer) {
	r.out = w
}

// Record starts recording a new vertex. The vertex rides the returned
// context so the executor can stream child output to it.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close ends the recording session and renders the collected tape.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			return err
		}
	}
	if tape, ok := r.w.(*progrock.Tape); ok {
		return tape.Render(r.out, progrock.DefaultUI())
	}
	return nil
}

// Vertex wraps *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer for output associated with this vertex.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Complete marks the vertex as finished.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

var _ ports.Telemetry = (*Recorder)(nil)
