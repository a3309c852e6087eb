// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/droidforge/droidforge/internal/core/domain"
)

// Executor runs external commands as scoped child processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes the command, streaming its stdout and stderr to the
	// user unfiltered. The child is terminated (with its whole process
	// group) when ctx is cancelled, so an interrupted build never leaves
	// an orphaned toolchain process behind.
	//
	// A non-zero exit status is returned as an error carrying the exit
	// code as metadata.
	Run(ctx context.Context, cmd domain.Command) error

	// Output executes the command and returns its captured stdout,
	// trimmed of trailing whitespace. Used for short probe commands.
	Output(ctx context.Context, cmd domain.Command) (string, error)
}
