package ports

import (
	"context"

	"github.com/droidforge/droidforge/internal/core/domain"
)

// ToolchainResolver discovers and selects an installed native toolchain.
type ToolchainResolver interface {
	// Resolve selects the highest compatible NDK installation.
	Resolve(ctx context.Context) (domain.ToolchainInstallation, error)

	// Env returns the toolchain environment variables ("KEY=VALUE") to
	// layer over the host environment when invoking the build tool.
	Env(tc domain.ToolchainInstallation) []string
}

// Diagnoser inspects the host environment and reports advisory findings.
// Diagnostics never block a build.
type Diagnoser interface {
	Check(ctx context.Context) []domain.Diagnostic
}

// Invoker dispatches one external toolchain build.
type Invoker interface {
	// Invoke runs the build tool in the bundle directory with the given
	// toolchain environment. A non-zero exit is returned as
	// domain.ErrInvocationFailed with the exit code attached.
	Invoke(ctx context.Context, bundle string, req domain.BuildRequest, caps domain.CapabilityDeclaration, env []string) error
}

// ArtifactLocator recovers the produced binary after a successful
// invocation and moves it to the canonical path.
type ArtifactLocator interface {
	Locate(layout domain.Layout, app *domain.AppDescriptor, release bool) (string, error)
}
