// Package p4a drives the external python-for-android toolchain and recovers
// the APK it produces.
package p4a

import (
	"context"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/droidforge/droidforge/internal/adapters/shell"
	"github.com/droidforge/droidforge/internal/core/domain"
	"github.com/droidforge/droidforge/internal/core/ports"
)

// Invoker implements ports.Invoker by running the p4a command.
type Invoker struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewInvoker creates an Invoker.
func NewInvoker(executor ports.Executor, logger ports.Logger) *Invoker {
	return &Invoker{executor: executor, logger: logger}
}

// Args builds the deterministic p4a argument vector for one build:
// private source directory, app identity, one --permission flag per granted
// permission (sorted), and exactly one mode flag. Feature declarations are
// template-context data, not flags.
func Args(bundle string, req domain.BuildRequest, caps domain.CapabilityDeclaration) []string {
	app := req.App

	args := []string{
		"apk",
		"--private", filepath.Join(bundle, "src"),
		"--package", app.Bundle,
		"--name", app.FormalName,
		"--version", app.Version,
	}

	for _, permission := range caps.Granted() {
		args = append(args, "--permission", permission)
	}

	if req.Release {
		args = append(args, "--release")
	} else {
		args = append(args, "--debug")
	}

	return args
}

// Invoke runs p4a in the bundle directory with the toolchain environment
// layered over the host environment. The invocation is synchronous and is
// never retried: p4a may leave partial output behind, so a failed build is
// terminal for this attempt.
func (i *Invoker) Invoke(ctx context.Context, bundle string, req domain.BuildRequest, caps domain.CapabilityDeclaration, env []string) error {
	cmd := domain.Command{
		Args: append([]string{"p4a"}, Args(bundle, req, caps)...),
		Env:  env,
		Dir:  bundle,
	}

	i.logger.Info("invoking p4a for " + req.App.AppName)
	if err := i.executor.Run(ctx, cmd); err != nil {
		wrapped := zerr.Wrap(domain.ErrInvocationFailed, err.Error())
		wrapped = zerr.With(wrapped, "exit_code", shell.ExitCode(err))
		return zerr.With(wrapped, "app_name", req.App.AppName)
	}
	return nil
}

var _ ports.Invoker = (*Invoker)(nil)
