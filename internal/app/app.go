// Package app implements the application layer for droidforge.
package app

import (
	"context"
	"os"
	"runtime"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/droidforge/droidforge/internal/core/domain"
	"github.com/droidforge/droidforge/internal/core/ports"
)

// App composes the lifecycle stages behind the CLI commands. Each stage is
// a separate collaborator; App only sequences and delegates.
type App struct {
	loader    ports.ConfigLoader
	builder   ports.Builder
	device    ports.DeviceBridge
	publisher ports.Publisher
	executor  ports.Executor
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	builder ports.Builder,
	device ports.DeviceBridge,
	publisher ports.Publisher,
	executor ports.Executor,
	logger ports.Logger,
) *App {
	return &App{
		loader:    loader,
		builder:   builder,
		device:    device,
		publisher: publisher,
		executor:  executor,
		logger:    logger,
	}
}

// selectApps resolves the requested app names (all declared apps when the
// list is empty) against the loaded project.
func selectApps(project *domain.Project, names []string) ([]*domain.AppDescriptor, error) {
	if len(names) == 0 {
		names = project.Names()
	}
	apps := make([]*domain.AppDescriptor, 0, len(names))
	for _, name := range names {
		app, err := project.App(name)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

// Build builds APKs for the named apps (all apps when names is empty),
// in release or debug mode. Builds for distinct apps may run concurrently
// up to the project's parallelism limit; the default limit of one
// serializes builds so two invocations never race on a bundle directory.
func (a *App) Build(ctx context.Context, names []string, release bool) error {
	project, err := a.loader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load project")
	}

	apps, err := selectApps(project, names)
	if err != nil {
		return err
	}

	limit := project.Parallelism
	if limit <= 0 {
		limit = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, app := range apps {
		g.Go(func() error {
			req := domain.BuildRequest{App: app, Release: release}
			result, err := a.builder.Build(gctx, project.Layout, req)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "build failed"), "app_name", app.AppName)
			}
			a.logger.Info(app.AppName + " built: " + result.Artifact)
			return nil
		})
	}
	return g.Wait()
}

// Run installs the named app's debug APK on a device and launches its
// entry activity.
func (a *App) Run(ctx context.Context, name string) error {
	project, err := a.loader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load project")
	}
	app, err := project.App(name)
	if err != nil {
		return err
	}

	binary := project.Layout.BinaryPath(app, false)
	if _, err := os.Stat(binary); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrNotBuilt, "run `droidforge build` first"), "app_name", app.AppName)
	}

	if err := a.device.Install(ctx, binary); err != nil {
		return err
	}
	return a.device.Launch(ctx, app.Bundle, app.EntryActivity())
}

// Publish copies finished APKs for the named apps into the distribution
// directory. The format selects which artifact is published.
func (a *App) Publish(ctx context.Context, names []string, release bool) error {
	project, err := a.loader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load project")
	}

	apps, err := selectApps(project, names)
	if err != nil {
		return err
	}

	for _, app := range apps {
		if _, err := a.publisher.Publish(ctx, project.Layout, app, release); err != nil {
			return err
		}
	}
	return nil
}

// Open opens the named app's project folder in the host file manager.
func (a *App) Open(ctx context.Context, name string) error {
	project, err := a.loader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load project")
	}
	app, err := project.App(name)
	if err != nil {
		return err
	}

	bundle := project.Layout.BundlePath(app)
	if _, err := os.Stat(bundle); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrProjectMissing, "run `droidforge build` first to create the project"), "path", bundle)
	}

	a.logger.Info("opening project folder: " + bundle)
	return a.executor.Run(ctx, domain.Command{
		Args: append(fileManagerOpenCommand(), bundle),
	})
}

// fileManagerOpenCommand returns the host command that opens a folder.
func fileManagerOpenCommand() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"explorer"}
	default:
		return []string{"xdg-open"}
	}
}
