package ports

import (
	"context"

	"github.com/droidforge/droidforge/internal/core/domain"
)

// The lifecycle interfaces mirror the tool's commands. Each is implemented
// by one concrete type and composed by the application layer through
// explicit delegation.

// Builder runs one full build orchestration (debug or release).
type Builder interface {
	Build(ctx context.Context, layout domain.Layout, req domain.BuildRequest) (*domain.BuildResult, error)
}

// DeviceBridge installs and launches a finished APK on a device.
type DeviceBridge interface {
	Install(ctx context.Context, apk string) error
	Launch(ctx context.Context, bundleID, activity string) error
}

// Publisher copies a finished APK into the distribution directory.
type Publisher interface {
	Publish(ctx context.Context, layout domain.Layout, app *domain.AppDescriptor, release bool) (string, error)
}
