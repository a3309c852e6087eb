// Package adb is the device bridge: it installs and launches finished APKs
// through the Android Debug Bridge.
package adb

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/droidforge/droidforge/internal/core/domain"
	"github.com/droidforge/droidforge/internal/core/ports"
)

// Bridge implements ports.DeviceBridge by shelling out to adb.
type Bridge struct {
	adbPath  string
	executor ports.Executor
	logger   ports.Logger
}

// NewBridge creates a Bridge using the given adb binary.
func NewBridge(adbPath string, executor ports.Executor, logger ports.Logger) *Bridge {
	return &Bridge{adbPath: adbPath, executor: executor, logger: logger}
}

// Install installs the APK on the connected device, replacing any existing
// installation.
func (b *Bridge) Install(ctx context.Context, apk string) error {
	b.logger.Info("installing " + apk)
	err := b.executor.Run(ctx, domain.Command{
		Args: []string{b.adbPath, "install", "-r", apk},
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "adb install failed"), "apk", apk)
	}
	return nil
}

// Launch starts the app's entry activity on the device.
func (b *Bridge) Launch(ctx context.Context, bundleID, activity string) error {
	component := bundleID + "/" + activity
	b.logger.Info("launching " + component)
	err := b.executor.Run(ctx, domain.Command{
		Args: []string{b.adbPath, "shell", "am", "start", "-n", component},
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "adb launch failed"), "component", component)
	}
	return nil
}

var _ ports.DeviceBridge = (*Bridge)(nil)
