// Package dist copies finished APKs into the distribution directory.
package dist

import (
	"context"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"

	"github.com/droidforge/droidforge/internal/core/domain"
	"github.com/droidforge/droidforge/internal/core/ports"
)

// Publisher implements ports.Publisher. The distribution copy is a real
// byte-for-byte copy (the canonical artifact stays in place), and its
// content digest is logged so a published APK can be matched to a build.
type Publisher struct {
	logger ports.Logger
}

// NewPublisher creates a Publisher.
func NewPublisher(logger ports.Logger) *Publisher {
	return &Publisher{logger: logger}
}

// Publish copies the canonical APK to its versioned distribution name and
// returns the destination path.
func (p *Publisher) Publish(_ context.Context, layout domain.Layout, app *domain.AppDescriptor, release bool) (string, error) {
	binary := layout.BinaryPath(app, release)
	source, err := os.Open(binary) //nolint:gosec // path derived from layout
	if err != nil {
		if os.IsNotExist(err) {
			return "", zerr.With(zerr.Wrap(domain.ErrNotBuilt, "run `droidforge build` first"), "binary_path", binary)
		}
		return "", zerr.Wrap(err, "failed to open APK")
	}
	defer func() { _ = source.Close() }()

	destination := layout.DistributionPath(app, release)
	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return "", zerr.Wrap(err, "failed to create distribution directory")
	}

	target, err := os.Create(destination) //nolint:gosec // path derived from layout
	if err != nil {
		return "", zerr.Wrap(err, "failed to create distribution file")
	}
	defer func() { _ = target.Close() }()

	hasher := xxhash.New()
	if _, err := io.Copy(io.MultiWriter(target, hasher), source); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to copy APK"), "destination", destination)
	}

	p.logger.Info("published " + destination + " (xxh64:" + hex.EncodeToString(hasher.Sum(nil)) + ")")
	return destination, nil
}

var _ ports.Publisher = (*Publisher)(nil)
