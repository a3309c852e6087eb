package p4a

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/droidforge/droidforge/internal/core/domain"
	"github.com/droidforge/droidforge/internal/core/ports"
)

// Artifacts implements ports.ArtifactLocator.
//
// p4a's output naming is undocumented and varies across releases, so the
// produced APK is searched for across a fixed-priority candidate list and
// then renamed (not copied) to the canonical path. The list is data, built
// per request, so it can track future toolchain releases.
type Artifacts struct {
	logger ports.Logger
}

// NewArtifacts creates an Artifacts locator.
func NewArtifacts(logger ports.Logger) *Artifacts {
	return &Artifacts{logger: logger}
}

// Candidates returns the produced-APK locations to try, in priority order.
// p4a writes a "-debug" suffixed name even for release builds, so every
// candidate carries the suffix regardless of mode.
func Candidates(layout domain.Layout, app *domain.AppDescriptor) []string {
	bundle := layout.BundlePath(app)
	return []string{
		filepath.Join(bundle, app.FormalName+"-debug.apk"),
		filepath.Join(bundle, app.AppName+"-debug.apk"),
		filepath.Join(bundle, app.ModuleName()+"-debug.apk"),
		filepath.Join(bundle, "dist", app.FormalName+"-debug.apk"),
	}
}

// Locate finds the produced APK and moves it to the canonical path. The
// move is a filesystem rename, not a copy: APKs can be large and the
// canonical path lives on the same filesystem as the bundle.
func (a *Artifacts) Locate(layout domain.Layout, app *domain.AppDescriptor, release bool) (string, error) {
	canonical := layout.BinaryPath(app, release)
	candidates := Candidates(layout, app)

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if candidate != canonical {
			if err := os.Rename(candidate, canonical); err != nil {
				return "", zerr.With(zerr.Wrap(err, "failed to move APK to canonical path"), "produced_path", candidate)
			}
		}
		a.logger.Info("build artifact: " + canonical)
		return canonical, nil
	}

	// Exit status zero but nothing produced: version skew between this tool
	// and p4a. The primary expected path is named for operator diagnosis.
	err := zerr.Wrap(domain.ErrArtifactNotFound, "p4a exited successfully but produced no APK at any known location")
	return "", zerr.With(err, "expected_path", candidates[0])
}

var _ ports.ArtifactLocator = (*Artifacts)(nil)
