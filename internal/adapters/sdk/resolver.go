// Package sdk discovers the Android SDK and selects an installed NDK.
package sdk

import (
	"context"
	"os"
	"path/filepath"
	"unicode"

	"go.trai.ch/zerr"

	"github.com/droidforge/droidforge/internal/core/domain"
	"github.com/droidforge/droidforge/internal/core/ports"
)

// DefaultNDKVersion is the NDK release known to work with p4a, used in
// remediation text when no NDK is installed.
const DefaultNDKVersion = "25.2.9519653"

// AndroidSDK implements ports.ToolchainResolver over an on-disk SDK root.
type AndroidSDK struct {
	root   string
	logger ports.Logger
}

// New creates a resolver for the given SDK root.
func New(root string, logger ports.Logger) *AndroidSDK {
	return &AndroidSDK{root: root, logger: logger}
}

// NewFromEnvironment locates the SDK root from ANDROID_HOME or
// ANDROID_SDK_ROOT, falling back to ~/Android/Sdk.
func NewFromEnvironment(logger ports.Logger) *AndroidSDK {
	root := os.Getenv("ANDROID_HOME")
	if root == "" {
		root = os.Getenv("ANDROID_SDK_ROOT")
	}
	if root == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			root = filepath.Join(home, "Android", "Sdk")
		}
	}
	return New(root, logger)
}

// Root returns the SDK root directory.
func (s *AndroidSDK) Root() string {
	return s.root
}

// ADBPath returns the adb binary inside the SDK, or the bare name when the
// SDK copy is not present so PATH lookup can still find one.
func (s *AndroidSDK) ADBPath() string {
	adb := filepath.Join(s.root, "platform-tools", "adb")
	if _, err := os.Stat(adb); err != nil {
		return "adb"
	}
	return adb
}

// ndkRoot is the directory sdkmanager installs NDK versions into.
func (s *AndroidSDK) ndkRoot() string {
	return filepath.Join(s.root, "ndk")
}

// Resolve scans <sdk>/ndk/ for version-named directories and selects the
// greatest version under component-wise integer ordering. Installation is a
// human action, so both failure modes carry remediation metadata and are
// never retried.
func (s *AndroidSDK) Resolve(_ context.Context) (domain.ToolchainInstallation, error) {
	ndkRoot := s.ndkRoot()

	entries, err := os.ReadDir(ndkRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ToolchainInstallation{}, s.missingErr(domain.ErrToolchainMissing, ndkRoot)
		}
		return domain.ToolchainInstallation{}, zerr.With(zerr.Wrap(err, "failed to scan NDK directory"), "path", ndkRoot)
	}

	var selected *domain.ToolchainInstallation
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !unicode.IsDigit(rune(name[0])) {
			continue
		}
		version, err := domain.ParseVersion(name)
		if err != nil {
			// Malformed entries are skipped, not fatal.
			continue
		}
		if selected == nil || version.Compare(selected.Version) > 0 {
			selected = &domain.ToolchainInstallation{
				Version: version,
				Path:    filepath.Join(ndkRoot, name),
			}
		}
	}

	if selected == nil {
		return domain.ToolchainInstallation{}, s.missingErr(domain.ErrNoValidVersions, ndkRoot)
	}

	s.logger.Info("using NDK version " + selected.Version.String() + " from " + selected.Path)
	return *selected, nil
}

func (s *AndroidSDK) missingErr(kind error, ndkRoot string) error {
	err := zerr.Wrap(kind, "the p4a backend requires an installed Android NDK")
	err = zerr.With(err, "path", ndkRoot)
	return zerr.With(err, "install_hint", `sdkmanager "ndk;`+DefaultNDKVersion+`"`)
}

// Env returns the environment variables p4a needs to find the SDK and the
// selected NDK.
func (s *AndroidSDK) Env(tc domain.ToolchainInstallation) []string {
	return []string{
		"ANDROIDSDK=" + s.root,
		"ANDROID_HOME=" + s.root,
		"ANDROID_SDK_ROOT=" + s.root,
		"ANDROIDNDK=" + tc.Path,
		"ANDROID_NDK_HOME=" + tc.Path,
	}
}

var _ ports.ToolchainResolver = (*AndroidSDK)(nil)
