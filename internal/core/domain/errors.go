package domain

import "go.trai.ch/zerr"

var (
	// ErrToolchainMissing is returned when the NDK installation root does not exist.
	ErrToolchainMissing = zerr.New("no Android NDK installation found")

	// ErrNoValidVersions is returned when the NDK root exists but contains no
	// parseable version directories.
	ErrNoValidVersions = zerr.New("no NDK versions found")

	// ErrInvocationFailed is returned when the external p4a build exits non-zero.
	ErrInvocationFailed = zerr.New("p4a build failed")

	// ErrArtifactNotFound is returned when p4a reported success but no APK
	// matched any known candidate location.
	ErrArtifactNotFound = zerr.New("unable to find the APK generated by p4a")

	// ErrNotBuilt is returned when an operation needs a finished APK that
	// does not exist yet.
	ErrNotBuilt = zerr.New("application has not been built")

	// ErrProjectMissing is returned when the bundle directory for an app
	// does not exist.
	ErrProjectMissing = zerr.New("project directory does not exist")

	// ErrUnknownApp is returned when a named app is not declared in the
	// project configuration.
	ErrUnknownApp = zerr.New("unknown app")
)

func zerrUnknownApp(name string) error {
	return zerr.With(zerr.Wrap(ErrUnknownApp, "app not declared in project"), "app_name", name)
}
