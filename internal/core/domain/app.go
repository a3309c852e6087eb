// Package domain holds the core types for the droidforge build pipeline.
package domain

import "strings"

// DefaultActivity is the entry activity launched on the device when an app
// does not override it. p4a templates ship this activity.
const DefaultActivity = "org.kivy.android.PythonActivity"

// AppDescriptor is the identity and metadata of one application being built.
// It is owned by the caller and read-only to the pipeline, except for the
// consume-once extraction of well-known permission keys (see capability.go).
type AppDescriptor struct {
	// AppName is the machine-safe name, used for directory layout.
	AppName string
	// FormalName is the human-readable display name, used for artifact names.
	FormalName string
	// Bundle is the unique package identifier, e.g. "com.example".
	Bundle string
	// Version is the app version string, e.g. "0.0.1".
	Version string

	// Permissions maps permission keys to enabled flags. Well-known
	// cross-platform keys are consumed by the capability mapper; everything
	// else passes through verbatim.
	Permissions map[string]bool
	// Features maps feature keys to required flags. Passed through verbatim.
	Features map[string]bool

	// Activity optionally overrides the entry activity used by `run`.
	Activity string

	// xPermissions memoizes the consumed well-known keys so that mapping
	// capabilities a second time reproduces the first result instead of
	// finding the keys gone.
	xPermissions map[string]bool
}

// ModuleName is the python-module-safe spelling of AppName.
func (a *AppDescriptor) ModuleName() string {
	return strings.ReplaceAll(a.AppName, "-", "_")
}

// EntryActivity returns the activity to launch, falling back to the default.
func (a *AppDescriptor) EntryActivity() string {
	if a.Activity != "" {
		return a.Activity
	}
	return DefaultActivity
}
