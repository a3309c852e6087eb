package domain

import (
	"path/filepath"
	"sort"
)

// Layout derives the on-disk locations the pipeline reads and writes.
// The bundle directory is named after the app, not the output format,
// because p4a templates key their structure on the app name.
type Layout struct {
	BuildRoot string
	DistRoot  string
}

// BundlePath is the project directory for one app.
func (l Layout) BundlePath(app *AppDescriptor) string {
	return filepath.Join(l.BuildRoot, app.AppName)
}

// SourcePath is the private application source directory handed to p4a.
func (l Layout) SourcePath(app *AppDescriptor) string {
	return filepath.Join(l.BundlePath(app), "src")
}

// BinaryPath is the canonical artifact location: the single deterministic
// place the finished APK is guaranteed to be after a successful build,
// regardless of where p4a originally wrote it.
func (l Layout) BinaryPath(app *AppDescriptor, release bool) string {
	if release {
		return filepath.Join(l.BundlePath(app), app.FormalName+".apk")
	}
	return filepath.Join(l.BundlePath(app), app.FormalName+"-debug.apk")
}

// DistributionPath is the versioned name used when publishing a finished
// APK into the distribution directory.
func (l Layout) DistributionPath(app *AppDescriptor, release bool) string {
	extension := "apk"
	if !release {
		extension = "debug.apk"
	}
	return filepath.Join(l.DistRoot, app.FormalName+"-"+app.Version+"."+extension)
}

// Project is the loaded droidforge.yaml: layout roots plus the declared apps.
type Project struct {
	Layout      Layout
	Parallelism int
	Apps        map[string]*AppDescriptor
}

// App looks up a declared app by name.
func (p *Project) App(name string) (*AppDescriptor, error) {
	app, ok := p.Apps[name]
	if !ok {
		return nil, zerrUnknownApp(name)
	}
	return app, nil
}

// Names returns the declared app names in stable order.
func (p *Project) Names() []string {
	names := make([]string, 0, len(p.Apps))
	for name := range p.Apps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
