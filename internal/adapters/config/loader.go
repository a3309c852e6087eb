// Package config provides the droidforge.yaml project loader.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/droidforge/droidforge/internal/core/domain"
	"github.com/droidforge/droidforge/internal/core/ports"
)

// DefaultFilename is the project file looked up in the working directory.
const DefaultFilename = "droidforge.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a loader for the default project filename.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename}
}

// Load reads the project file from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.Project, error) {
	return Load(filepath.Join(cwd, l.Filename))
}

// Load reads a project file from the given path.
func Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read project file")
	}

	var file projectFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse project file")
	}

	if len(file.Apps) == 0 {
		return nil, zerr.With(zerr.New("project declares no apps"), "path", path)
	}

	project := &domain.Project{
		Layout: domain.Layout{
			BuildRoot: defaultString(file.BuildRoot, "build"),
			DistRoot:  defaultString(file.DistRoot, "dist"),
		},
		Parallelism: file.Parallelism,
		Apps:        make(map[string]*domain.AppDescriptor, len(file.Apps)),
	}

	for name, dto := range file.Apps {
		app, err := dto.toDomain(name)
		if err != nil {
			return nil, err
		}
		project.Apps[name] = app
	}

	return project, nil
}

func (dto appDTO) toDomain(name string) (*domain.AppDescriptor, error) {
	if dto.Bundle == "" {
		return nil, zerr.With(zerr.New("app is missing a bundle identifier"), "app_name", name)
	}
	if dto.Version == "" {
		return nil, zerr.With(zerr.New("app is missing a version"), "app_name", name)
	}

	permissions := dto.Permission
	if permissions == nil {
		permissions = map[string]bool{}
	}
	features := dto.Feature
	if features == nil {
		features = map[string]bool{}
	}

	return &domain.AppDescriptor{
		AppName:     name,
		FormalName:  defaultString(dto.FormalName, name),
		Bundle:      dto.Bundle,
		Version:     dto.Version,
		Permissions: permissions,
		Features:    features,
		Activity:    dto.Activity,
	}, nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)
