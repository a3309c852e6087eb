package ports

import "github.com/droidforge/droidforge/internal/core/domain"

// ConfigLoader loads the project description for a working directory.
type ConfigLoader interface {
	Load(cwd string) (*domain.Project, error)
}
