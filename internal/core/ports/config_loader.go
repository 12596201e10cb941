package ports

import "go.trai.ch/gqltag/internal/core/domain"

// ConfigLoader loads the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from cwd to the nearest gqltag.yaml and returns the
	// resolved project with defaults applied.
	Load(cwd string) (*domain.Project, error)
}
