package ports

import "go.trai.ch/logolink/internal/core/domain"

// ConfigLoader defines the interface for loading the site configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and applies defaults.
	// Relative paths inside the file are resolved against its directory.
	Load(path string) (domain.SiteConfig, error)

	// Discover walks up from cwd and returns the path of the nearest logolink.yaml.
	// It returns an empty string when no file is found.
	Discover(cwd string) (string, error)
}
