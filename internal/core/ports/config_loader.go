package ports

import "github.com/sandeepsanjusplr/buck/internal/core/domain"

// ConfigLoader defines the interface for loading the configuration of one cell.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration rooted at the given absolute cell root.
	// Repository paths in the result are absolute.
	Load(root string) (domain.Config, error)
}
