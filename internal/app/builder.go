package app

import (
	"github.com/sandeepsanjusplr/buck/internal/adapters/metrics"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App     *App
	Logger  ports.Logger
	Metrics *metrics.Collector
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(a *App, logger ports.Logger, collector *metrics.Collector) *Components {
	return &Components{
		App:     a,
		Logger:  logger,
		Metrics: collector,
	}
}
