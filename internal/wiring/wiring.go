// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/sandeepsanjusplr/buck/internal/adapters/config"
	_ "github.com/sandeepsanjusplr/buck/internal/adapters/frontend/hclfe"
	_ "github.com/sandeepsanjusplr/buck/internal/adapters/frontend/yamlfe"
	_ "github.com/sandeepsanjusplr/buck/internal/adapters/fs"
	_ "github.com/sandeepsanjusplr/buck/internal/adapters/logger"
	_ "github.com/sandeepsanjusplr/buck/internal/adapters/metrics"
	_ "github.com/sandeepsanjusplr/buck/internal/adapters/telemetry"
	_ "github.com/sandeepsanjusplr/buck/internal/adapters/toolchain"
	_ "github.com/sandeepsanjusplr/buck/internal/adapters/watch"
	// Register app nodes.
	_ "github.com/sandeepsanjusplr/buck/internal/app"
)
