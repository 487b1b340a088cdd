package ports

import (
	"context"

	"github.com/sandeepsanjusplr/buck/internal/core/domain"
)

// RuleTypesFactory builds the registry of rule kinds available to a cell.
//
// Implementations may probe the filesystem and the host for toolchains, so a call
// can block for a long time. Callers memoize the result per cell.
//
//go:generate mockgen -source=rule_types.go -destination=mocks/mock_rule_types.go -package=mocks
type RuleTypesFactory interface {
	// Create assembles the registry for the given configuration and filesystem.
	Create(ctx context.Context, cfg domain.Config, fs Filesystem) (*domain.RuleTypeRegistry, error)
}
