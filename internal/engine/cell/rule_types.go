package cell

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// ruleTypesMemo is a write-once slot for the rule-type registry. Reads after the
// first successful construction are a single atomic load.
type ruleTypesMemo struct {
	value atomic.Pointer[domain.RuleTypeRegistry]
	group singleflight.Group
}

// KnownBuildRuleTypes returns the rule-type registry, building it on first use.
//
// Concurrent callers share one construction. The construction is detached from
// the caller's context: a caller that gives up waiting gets an error joining
// ErrRuleRegistryConstruction with its context error, while the construction
// runs on for the others. A failed construction is reported to every waiting
// caller and is not cached, so a later call builds again.
func (c *Cell) KnownBuildRuleTypes(ctx context.Context) (*domain.RuleTypeRegistry, error) {
	if r := c.ruleTypes.value.Load(); r != nil {
		return r, nil
	}

	detached := context.WithoutCancel(ctx)
	ch := c.ruleTypes.group.DoChan("rule_types", func() (any, error) {
		if r := c.ruleTypes.value.Load(); r != nil {
			return r, nil
		}
		r, err := c.buildRuleTypes(detached)
		if err != nil {
			return nil, err
		}
		c.ruleTypes.value.Store(r)
		return r, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.RuleTypeRegistry), nil
	case <-ctx.Done():
		err := zerr.Wrap(domain.ErrRuleRegistryConstruction, "interrupted while waiting for rule types")
		return nil, errors.Join(zerr.With(err, "cell_root", c.root), ctx.Err())
	}
}

// KnownBuildRuleTypesSupplier returns the memoized accessor.
func (c *Cell) KnownBuildRuleTypesSupplier() func(context.Context) (*domain.RuleTypeRegistry, error) {
	return c.KnownBuildRuleTypes
}

func (c *Cell) buildRuleTypes(ctx context.Context) (*domain.RuleTypeRegistry, error) {
	deps := c.provider.deps
	ctx, span := deps.Tracer.Start(ctx, "build_rule_types")
	defer span.End()
	span.SetAttribute("cell_root", c.root)

	start := time.Now()
	r, err := deps.RuleTypes.Create(ctx, c.config, c.fs)
	deps.Metrics.RuleTypesBuilt(err == nil, time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		wrapped := zerr.Wrap(domain.ErrRuleRegistryConstruction, "cannot build rule types for "+c.root)
		return nil, errors.Join(zerr.With(wrapped, "cell_root", c.root), err)
	}

	span.SetAttribute("rule_types", r.Len())
	deps.Logger.Debug("built rule types", "root", c.root, "count", r.Len())
	return r, nil
}

// seedFrom reuses the realized registry of the same cell from a previous
// session when nothing that shaped it has changed.
func (c *Cell) seedFrom(prev *Cell) {
	if prev == nil || !c.IsCompatibleForCaching(prev) {
		return
	}
	if r := prev.ruleTypes.value.Load(); r != nil {
		c.ruleTypes.value.Store(r)
		c.provider.deps.Logger.Debug("reusing rule types from previous session", "root", c.root)
	}
}

// Description returns the descriptor of a rule type.
func (c *Cell) Description(ctx context.Context, t domain.RuleType) (*domain.RuleDescriptor, error) {
	r, err := c.KnownBuildRuleTypes(ctx)
	if err != nil {
		return nil, err
	}
	return r.Description(t)
}

// AllDescriptions returns every descriptor known to the cell, ordered by name.
func (c *Cell) AllDescriptions(ctx context.Context) ([]*domain.RuleDescriptor, error) {
	r, err := c.KnownBuildRuleTypes(ctx)
	if err != nil {
		return nil, err
	}
	return r.AllDescriptions(), nil
}

// BuildRuleType resolves a rule-type name as written in a build file.
func (c *Cell) BuildRuleType(ctx context.Context, raw string) (domain.RuleType, error) {
	r, err := c.KnownBuildRuleTypes(ctx)
	if err != nil {
		return domain.RuleType{}, err
	}
	return r.BuildRuleType(raw)
}

// DependencyBundle is a read-only view of a realized cell for session
// initialization. Holders must not mutate it.
type DependencyBundle struct {
	Root       string
	Filesystem ports.Filesystem
	Config     domain.Config
	RuleTypes  *domain.RuleTypeRegistry
}

// DependencyBundle realizes the cell's rule types and returns the bundle.
func (c *Cell) DependencyBundle(ctx context.Context) (DependencyBundle, error) {
	r, err := c.KnownBuildRuleTypes(ctx)
	if err != nil {
		return DependencyBundle{}, err
	}
	return DependencyBundle{Root: c.root, Filesystem: c.fs, Config: c.config, RuleTypes: r}, nil
}
