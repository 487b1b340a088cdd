// Package toolchain builds the rule-type registry of a cell by probing the host
// for the toolchains its rule kinds need.
package toolchain

import (
	"context"
	"maps"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.RuleTypesFactory = (*Factory)(nil)

// LookPathFunc locates an executable, as exec.LookPath does.
type LookPathFunc func(file string) (string, error)

// Factory implements ports.RuleTypesFactory.
type Factory struct {
	logger   ports.Logger
	lookPath LookPathFunc
}

// NewFactory creates a Factory that probes the host PATH.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger, lookPath: exec.LookPath}
}

// WithLookPath replaces the executable finder.
func (f *Factory) WithLookPath(fn LookPathFunc) *Factory {
	f.lookPath = fn
	return f
}

type probe struct {
	toolchain  string
	executable string
	explicit   bool
}

// Create probes every known toolchain and assembles the registry. A toolchain the
// configuration names explicitly must be found; a missing default is skipped.
func (f *Factory) Create(ctx context.Context, cfg domain.Config, fs ports.Filesystem) (*domain.RuleTypeRegistry, error) {
	probes := f.plan(cfg, fs)

	var mu sync.Mutex
	resolved := make(map[string]string, len(probes))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, p := range probes {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			path, err := f.lookPath(p.executable)
			if err != nil {
				if p.explicit {
					err := zerr.Wrap(domain.ErrToolchainNotFound, err.Error())
					err = zerr.With(err, "toolchain", p.toolchain)
					return zerr.With(err, "executable", p.executable)
				}
				f.logger.Debug("toolchain not found, skipping its rules", "toolchain", p.toolchain)
				return nil
			}

			mu.Lock()
			resolved[p.toolchain] = path
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.NewRuleTypeRegistry(assemble(cfg, resolved)...)
}

// plan lists the probes in toolchain order. Configured executables containing a
// path separator are resolved against the cell root.
func (f *Factory) plan(cfg domain.Config, fs ports.Filesystem) []probe {
	tools := cfg.Tools()

	for _, name := range slices.Sorted(maps.Keys(tools)) {
		if _, known := defaultExecutables[name]; !known {
			f.logger.Warn("ignoring unknown toolchain in config", "toolchain", name)
		}
	}

	probes := make([]probe, 0, len(defaultExecutables))
	for _, name := range slices.Sorted(maps.Keys(defaultExecutables)) {
		p := probe{toolchain: name, executable: defaultExecutables[name]}
		if exe, ok := tools[name]; ok && exe != "" {
			p.executable = exe
			p.explicit = true
			if !filepath.IsAbs(exe) && strings.ContainsRune(filepath.ToSlash(exe), '/') {
				p.executable = fs.Resolve(exe)
			}
		}
		probes = append(probes, p)
	}
	return probes
}

func assemble(cfg domain.Config, resolved map[string]string) []*domain.RuleDescriptor {
	var out []*domain.RuleDescriptor

	for _, d := range builtinRules() {
		if d.Toolchain == "" {
			out = append(out, d)
			continue
		}
		if path, ok := resolved[d.Toolchain]; ok {
			d.ToolchainPath = path
			out = append(out, d)
		}
	}

	if path, ok := resolved[ToolchainLua]; ok {
		for _, d := range luaRules(cfg.LuaCxxLibrary()) {
			d.ToolchainPath = path
			out = append(out, d)
		}
	}

	return append(out, androidRules(domain.ResolveSDKEnvironment(cfg))...)
}
