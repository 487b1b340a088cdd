package cell_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/sandeepsanjusplr/buck/internal/adapters/config"
	"github.com/sandeepsanjusplr/buck/internal/adapters/frontend/hclfe"
	"github.com/sandeepsanjusplr/buck/internal/adapters/frontend/yamlfe"
	"github.com/sandeepsanjusplr/buck/internal/adapters/fs"
	"github.com/sandeepsanjusplr/buck/internal/adapters/metrics"
	"github.com/sandeepsanjusplr/buck/internal/adapters/telemetry"
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
	"github.com/sandeepsanjusplr/buck/internal/core/ports/mocks"
	"github.com/sandeepsanjusplr/buck/internal/engine/cell"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// countingFactory builds a fixed registry and counts constructions. When
// release is set, every construction waits for it.
type countingFactory struct {
	calls   atomic.Int32
	release chan struct{}
	fail    atomic.Int32 // number of constructions that still fail
	err     error
}

func (f *countingFactory) Create(_ context.Context, _ domain.Config, _ ports.Filesystem) (*domain.RuleTypeRegistry, error) {
	f.calls.Add(1)
	if f.release != nil {
		<-f.release
	}
	if f.fail.Load() > 0 {
		f.fail.Add(-1)
		return nil, f.err
	}
	return domain.NewRuleTypeRegistry(
		&domain.RuleDescriptor{
			Type: domain.RuleType{Name: "genrule"},
			Attributes: []domain.AttributeSpec{
				{Name: "out", Kind: domain.AttrString, Required: true},
				{Name: "cmd", Kind: domain.AttrString},
			},
		},
		&domain.RuleDescriptor{
			Type: domain.RuleType{Name: "go_library"},
			Attributes: []domain.AttributeSpec{
				{Name: "srcs", Kind: domain.AttrList, Required: true},
			},
		},
	)
}

type harness struct {
	factory *countingFactory
	rules   ports.RuleTypesFactory
	logger  *mocks.MockLogger
	watch   ports.WatchServiceFactory
	tracer  ports.Tracer
	metrics ports.Metrics
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	factory := &countingFactory{}
	return &harness{
		factory: factory,
		rules:   factory,
		logger:  logger,
		tracer:  telemetry.NewNoOpTracer(),
		metrics: metrics.NoOp{},
	}
}

func (h *harness) provider(t *testing.T, root string, opts ...cell.Option) *cell.Provider {
	t.Helper()
	p, err := cell.NewProvider(root, cell.Dependencies{
		Loader:      config.NewLoader(h.logger),
		Filesystems: fs.NewFactory(),
		RuleTypes:   h.rules,
		FrontEnds: map[domain.Syntax]ports.FrontEnd{
			domain.SyntaxYAML: yamlfe.New(h.logger),
			domain.SyntaxHCL:  hclfe.New(h.logger),
		},
		Globbers:      fs.NewGlobberFactory(fs.NewWalker()),
		WatchServices: h.watch,
		Tracer:        h.tracer,
		Metrics:       h.metrics,
		Logger:        h.logger,
	}, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

// writeFile writes content to the slash separated path below root.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), domain.DirPerm))
	require.NoError(t, os.WriteFile(p, []byte(content), domain.FilePerm))
}

// workspace creates a root cell plus sibling cells a and b below one directory.
// configs maps "root", "a" and "b" to config file contents.
func workspace(t *testing.T, configs map[string]string) (root, a, b string) {
	t.Helper()
	base := t.TempDir()
	root = filepath.Join(base, "root")
	a = filepath.Join(base, "a")
	b = filepath.Join(base, "b")
	for name, dir := range map[string]string{"root": root, "a": a, "b": b} {
		require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
		if cfg, ok := configs[name]; ok {
			writeFile(t, dir, domain.ConfigFileName, cfg)
		}
	}
	return root, a, b
}
