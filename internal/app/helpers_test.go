package app_test

import (
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
	"github.com/sandeepsanjusplr/buck/internal/adapters/toolchain"
	"github.com/sandeepsanjusplr/buck/internal/app"
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
	"github.com/sandeepsanjusplr/buck/internal/core/ports/mocks"
	"github.com/sandeepsanjusplr/buck/internal/engine/cell"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newApp wires an App from real adapters. Only the go toolchain is found on the
// fake PATH; probes counts every lookup.
func newApp(t *testing.T) (*app.App, *atomic.Int32) {
	t.Helper()
	t.Setenv("ANDROID_SDK_ROOT", "")
	t.Setenv("ANDROID_HOME", "")
	t.Setenv("ANDROID_NDK_ROOT", "")
	t.Setenv("ANDROID_NDK_HOME", "")

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	var probes atomic.Int32
	ruleTypes := toolchain.NewFactory(logger).WithLookPath(func(file string) (string, error) {
		probes.Add(1)
		if file == "go" {
			return "/usr/local/go/bin/go", nil
		}
		return "", os.ErrNotExist
	})

	a := app.New(cell.Dependencies{
		Loader:      config.NewLoader(logger),
		Filesystems: fs.NewFactory(),
		RuleTypes:   ruleTypes,
		FrontEnds: map[domain.Syntax]ports.FrontEnd{
			domain.SyntaxYAML: yamlfe.New(logger),
			domain.SyntaxHCL:  hclfe.New(logger),
		},
		Globbers: fs.NewGlobberFactory(fs.NewWalker()),
		Tracer:   telemetry.NewNoOpTracer(),
		Metrics:  metrics.NoOp{},
		Logger:   logger,
	})
	t.Cleanup(func() { _ = a.Close() })
	return a, &probes
}

// project lays out files below a fresh directory and returns the root cell path
// and the path of the sibling cell "lib".
func project(t *testing.T, files map[string]string) (root, lib string) {
	t.Helper()
	base := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(base, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), domain.DirPerm))
		require.NoError(t, os.WriteFile(p, []byte(content), domain.FilePerm))
	}
	root = filepath.Join(base, "main")
	lib = filepath.Join(base, "lib")
	require.NoError(t, os.MkdirAll(root, domain.DirPerm))
	require.NoError(t, os.MkdirAll(lib, domain.DirPerm))
	return root, lib
}
