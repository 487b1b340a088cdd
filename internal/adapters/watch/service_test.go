package watch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	fsadapter "github.com/sandeepsanjusplr/buck/internal/adapters/fs"
	"github.com/sandeepsanjusplr/buck/internal/adapters/watch"
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
	"github.com/sandeepsanjusplr/buck/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), domain.DirPerm))
	require.NoError(t, os.WriteFile(p, []byte(rel), domain.FilePerm))
}

func startService(t *testing.T, root string) ports.WatchService {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	factory := watch.NewFactory(fsadapter.NewWalker(), mockLogger)
	svc, err := factory.NewWatchService(domain.WatchOptions{
		BuildFileName: "BUCK",
		Ignore:        []string{"buck-out"},
		QueryTimeout:  5 * time.Second,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Start(t.Context(), root))
	t.Cleanup(func() { _ = svc.Stop() })
	return svc
}

func TestService_GlobFromIndex(t *testing.T) {
	root := t.TempDir()
	for _, f := range []string{
		"app/BUCK", "app/a.go", "app/b_test.go", "app/lib/c.go",
		"app/sub/BUCK", "app/sub/d.go", "buck-out/e.go", "top.go",
	} {
		writeFile(t, root, f)
	}

	svc := startService(t, root)

	got, err := svc.Glob(t.Context(), filepath.Join(root, "app"), []string{"**/*.go"}, []string{"*_test.go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.go", "lib/c.go"}, got)

	got, err = svc.Glob(t.Context(), root, []string{"**/*.go"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"top.go"}, got, "app is its own package and buck-out is ignored")
}

func TestService_TracksChanges(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.txt")

	svc := startService(t, root)

	writeFile(t, root, "src/b.txt")
	assert.Eventually(t, func() bool {
		got, err := svc.Glob(t.Context(), filepath.Join(root, "src"), []string{"*.txt"}, nil)
		return err == nil && len(got) == 2
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.Remove(filepath.Join(root, "src", "a.txt")))
	assert.Eventually(t, func() bool {
		got, err := svc.Glob(t.Context(), filepath.Join(root, "src"), []string{"*.txt"}, nil)
		return err == nil && len(got) == 1 && got[0] == "b.txt"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestService_InvalidPattern(t *testing.T) {
	svc := startService(t, t.TempDir())

	_, err := svc.Glob(t.Context(), "", []string{"/abs"}, nil)
	require.ErrorIs(t, err, domain.ErrInvalidGlobPattern)
}

func TestService_StopTwice(t *testing.T) {
	svc := startService(t, t.TempDir())
	require.NoError(t, svc.Stop())
	assert.NoError(t, svc.Stop())
}
