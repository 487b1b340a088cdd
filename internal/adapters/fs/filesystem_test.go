package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/sandeepsanjusplr/buck/internal/adapters/fs"
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectFilesystem(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "pkg/BUCK")

	pfs, err := fs.NewProjectFilesystem(root+"/pkg/..", []string{"buck-out", "./node_modules/", "."})
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean(root), pfs.Root())
	assert.Equal(t, filepath.Join(root, "pkg", "BUCK"), pfs.Resolve("pkg/BUCK"))
	assert.Equal(t, filepath.Join(root, "x"), pfs.Resolve(filepath.Join(root, "pkg", "..", "x")))

	assert.True(t, pfs.IsFile("pkg/BUCK"))
	assert.False(t, pfs.IsFile("pkg"))
	assert.True(t, pfs.Exists("pkg"))
	assert.False(t, pfs.Exists("nope"))

	data, err := pfs.ReadFile("pkg/BUCK")
	require.NoError(t, err)
	assert.Equal(t, "pkg/BUCK", string(data))

	rel, err := pfs.Relativize(filepath.Join(root, "pkg", "BUCK"))
	require.NoError(t, err)
	assert.Equal(t, "pkg/BUCK", rel)

	rel, err = pfs.Relativize(root)
	require.NoError(t, err)
	assert.Empty(t, rel)

	_, err = pfs.Relativize(filepath.Dir(root))
	require.Error(t, err)

	assert.Equal(t, []string{"buck-out", "node_modules"}, pfs.IgnorePaths())
}

func TestProjectFilesystem_MissingRoot(t *testing.T) {
	_, err := fs.NewFactory().Open(filepath.Join(t.TempDir(), "missing"), nil)
	require.ErrorIs(t, err, domain.ErrCellRootNotFound)
}

func TestIsIgnored(t *testing.T) {
	ignore := []string{"buck-out", "third-party/big"}
	assert.True(t, fs.IsIgnored("buck-out", ignore))
	assert.True(t, fs.IsIgnored("buck-out/gen/x", ignore))
	assert.True(t, fs.IsIgnored("third-party/big/a", ignore))
	assert.False(t, fs.IsIgnored("third-party/bigger", ignore))
	assert.False(t, fs.IsIgnored("src", ignore))
}
