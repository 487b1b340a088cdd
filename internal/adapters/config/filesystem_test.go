package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/sandeepsanjusplr/buck/internal/adapters/config"
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFSAdapter(t *testing.T) {
	root := filepath.FromSlash("/virtual/root")
	adapter := config.NewMapFSAdapter(root, fstest.MapFS{
		"dir/file.txt": {Data: []byte("hello")},
	})

	data, err := adapter.ReadFile(filepath.Join(root, "dir", "file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	info, err := adapter.Stat(filepath.Join(root, "dir"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = adapter.ReadFile(filepath.FromSlash("/elsewhere/file.txt"))
	require.Error(t, err)

	_, err = adapter.Stat(filepath.Join(root, "missing"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOSFS(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(p, []byte("cell:\n  name: x\n"), domain.FilePerm))

	osfs := config.NewOSFS()
	data, err := osfs.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: x")

	info, err := osfs.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
