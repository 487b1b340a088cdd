package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/stretchr/testify/require"
)

// writeTree creates files (slash separated paths) below root.
func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), domain.DirPerm))
		require.NoError(t, os.WriteFile(p, []byte(f), domain.FilePerm))
	}
}
