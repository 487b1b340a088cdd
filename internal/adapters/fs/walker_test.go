package fs_test

import (
	"slices"
	"testing"

	"github.com/sandeepsanjusplr/buck/internal/adapters/fs"
	"github.com/stretchr/testify/assert"
)

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.txt", "dir1/b.txt", "dir2/sub/c.txt", ".git/config", ".jj/store", "skip/d.txt")

	walker := fs.NewWalker()
	files := slices.Collect(walker.WalkFiles(root, func(rel string) bool { return rel == "skip" }))
	slices.Sort(files)

	assert.Equal(t, []string{"a.txt", "dir1/b.txt", "dir2/sub/c.txt"}, files)
}

func TestWalker_WalkFiles_EarlyStop(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a", "b", "c")

	count := 0
	for range fs.NewWalker().WalkFiles(root, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	files := slices.Collect(fs.NewWalker().WalkFiles(t.TempDir()+"/missing", nil))
	assert.Empty(t, files)
}
