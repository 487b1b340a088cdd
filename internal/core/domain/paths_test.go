package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err := domain.CanonicalPath("a/../b/./c")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "b", "c"), got)

	abs := filepath.FromSlash("/x/y/")
	got, err = domain.CanonicalPath(abs)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/x/y"), got)
}

func TestHasPathPrefix(t *testing.T) {
	p := filepath.FromSlash

	tests := []struct {
		path, prefix string
		want         bool
	}{
		{p("/a/b"), p("/a/b"), true},
		{p("/a/b/c"), p("/a/b"), true},
		{p("/a/bc"), p("/a/b"), false},
		{p("/a"), p("/a/b"), false},
		{p("/a/b"), p("/"), true},
		{p("x/y"), "x", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.HasPathPrefix(tt.path, tt.prefix), "%s under %s", tt.path, tt.prefix)
	}
}
