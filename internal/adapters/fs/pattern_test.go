package fs_test

import (
	"testing"

	"github.com/sandeepsanjusplr/buck/internal/adapters/fs"
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern, name string
		want          bool
	}{
		{"*.go", "main.go", true},
		{"*.go", "pkg/main.go", false},
		{"**/*.go", "main.go", true},
		{"**/*.go", "a/b/main.go", true},
		{"src/**", "src/a/b.txt", true},
		{"src/**/test_*.py", "src/test_a.py", true},
		{"src/**/test_*.py", "src/x/y/test_b.py", true},
		{"src/**/test_*.py", "lib/test_b.py", false},
		{"a/?.txt", "a/b.txt", true},
		{"a/[bc].txt", "a/d.txt", false},
		{"*.{go,s}", "asm.s", true},
		{"*.{go,s}", "notes.md", false},
		{"a/[b", "a/[b", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fs.MatchPattern(tt.pattern, tt.name), "%s ~ %s", tt.pattern, tt.name)
	}
}

func TestMatchAny(t *testing.T) {
	assert.True(t, fs.MatchAny("a.go", []string{"*.go"}, nil))
	assert.False(t, fs.MatchAny("a_test.go", []string{"*.go"}, []string{"*_test.go"}))
	assert.False(t, fs.MatchAny("a.txt", []string{"*.go"}, nil))
	assert.False(t, fs.MatchAny("a.go", nil, nil))
}

func TestValidatePattern(t *testing.T) {
	for _, ok := range []string{"*.go", "**/*.txt", "a/[bc]/d", "*.{go,s}"} {
		assert.NoError(t, fs.ValidatePattern(ok), ok)
	}
	for _, bad := range []string{"", "/abs/*", "../up/*", "a/./b", "a/[b", "{a,b"} {
		assert.ErrorIs(t, fs.ValidatePattern(bad), domain.ErrInvalidGlobPattern, bad)
	}
}
