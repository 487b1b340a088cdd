// Package frontendtest holds fixtures shared by the front end tests.
package frontendtest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sandeepsanjusplr/buck/internal/adapters/fs"
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
	"github.com/stretchr/testify/require"
)

// Descriptors returns a small rule catalog.
func Descriptors() []*domain.RuleDescriptor {
	list := func(name string) domain.AttributeSpec {
		return domain.AttributeSpec{Name: name, Kind: domain.AttrList}
	}
	return []*domain.RuleDescriptor{
		{
			Type: domain.RuleType{Name: "go_library"},
			Attributes: []domain.AttributeSpec{
				{Name: "srcs", Kind: domain.AttrList, Required: true},
				list("deps"), list("visibility"),
			},
		},
		{
			Type: domain.RuleType{Name: "genrule"},
			Attributes: []domain.AttributeSpec{
				{Name: "out", Kind: domain.AttrString, Required: true},
				{Name: "cmd", Kind: domain.AttrString},
				{Name: "timeout", Kind: domain.AttrNumber},
				list("srcs"), list("deps"), list("visibility"),
			},
		},
	}
}

// Files maps slash separated paths to contents.
type Files map[string]string

// Cell writes files below a fresh root and opens its filesystem and direct globber.
func Cell(t *testing.T, files Files) (ports.Filesystem, ports.Globber) {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), domain.DirPerm))
		require.NoError(t, os.WriteFile(p, []byte(content), domain.FilePerm))
	}

	pfs, err := fs.NewProjectFilesystem(root, []string{domain.BuckDirName})
	require.NoError(t, err)
	return pfs, fs.NewGlobber(fs.NewWalker(), pfs, domain.DefaultBuildFileName)
}

// Options returns parser options for the cell rooted at root.
func Options(root string, includes ...string) domain.ParserOptions {
	return domain.ParserOptions{
		ProjectRoot:     root,
		CellRoots:       map[string]string{"": root},
		BuildFileName:   domain.DefaultBuildFileName,
		DefaultIncludes: includes,
		AllowEmptyGlobs: true,
		Descriptions:    Descriptors(),
	}
}

// Golden renders a manifest with root-relative paths for golden comparison.
func Golden(t *testing.T, root string, m *domain.BuildFileManifest) []byte {
	t.Helper()
	rel := func(p string) string {
		r, err := filepath.Rel(root, p)
		require.NoError(t, err)
		return filepath.ToSlash(r)
	}

	out := *m
	out.Path = rel(m.Path)
	out.Includes = nil
	for _, inc := range m.Includes {
		out.Includes = append(out.Includes, rel(inc))
	}

	data, err := json.MarshalIndent(out, "", "  ")
	require.NoError(t, err)
	return append(data, '\n')
}
