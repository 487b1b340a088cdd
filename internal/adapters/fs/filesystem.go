package fs

import (
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Filesystem        = (*ProjectFilesystem)(nil)
	_ ports.FilesystemFactory = (*Factory)(nil)
)

// ProjectFilesystem is the OS-backed filesystem of one cell.
type ProjectFilesystem struct {
	root   string
	ignore []string
}

// NewProjectFilesystem opens the cell rooted at root. The root must be an existing directory.
func NewProjectFilesystem(root string, ignore []string) (*ProjectFilesystem, error) {
	abs, err := domain.CanonicalPath(root)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrCellRootNotFound, "cannot open cell"), "root", abs)
	}

	cleaned := make([]string, 0, len(ignore))
	for _, p := range ignore {
		p = strings.Trim(path.Clean(filepath.ToSlash(p)), "/")
		if p != "" && p != "." {
			cleaned = append(cleaned, p)
		}
	}

	return &ProjectFilesystem{root: abs, ignore: cleaned}, nil
}

// Root returns the absolute root of the cell.
func (f *ProjectFilesystem) Root() string {
	return f.root
}

// Resolve turns a root-relative path into an absolute one.
func (f *ProjectFilesystem) Resolve(rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(f.root, filepath.FromSlash(rel))
}

// Relativize returns abs relative to the root, slash separated.
func (f *ProjectFilesystem) Relativize(abs string) (string, error) {
	rel, err := filepath.Rel(f.root, filepath.Clean(abs))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "cannot relativize path"), "path", abs)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		err := zerr.With(zerr.New("path is outside the cell"), "path", abs)
		return "", zerr.With(err, "root", f.root)
	}
	if rel == "." {
		return "", nil
	}
	return rel, nil
}

// IsFile reports whether path names an existing regular file.
func (f *ProjectFilesystem) IsFile(p string) bool {
	info, err := os.Stat(f.Resolve(p))
	return err == nil && info.Mode().IsRegular()
}

// Exists reports whether path exists.
func (f *ProjectFilesystem) Exists(p string) bool {
	_, err := os.Stat(f.Resolve(p))
	return err == nil
}

// ReadFile reads the file at path.
func (f *ProjectFilesystem) ReadFile(p string) ([]byte, error) {
	// #nosec G304 -- reads are confined to build files and includes of known cells
	return os.ReadFile(f.Resolve(p))
}

// IgnorePaths returns the root-relative paths that are never globbed.
func (f *ProjectFilesystem) IgnorePaths() []string {
	return slices.Clone(f.ignore)
}

// IsIgnored reports whether the root-relative, slash separated path lies in an ignored directory.
func IsIgnored(rel string, ignore []string) bool {
	for _, p := range ignore {
		if rel == p || strings.HasPrefix(rel, p+"/") {
			return true
		}
	}
	return false
}

// Factory opens ProjectFilesystems.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open returns the filesystem of the cell rooted at root.
func (f *Factory) Open(root string, ignore []string) (ports.Filesystem, error) {
	return NewProjectFilesystem(root, ignore)
}
