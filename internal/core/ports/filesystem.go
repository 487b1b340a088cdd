package ports

//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks

// Filesystem abstracts the file tree below one cell root.
type Filesystem interface {
	// Root returns the absolute, cleaned root path.
	Root() string
	// Resolve turns a path relative to the root into an absolute path.
	// Absolute paths are returned cleaned.
	Resolve(rel string) string
	// Relativize returns abs relative to the root.
	Relativize(abs string) (string, error)
	// IsFile reports whether path names an existing regular file.
	IsFile(path string) bool
	// Exists reports whether path exists.
	Exists(path string) bool
	// ReadFile reads the file at path.
	ReadFile(path string) ([]byte, error)
	// IgnorePaths returns the root-relative patterns that are never globbed.
	IgnorePaths() []string
}

// FilesystemFactory opens the filesystem of a cell.
type FilesystemFactory interface {
	// Open returns a Filesystem rooted at root. Ignore lists slash separated,
	// root-relative paths that globbing and watching never descend into.
	Open(root string, ignore []string) (Filesystem, error)
}
