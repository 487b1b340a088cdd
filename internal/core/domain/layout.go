package domain

const (
	// ConfigFileName is the name of the per-cell configuration file.
	ConfigFileName = ".buckconfig.yaml"

	// DefaultBuildFileName is the build file name used when the configuration does not set one.
	DefaultBuildFileName = "BUCK"

	// SyntaxMarkerPrefix introduces the first-line marker that selects a build file's syntax.
	SyntaxMarkerPrefix = "# build-syntax:"

	// BuckDirName is the name of the per-cell scratch directory that is never globbed.
	BuckDirName = "buck-out"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
