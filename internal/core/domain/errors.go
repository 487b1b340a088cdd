package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownCell is returned when a requested cell root is not among the known roots of the calling cell.
	ErrUnknownCell = zerr.New("unable to find repository")

	// ErrUnknownCellName is returned when a target references a cell name that has no repository mapping.
	ErrUnknownCellName = zerr.New("unknown cell name")

	// ErrMissingBuildFile is returned when the build file of a target does not exist.
	ErrMissingBuildFile = zerr.New("no build file found")

	// ErrRuleRegistryConstruction is returned when the rule-type registry of a cell cannot be built.
	ErrRuleRegistryConstruction = zerr.New("creation of known build rule types failed")

	// ErrParserConfiguration is returned when a build file cannot be matched to an enabled front end.
	ErrParserConfiguration = zerr.New("build file syntax is not configured")

	// ErrUnknownRuleType is returned when a rule type is not registered in the cell.
	ErrUnknownRuleType = zerr.New("unknown rule type")

	// ErrMissingAttribute is returned when a rule declaration lacks a required attribute.
	ErrMissingAttribute = zerr.New("missing required attribute")

	// ErrInvalidAttribute is returned when a rule declaration sets an undeclared attribute or a value of the wrong kind.
	ErrInvalidAttribute = zerr.New("invalid attribute")

	// ErrDuplicateRuleType is returned when two descriptors claim the same rule type.
	ErrDuplicateRuleType = zerr.New("duplicate rule type")

	// ErrDuplicateRule is returned when a build file declares two rules with the same name.
	ErrDuplicateRule = zerr.New("duplicate rule name")

	// ErrInvalidTarget is returned when a build target string cannot be parsed.
	ErrInvalidTarget = zerr.New("invalid build target")

	// ErrInvalidSyntax is returned when a build file syntax name is not recognized.
	ErrInvalidSyntax = zerr.New("invalid build file syntax, expected 'yaml' or 'hcl'")

	// ErrInvalidGlobHandler is returned when the configured glob handler is not recognized.
	ErrInvalidGlobHandler = zerr.New("invalid glob handler, expected 'direct' or 'watch'")

	// ErrBuildFileReadFailed is returned when a build file cannot be read.
	ErrBuildFileReadFailed = zerr.New("failed to read build file")

	// ErrBuildFileParseFailed is returned when a front end rejects a build file.
	ErrBuildFileParseFailed = zerr.New("failed to parse build file")

	// ErrIncludeResolutionFailed is returned when a default include cannot be resolved.
	ErrIncludeResolutionFailed = zerr.New("failed to resolve include")

	// ErrInvalidGlobPattern is returned when a glob pattern is malformed or escapes its package.
	ErrInvalidGlobPattern = zerr.New("invalid glob pattern")

	// ErrEmptyGlob is returned when a glob matches nothing and empty globs are disallowed.
	ErrEmptyGlob = zerr.New("glob returned no results")

	// ErrParserClosed is returned when a parser is used after Close.
	ErrParserClosed = zerr.New("parser is closed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrCellRootNotFound is returned when a cell root does not exist or is not a directory.
	ErrCellRootNotFound = zerr.New("cell root is not a directory")

	// ErrToolchainNotFound is returned when an explicitly configured toolchain cannot be located.
	ErrToolchainNotFound = zerr.New("toolchain not found")

	// ErrIncompleteCellMapping is returned when a cell reachable from the root is not declared by the root cell.
	ErrIncompleteCellMapping = zerr.New("root cell does not declare every reachable cell")

	// ErrWatchQueryTimeout is returned when the watch service does not answer a glob query in time.
	ErrWatchQueryTimeout = zerr.New("watch service query timed out")
)
