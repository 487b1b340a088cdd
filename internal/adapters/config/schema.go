package config

// Buckconfig represents the structure of the .buckconfig.yaml file of one cell.
type Buckconfig struct {
	Cell         CellDTO           `yaml:"cell"`
	Repositories map[string]string `yaml:"repositories"`
	Parser       ParserDTO         `yaml:"parser"`
	Project      ProjectDTO        `yaml:"project"`
	Tools        map[string]string `yaml:"tools"`
	Lua          LuaDTO            `yaml:"lua"`
	SDK          map[string]string `yaml:"sdk"`
	UI           map[string]string `yaml:"ui"`
}

// CellDTO is the cell section.
type CellDTO struct {
	Name string `yaml:"name"`
}

// ParserDTO is the parser section. Pointer fields distinguish unset from false.
type ParserDTO struct {
	BuildFileName             string   `yaml:"build_file_name"`
	EnforcePackageBoundary    *bool    `yaml:"enforce_package_boundary"`
	PackageBoundaryExceptions []string `yaml:"package_boundary_exceptions"`
	DefaultIncludes           []string `yaml:"default_includes"`
	DefaultBuildFileSyntax    string   `yaml:"default_build_file_syntax"`
	PolyglotParsingEnabled    bool     `yaml:"polyglot_parsing_enabled"`
	GlobHandler               string   `yaml:"glob_handler"`
	WatchQueryTimeout         string   `yaml:"watch_query_timeout"`
	AllowEmptyGlobs           *bool    `yaml:"allow_empty_globs"`
}

// ProjectDTO is the project section.
type ProjectDTO struct {
	Ignore []string `yaml:"ignore"`
}

// LuaDTO is the lua section.
type LuaDTO struct {
	CxxLibrary string `yaml:"cxx_library"`
}
