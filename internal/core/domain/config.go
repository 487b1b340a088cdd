package domain

import (
	"bytes"
	"maps"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ParserConfig is the typed view over the parser section of a cell's configuration.
type ParserConfig struct {
	BuildFileName             string
	EnforcePackageBoundary    bool
	PackageBoundaryExceptions []string // absolute paths, in declaration order
	DefaultIncludes           []string
	DefaultBuildFileSyntax    Syntax
	PolyglotParsingEnabled    bool
	GlobHandler               GlobHandler
	WatchQueryTimeout         time.Duration
	AllowEmptyGlobs           bool
}

// DefaultParserConfig returns the parser settings used when a cell configures nothing.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		BuildFileName:          DefaultBuildFileName,
		EnforcePackageBoundary: true,
		DefaultBuildFileSyntax: SyntaxYAML,
		GlobHandler:            GlobHandlerDirect,
		WatchQueryTimeout:      5 * time.Second,
		AllowEmptyGlobs:        true,
	}
}

// ConfigSpec is the mutable input used to build an immutable Config.
type ConfigSpec struct {
	CellName      string
	Repositories  map[string]string // cell name -> absolute root
	Parser        ParserConfig
	Ignore        []string          // slash separated, relative to the cell root
	Tools         map[string]string // toolchain -> executable name or path
	LuaCxxLibrary string
	SDK           map[string]string

	// Session-only values. They never affect restart-safe equality.
	UI          map[string]string
	Environment map[string]string
}

// Config is an immutable snapshot of one cell's build configuration.
type Config struct {
	spec ConfigSpec
	key  []byte
}

// NewConfig copies spec into an immutable Config, filling parser defaults.
func NewConfig(spec ConfigSpec) Config {
	p := spec.Parser
	if p.BuildFileName == "" {
		p.BuildFileName = DefaultBuildFileName
	}
	if p.DefaultBuildFileSyntax == "" {
		p.DefaultBuildFileSyntax = SyntaxYAML
	}
	if p.GlobHandler == "" {
		p.GlobHandler = GlobHandlerDirect
	}
	p.PackageBoundaryExceptions = cleanPaths(p.PackageBoundaryExceptions)
	p.DefaultIncludes = slices.Clone(p.DefaultIncludes)

	repos := make(map[string]string, len(spec.Repositories))
	for name, root := range spec.Repositories {
		repos[name] = filepath.Clean(root)
	}

	c := Config{spec: ConfigSpec{
		CellName:      spec.CellName,
		Repositories:  repos,
		Parser:        p,
		Ignore:        slices.Clone(spec.Ignore),
		Tools:         maps.Clone(spec.Tools),
		LuaCxxLibrary: spec.LuaCxxLibrary,
		SDK:           maps.Clone(spec.SDK),
		UI:            maps.Clone(spec.UI),
		Environment:   maps.Clone(spec.Environment),
	}}
	c.key = c.restartKey()
	return c
}

// CellName returns the name this cell gives itself, or "".
func (c Config) CellName() string {
	return c.spec.CellName
}

// Repositories returns the declared cell name to absolute root mapping.
func (c Config) Repositories() map[string]string {
	return maps.Clone(c.spec.Repositories)
}

// Parser returns the parser view of the configuration.
func (c Config) Parser() ParserConfig {
	p := c.spec.Parser
	p.PackageBoundaryExceptions = slices.Clone(p.PackageBoundaryExceptions)
	p.DefaultIncludes = slices.Clone(p.DefaultIncludes)
	return p
}

// Ignore returns the paths excluded from globbing and watching.
func (c Config) Ignore() []string {
	return slices.Clone(c.spec.Ignore)
}

// Tools returns the configured toolchain executables.
func (c Config) Tools() map[string]string {
	return maps.Clone(c.spec.Tools)
}

// Tool returns the configured executable for one toolchain.
func (c Config) Tool(name string) (string, bool) {
	v, ok := c.spec.Tools[name]
	return v, ok
}

// LuaCxxLibrary returns the configured Lua C library target, or "".
func (c Config) LuaCxxLibrary() string {
	return c.spec.LuaCxxLibrary
}

// SDK returns the sdk section.
func (c Config) SDK() map[string]string {
	return maps.Clone(c.spec.SDK)
}

// UI returns the session-only ui section.
func (c Config) UI() map[string]string {
	return maps.Clone(c.spec.UI)
}

// Environment returns the session-only environment captured at load time.
func (c Config) Environment() map[string]string {
	return maps.Clone(c.spec.Environment)
}

// EqualForRestart reports whether two configurations are interchangeable for a
// long-lived process. Session-only values are ignored.
func (c Config) EqualForRestart(other Config) bool {
	return bytes.Equal(c.key, other.key)
}

// Fingerprint returns a stable hash of the restart-relevant configuration.
func (c Config) Fingerprint() uint64 {
	return xxhash.Sum64(c.key)
}

// restartKey serializes every restart-relevant field in a canonical order.
func (c Config) restartKey() []byte {
	var buf bytes.Buffer
	field := func(s string) {
		buf.WriteString(s)
		buf.WriteByte(0)
	}
	section := func() {
		buf.WriteByte(0xff)
	}
	sortedMap := func(m map[string]string) {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			field(k)
			field(m[k])
		}
		section()
	}

	field(c.spec.CellName)
	section()
	sortedMap(c.spec.Repositories)

	p := c.spec.Parser
	field(p.BuildFileName)
	field(strconv.FormatBool(p.EnforcePackageBoundary))
	field(strings.Join(p.PackageBoundaryExceptions, "\x01"))
	field(strings.Join(p.DefaultIncludes, "\x01"))
	field(string(p.DefaultBuildFileSyntax))
	field(strconv.FormatBool(p.PolyglotParsingEnabled))
	field(string(p.GlobHandler))
	field(p.WatchQueryTimeout.String())
	field(strconv.FormatBool(p.AllowEmptyGlobs))
	section()

	field(strings.Join(c.spec.Ignore, "\x01"))
	section()
	sortedMap(c.spec.Tools)
	field(c.spec.LuaCxxLibrary)
	section()
	sortedMap(c.spec.SDK)

	return buf.Bytes()
}

func cleanPaths(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Clean(p)
	}
	return out
}
