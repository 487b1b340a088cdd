package domain

import (
	"maps"
	"time"
)

// ParserOptions is resolved for each parser request and never cached on a cell,
// since callers may ask for different profiling behavior each time.
type ParserOptions struct {
	SessionID         string
	ProjectRoot       string
	CellRoots         map[string]string // cell name -> absolute root, including this cell
	CellName          string
	BuildFileName     string
	DefaultIncludes   []string
	IgnorePaths       []string
	DefaultSyntax     Syntax
	Polyglot          bool
	GlobHandler       GlobHandler
	AllowEmptyGlobs   bool
	EnableProfiling   bool
	WatchQueryTimeout time.Duration
	Descriptions      []*RuleDescriptor
}

// DescriptionIndex returns the descriptors keyed by rule-type name.
func (o ParserOptions) DescriptionIndex() map[string]*RuleDescriptor {
	idx := make(map[string]*RuleDescriptor, len(o.Descriptions))
	for _, d := range o.Descriptions {
		idx[d.Type.Name] = d
	}
	return idx
}

// CellRoot resolves a cell name visible to the parser.
func (o ParserOptions) CellRoot(name string) (string, bool) {
	if name == "" || name == o.CellName {
		return o.ProjectRoot, true
	}
	root, ok := o.CellRoots[name]
	return root, ok
}

// Clone returns a copy whose maps and slices are not shared with o.
func (o ParserOptions) Clone() ParserOptions {
	c := o
	c.CellRoots = maps.Clone(o.CellRoots)
	c.DefaultIncludes = append([]string(nil), o.DefaultIncludes...)
	c.IgnorePaths = append([]string(nil), o.IgnorePaths...)
	c.Descriptions = append([]*RuleDescriptor(nil), o.Descriptions...)
	return c
}

// WatchOptions configures a watch service for one cell.
type WatchOptions struct {
	BuildFileName string
	Ignore        []string
	QueryTimeout  time.Duration
}
