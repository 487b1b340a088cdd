// Package frontend holds the parts of build-file parsing that every syntax shares:
// default includes, rule defaults, validation and glob evaluation. The syntax
// packages only decode bytes into rule declarations.
package frontend

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildFileParser = (*Parser)(nil)

// GlobFunc evaluates a glob relative to the package of the build file being decoded.
type GlobFunc func(include, exclude []string) ([]any, error)

// Defaults maps a rule type to the attribute values an include contributes.
type Defaults map[string]map[string]any

// Decoder turns the bytes of one file into declarations.
type Decoder interface {
	// Rules decodes the rules of a build file. glob is bound to the file's package.
	Rules(path string, data []byte, glob GlobFunc) ([]domain.RawRule, error)
	// Defaults decodes the per rule type defaults of an include file.
	Defaults(path string, data []byte) (Defaults, error)
}

// Parser implements ports.BuildFileParser on top of a Decoder.
type Parser struct {
	syntax  domain.Syntax
	decoder Decoder
	opts    domain.ParserOptions
	index   map[string]*domain.RuleDescriptor
	fs      ports.Filesystem
	globber ports.Globber
	logger  ports.Logger

	closed atomic.Bool

	mu       sync.Mutex
	loaded   bool
	defaults Defaults
	includes []string
}

// NewParser creates a parser for one parse session.
func NewParser(
	syntax domain.Syntax,
	decoder Decoder,
	opts domain.ParserOptions,
	fs ports.Filesystem,
	globber ports.Globber,
	logger ports.Logger,
) *Parser {
	opts = opts.Clone()
	return &Parser{
		syntax:  syntax,
		decoder: decoder,
		opts:    opts,
		index:   opts.DescriptionIndex(),
		fs:      fs,
		globber: globber,
		logger:  logger,
	}
}

// Parse reads one build file, applies defaults and validates every rule.
func (p *Parser) Parse(ctx context.Context, buildFile string) (*domain.BuildFileManifest, error) {
	if p.closed.Load() {
		return nil, zerr.With(zerr.Wrap(domain.ErrParserClosed, "parse after close"), "path", buildFile)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buildFile = p.fs.Resolve(buildFile)
	data, err := p.fs.ReadFile(buildFile)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrBuildFileReadFailed, err.Error()), "path", buildFile)
	}

	defaults, includes, err := p.loadDefaults()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(buildFile)
	base, err := p.fs.Relativize(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrBuildFileParseFailed, "build file is outside the cell"), "path", buildFile)
	}

	rules, err := p.decoder.Rules(buildFile, data, p.globIn(ctx, dir, buildFile))
	if err != nil {
		return nil, err
	}

	manifest := &domain.BuildFileManifest{
		Path:     buildFile,
		Syntax:   p.syntax,
		Rules:    make([]domain.RawRule, 0, len(rules)),
		Includes: includes,
	}
	seen := make(map[string]struct{}, len(rules))
	for _, rule := range rules {
		if _, dup := seen[rule.Name]; dup {
			err := zerr.With(zerr.Wrap(domain.ErrDuplicateRule, "rule "+rule.Name+" is declared twice"), "rule", rule.Name)
			return nil, zerr.With(err, "path", buildFile)
		}
		seen[rule.Name] = struct{}{}

		desc, ok := p.index[rule.Type]
		if !ok {
			err := zerr.With(zerr.Wrap(domain.ErrUnknownRuleType, "unknown rule type "+rule.Type), "rule_type", rule.Type)
			return nil, zerr.With(err, "path", buildFile)
		}

		rule.BasePath = base
		rule.BuildFile = buildFile
		rule.Attributes = merge(desc.Defaults, defaults[rule.Type], rule.Attributes)
		if err := desc.Validate(rule); err != nil {
			return nil, zerr.With(err, "path", buildFile)
		}
		manifest.Rules = append(manifest.Rules, rule)
	}
	return manifest, nil
}

// Close marks the parser closed. It is safe to call more than once.
func (p *Parser) Close() error {
	p.closed.Store(true)
	return nil
}

// globIn binds glob evaluation to the package directory of one build file.
func (p *Parser) globIn(ctx context.Context, dir, buildFile string) GlobFunc {
	return func(include, exclude []string) ([]any, error) {
		matches, err := p.globber.Glob(ctx, dir, include, exclude)
		if err != nil {
			return nil, zerr.With(err, "path", buildFile)
		}
		if len(matches) == 0 && !p.opts.AllowEmptyGlobs {
			err := zerr.With(zerr.Wrap(domain.ErrEmptyGlob, "glob matched no files"), "include", strings.Join(include, ","))
			return nil, zerr.With(err, "path", buildFile)
		}
		out := make([]any, len(matches))
		for i, m := range matches {
			out[i] = m
		}
		return out, nil
	}
}

// loadDefaults reads the default includes once per parser. Failures are not
// remembered, so a later Parse retries.
func (p *Parser) loadDefaults() (Defaults, []string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loaded {
		return p.defaults, p.includes, nil
	}

	merged := Defaults{}
	var includes []string
	for _, inc := range p.opts.DefaultIncludes {
		path, err := ResolveInclude(p.opts, inc)
		if err != nil {
			return nil, nil, err
		}
		if !p.fs.IsFile(path) {
			p.logger.Warn("default include not found, skipping", "include", inc, "path", path)
			continue
		}

		data, err := p.fs.ReadFile(path)
		if err != nil {
			return nil, nil, zerr.With(zerr.Wrap(domain.ErrIncludeResolutionFailed, err.Error()), "include", inc)
		}
		defs, err := p.decoder.Defaults(path, data)
		if err != nil {
			return nil, nil, zerr.With(err, "include", inc)
		}
		for ruleType, attrs := range defs {
			if merged[ruleType] == nil {
				merged[ruleType] = map[string]any{}
			}
			for k, v := range attrs {
				merged[ruleType][k] = v
			}
		}
		includes = append(includes, path)
	}

	p.defaults, p.includes, p.loaded = merged, includes, true
	return merged, includes, nil
}

// ResolveInclude maps "//path" or "cell//path" to an absolute path inside the
// named cell.
func ResolveInclude(opts domain.ParserOptions, include string) (string, error) {
	cell, rel, ok := strings.Cut(include, "//")
	if !ok || rel == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrIncludeResolutionFailed, "include must look like //path or cell//path"), "include", include)
	}
	cell = strings.TrimPrefix(cell, "@")

	root, known := opts.CellRoot(cell)
	if !known {
		err := zerr.Wrap(domain.ErrIncludeResolutionFailed, "include names an unknown cell")
		return "", zerr.With(zerr.With(err, "include", include), "cell", cell)
	}

	rel = filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(zerr.Wrap(domain.ErrIncludeResolutionFailed, "include escapes its cell"), "include", include)
	}
	return filepath.Join(root, rel), nil
}

// merge layers attribute maps, later layers winning. Values are copied so rules
// never share mutable lists or maps.
func merge(layers ...map[string]any) map[string]any {
	out := map[string]any{}
	for _, layer := range layers {
		for k, v := range layer {
			out[k] = cloneValue(v)
		}
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
