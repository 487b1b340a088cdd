// Package config loads the per-cell .buckconfig.yaml file.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger  ports.Logger
	FS      FileSystem
	Environ func() []string
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a Loader that reads from the OS filesystem and captures the
// process environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS(), Environ: os.Environ}
}

// Load reads the configuration of the cell rooted at root. A cell without a
// config file gets the defaults.
func (l *Loader) Load(root string) (domain.Config, error) {
	root = filepath.Clean(root)
	configPath := filepath.Join(root, domain.ConfigFileName)

	var file Buckconfig
	data, err := l.FS.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.Logger.Debug("no config file, using defaults", "cell", root)
	case err != nil:
		err = zerr.Wrap(domain.ErrConfigReadFailed, err.Error())
		return domain.Config{}, zerr.With(err, "path", configPath)
	default:
		if err := decodeStrict(data, &file); err != nil {
			err = zerr.Wrap(domain.ErrConfigParseFailed, err.Error())
			return domain.Config{}, zerr.With(err, "path", configPath)
		}
	}

	spec, err := l.toSpec(root, &file)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}
	return domain.NewConfig(spec), nil
}

func (l *Loader) toSpec(root string, file *Buckconfig) (domain.ConfigSpec, error) {
	parser, err := toParserConfig(root, &file.Parser)
	if err != nil {
		return domain.ConfigSpec{}, err
	}

	repos := make(map[string]string, len(file.Repositories))
	for name, p := range file.Repositories {
		repos[name] = resolvePath(root, p)
	}

	ignore := make([]string, 0, len(file.Project.Ignore)+1)
	ignore = append(ignore, domain.BuckDirName)
	for _, p := range file.Project.Ignore {
		p = strings.Trim(path.Clean(filepath.ToSlash(p)), "/")
		if p != "" && p != "." && p != domain.BuckDirName {
			ignore = append(ignore, p)
		}
	}

	var env map[string]string
	if l.Environ != nil {
		env = parseEnviron(l.Environ())
	}

	return domain.ConfigSpec{
		CellName:      file.Cell.Name,
		Repositories:  repos,
		Parser:        parser,
		Ignore:        ignore,
		Tools:         file.Tools,
		LuaCxxLibrary: file.Lua.CxxLibrary,
		SDK:           file.SDK,
		UI:            file.UI,
		Environment:   env,
	}, nil
}

func toParserConfig(root string, dto *ParserDTO) (domain.ParserConfig, error) {
	p := domain.DefaultParserConfig()

	if dto.BuildFileName != "" {
		p.BuildFileName = dto.BuildFileName
	}
	if dto.EnforcePackageBoundary != nil {
		p.EnforcePackageBoundary = *dto.EnforcePackageBoundary
	}
	if dto.AllowEmptyGlobs != nil {
		p.AllowEmptyGlobs = *dto.AllowEmptyGlobs
	}
	p.PolyglotParsingEnabled = dto.PolyglotParsingEnabled
	p.DefaultIncludes = dto.DefaultIncludes

	for _, exc := range dto.PackageBoundaryExceptions {
		p.PackageBoundaryExceptions = append(p.PackageBoundaryExceptions, resolvePath(root, exc))
	}

	if dto.DefaultBuildFileSyntax != "" {
		syntax, err := domain.ParseSyntax(dto.DefaultBuildFileSyntax)
		if err != nil {
			return p, err
		}
		p.DefaultBuildFileSyntax = syntax
	}

	handler, err := domain.ParseGlobHandler(dto.GlobHandler)
	if err != nil {
		return p, err
	}
	p.GlobHandler = handler

	if dto.WatchQueryTimeout != "" {
		d, err := time.ParseDuration(dto.WatchQueryTimeout)
		if err != nil || d <= 0 {
			err := zerr.Wrap(domain.ErrConfigParseFailed, "watch_query_timeout must be a positive duration")
			return p, zerr.With(err, "value", dto.WatchQueryTimeout)
		}
		p.WatchQueryTimeout = d
	}

	return p, nil
}

// decodeStrict rejects unknown keys so typos in section names surface early.
func decodeStrict(data []byte, target *Buckconfig) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

func parseEnviron(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = v
		}
	}
	return env
}
