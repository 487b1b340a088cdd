package domain_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func baseSpec() domain.ConfigSpec {
	return domain.ConfigSpec{
		CellName:     "main",
		Repositories: map[string]string{"lib": "/src/lib/", "tools": "/src/tools"},
		Parser:       domain.DefaultParserConfig(),
		Tools:        map[string]string{"go": "go"},
		SDK:          map[string]string{"android_sdk": "/opt/android"},
		UI:           map[string]string{"color": "auto"},
		Environment:  map[string]string{"HOME": "/home/dev"},
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := domain.NewConfig(domain.ConfigSpec{
		Repositories: map[string]string{"lib": "/src/lib/../lib2/"},
		Parser: domain.ParserConfig{
			PackageBoundaryExceptions: []string{"/src/main/third-party/"},
		},
	})

	p := cfg.Parser()
	assert.Equal(t, domain.DefaultBuildFileName, p.BuildFileName)
	assert.Equal(t, domain.SyntaxYAML, p.DefaultBuildFileSyntax)
	assert.Equal(t, domain.GlobHandlerDirect, p.GlobHandler)
	assert.Equal(t, []string{filepath.Clean("/src/main/third-party")}, p.PackageBoundaryExceptions)
	assert.Equal(t, map[string]string{"lib": filepath.Clean("/src/lib2")}, cfg.Repositories())
	assert.Empty(t, cfg.CellName())
}

func TestConfig_Immutable(t *testing.T) {
	spec := baseSpec()
	cfg := domain.NewConfig(spec)

	spec.Tools["go"] = "/changed"
	repos := cfg.Repositories()
	repos["extra"] = "/x"

	tool, ok := cfg.Tool("go")
	assert.True(t, ok)
	assert.Equal(t, "go", tool)
	assert.NotContains(t, cfg.Repositories(), "extra")
}

func TestConfig_EqualForRestart(t *testing.T) {
	base := domain.NewConfig(baseSpec())

	tests := []struct {
		name   string
		mutate func(*domain.ConfigSpec)
		equal  bool
	}{
		{name: "identical", mutate: func(*domain.ConfigSpec) {}, equal: true},
		{name: "ui only", mutate: func(s *domain.ConfigSpec) { s.UI = map[string]string{"color": "never"} }, equal: true},
		{name: "environment only", mutate: func(s *domain.ConfigSpec) { s.Environment = nil }, equal: true},
		{name: "trailing slash in repository", mutate: func(s *domain.ConfigSpec) { s.Repositories["lib"] = "/src/lib" }, equal: true},
		{name: "cell name", mutate: func(s *domain.ConfigSpec) { s.CellName = "other" }},
		{name: "repository", mutate: func(s *domain.ConfigSpec) { s.Repositories["lib"] = "/src/lib3" }},
		{name: "build file name", mutate: func(s *domain.ConfigSpec) { s.Parser.BuildFileName = "TARGETS" }},
		{name: "polyglot", mutate: func(s *domain.ConfigSpec) { s.Parser.PolyglotParsingEnabled = true }},
		{name: "watch timeout", mutate: func(s *domain.ConfigSpec) { s.Parser.WatchQueryTimeout = time.Minute }},
		{name: "tool", mutate: func(s *domain.ConfigSpec) { s.Tools = map[string]string{"go": "/usr/local/go/bin/go"} }},
		{name: "sdk", mutate: func(s *domain.ConfigSpec) { s.SDK = nil }},
		{name: "ignore", mutate: func(s *domain.ConfigSpec) { s.Ignore = []string{"node_modules"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := baseSpec()
			tt.mutate(&spec)
			other := domain.NewConfig(spec)

			assert.Equal(t, tt.equal, base.EqualForRestart(other))
			assert.Equal(t, tt.equal, base.Fingerprint() == other.Fingerprint())
		})
	}
}

func TestResolveSDKEnvironment(t *testing.T) {
	spec := baseSpec()
	spec.Environment = map[string]string{"ANDROID_SDK_ROOT": "/env/sdk", "ANDROID_NDK_HOME": "/env/ndk/"}
	env := domain.ResolveSDKEnvironment(domain.NewConfig(spec))
	assert.Equal(t, filepath.Clean("/opt/android"), env.AndroidSDK, "the sdk section wins")
	assert.Equal(t, filepath.Clean("/env/ndk"), env.AndroidNDK)

	assert.Equal(t, domain.SDKEnvironment{}, domain.ResolveSDKEnvironment(domain.NewConfig(domain.ConfigSpec{})))
}
