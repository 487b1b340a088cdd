package yamlfe_test

import (
	"context"
	"testing"

	"github.com/sandeepsanjusplr/buck/internal/adapters/frontend/frontendtest"
	"github.com/sandeepsanjusplr/buck/internal/adapters/frontend/yamlfe"
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
	"github.com/sandeepsanjusplr/buck/internal/core/ports/mocks"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const appBuild = `rules:
  - type: go_library
    name: server
    srcs: !glob
      include: ["**/*.go"]
      exclude: ["*_test.go"]
    deps: ["//lib:log"]
  - type: genrule
    name: version
    out: version.txt
    cmd: cp $SRCS $OUT
    timeout: 30
`

func newParser(t *testing.T, files frontendtest.Files, includes ...string) (ports.BuildFileParser, ports.Filesystem) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	pfs, globber := frontendtest.Cell(t, files)
	fe := yamlfe.New(mockLogger)
	assert.Equal(t, domain.SyntaxYAML, fe.Syntax())

	p, err := fe.NewParser(frontendtest.Options(pfs.Root(), includes...), pfs, globber)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p, pfs
}

func TestParse_Golden(t *testing.T) {
	p, pfs := newParser(t, frontendtest.Files{
		"app/BUCK":             appBuild,
		"app/main.go":          "",
		"app/main_test.go":     "",
		"app/internal/util.go": "",
		"app/sub/BUCK":         "",
		"app/sub/hidden.go":    "",
		"defs/common.yaml":     "defaults:\n  go_library:\n    visibility: [PUBLIC]\n",
	}, "//defs/common.yaml")

	m, err := p.Parse(context.Background(), "app/BUCK")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "app_manifest", frontendtest.Golden(t, pfs.Root(), m))
}

func TestParse_GlobList(t *testing.T) {
	p, _ := newParser(t, frontendtest.Files{
		"BUCK": "rules:\n  - {type: go_library, name: lib, srcs: !glob [\"*.go\"]}\n",
		"a.go": "",
		"b.go": "",
	})

	m, err := p.Parse(context.Background(), "BUCK")
	require.NoError(t, err)
	require.Len(t, m.Rules, 1)
	assert.Equal(t, []any{"a.go", "b.go"}, m.Rules[0].Attributes["srcs"])
}

func TestParse_Anchors(t *testing.T) {
	p, _ := newParser(t, frontendtest.Files{
		"BUCK": `rules:
  - type: go_library
    name: a
    srcs: &srcs ["x.go"]
  - type: go_library
    name: b
    srcs: *srcs
`,
	})

	m, err := p.Parse(context.Background(), "BUCK")
	require.NoError(t, err)
	require.Len(t, m.Rules, 2)
	assert.Equal(t, []any{"x.go"}, m.Rules[1].Attributes["srcs"])
}

func TestParse_EmptyFile(t *testing.T) {
	p, _ := newParser(t, frontendtest.Files{"BUCK": ""})

	m, err := p.Parse(context.Background(), "BUCK")
	require.NoError(t, err)
	assert.Empty(t, m.Rules)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		build   string
		include string
		wantErr error
	}{
		{name: "malformed yaml", build: "rules: [", wantErr: domain.ErrBuildFileParseFailed},
		{name: "unknown top-level key", build: "targets: []", wantErr: domain.ErrBuildFileParseFailed},
		{name: "rule without name", build: "rules:\n  - type: genrule\n    out: x\n", wantErr: domain.ErrBuildFileParseFailed},
		{name: "rule is not a mapping", build: "rules:\n  - genrule\n", wantErr: domain.ErrBuildFileParseFailed},
		{name: "null attribute", build: "rules:\n  - {type: genrule, name: x, out: ~}\n", wantErr: domain.ErrBuildFileParseFailed},
		{name: "defaults in build file", build: "defaults:\n  genrule: {cmd: x}\n", wantErr: domain.ErrBuildFileParseFailed},
		{name: "bad glob argument", build: "rules:\n  - {type: go_library, name: x, srcs: !glob \"*.go\"}\n", wantErr: domain.ErrBuildFileParseFailed},
		{name: "glob escapes package", build: "rules:\n  - {type: go_library, name: x, srcs: !glob [\"../*.go\"]}\n", wantErr: domain.ErrInvalidGlobPattern},
		{name: "wrong attribute kind", build: "rules:\n  - {type: genrule, name: x, out: [a]}\n", wantErr: domain.ErrInvalidAttribute},
		{name: "unknown rule type", build: "rules:\n  - {type: rust_library, name: x}\n", wantErr: domain.ErrUnknownRuleType},
		{
			name:    "glob in include",
			build:   "rules: []\n",
			include: "defaults:\n  go_library:\n    srcs: !glob [\"*.go\"]\n",
			wantErr: domain.ErrBuildFileParseFailed,
		},
		{
			name:    "rules in include",
			build:   "rules: []\n",
			include: "rules:\n  - {type: genrule, name: x, out: y}\n",
			wantErr: domain.ErrBuildFileParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := frontendtest.Files{"BUCK": tt.build}
			var includes []string
			if tt.include != "" {
				files["defs.yaml"] = tt.include
				includes = append(includes, "//defs.yaml")
			}
			p, _ := newParser(t, files, includes...)

			_, err := p.Parse(context.Background(), "BUCK")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
