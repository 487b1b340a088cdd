package toolchain_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sandeepsanjusplr/buck/internal/adapters/toolchain"
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakePath resolves only the listed executables and records every probe.
type fakePath struct {
	mu     sync.Mutex
	found  map[string]string
	probed []string
}

func (f *fakePath) lookPath(file string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.probed = append(f.probed, file)
	if p, ok := f.found[file]; ok {
		return p, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func newFactory(t *testing.T, found map[string]string) (*toolchain.Factory, *fakePath, *mocks.MockFilesystem) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	mockFS := mocks.NewMockFilesystem(ctrl)
	mockFS.EXPECT().Resolve(gomock.Any()).DoAndReturn(func(rel string) string {
		return filepath.Join("/repo", rel)
	}).AnyTimes()

	fp := &fakePath{found: found}
	return toolchain.NewFactory(mockLogger).WithLookPath(fp.lookPath), fp, mockFS
}

func ruleNames(r *domain.RuleTypeRegistry) []string {
	var names []string
	for _, d := range r.AllDescriptions() {
		names = append(names, d.Type.Name)
	}
	return names
}

func TestFactory_Create_OnlyToolchainFreeRules(t *testing.T) {
	f, fp, fs := newFactory(t, nil)

	reg, err := f.Create(context.Background(), domain.NewConfig(domain.ConfigSpec{}), fs)
	require.NoError(t, err)

	assert.Equal(t, []string{"export_file", "filegroup", "genrule", "sh_binary", "sh_test"}, ruleNames(reg))
	assert.ElementsMatch(t, []string{"cc", "go", "lua", "node", "python3"}, fp.probed)
}

func TestFactory_Create_ResolvedToolchains(t *testing.T) {
	f, _, fs := newFactory(t, map[string]string{
		"go":                   "/usr/bin/go",
		"/repo/tools/node/bin": "/repo/tools/node/bin",
	})

	cfg := domain.NewConfig(domain.ConfigSpec{Tools: map[string]string{"node": "tools/node/bin"}})
	reg, err := f.Create(context.Background(), cfg, fs)
	require.NoError(t, err)

	goLib, err := reg.Description(domain.RuleType{Name: "go_library"})
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/go", goLib.ToolchainPath)

	bundle, err := reg.Description(domain.RuleType{Name: "js_bundle"})
	require.NoError(t, err)
	assert.Equal(t, "/repo/tools/node/bin", bundle.ToolchainPath)

	_, err = reg.BuildRuleType("cxx_library")
	assert.ErrorIs(t, err, domain.ErrUnknownRuleType)
}

func TestFactory_Create_ExplicitToolchainMissing(t *testing.T) {
	f, _, fs := newFactory(t, nil)

	cfg := domain.NewConfig(domain.ConfigSpec{Tools: map[string]string{"cxx": "clang++"}})
	_, err := f.Create(context.Background(), cfg, fs)
	require.ErrorIs(t, err, domain.ErrToolchainNotFound)
}

func TestFactory_Create_LuaVariants(t *testing.T) {
	found := map[string]string{"lua": "/usr/bin/lua"}

	t.Run("system library without configured target", func(t *testing.T) {
		f, _, fs := newFactory(t, found)
		reg, err := f.Create(context.Background(), domain.NewConfig(domain.ConfigSpec{}), fs)
		require.NoError(t, err)

		lib, err := reg.Description(domain.RuleType{Name: "lua_library"})
		require.NoError(t, err)
		assert.Equal(t, toolchain.VariantSystem, lib.Variant)
		assert.Equal(t, []any{"-llua"}, lib.Defaults["native_linker_flags"])
		assert.Equal(t, "shared", lib.Defaults["preferred_linkage"])
	})

	t.Run("configured library target", func(t *testing.T) {
		f, _, fs := newFactory(t, found)
		cfg := domain.NewConfig(domain.ConfigSpec{LuaCxxLibrary: "//third-party/lua:lua"})
		reg, err := f.Create(context.Background(), cfg, fs)
		require.NoError(t, err)

		bin, err := reg.Description(domain.RuleType{Name: "lua_binary"})
		require.NoError(t, err)
		assert.Empty(t, bin.Variant)
		assert.Equal(t, "//third-party/lua:lua", bin.Defaults["cxx_library"])
	})
}

func TestFactory_Create_AndroidFromSDKEnvironment(t *testing.T) {
	f, _, fs := newFactory(t, nil)

	cfg := domain.NewConfig(domain.ConfigSpec{Environment: map[string]string{"ANDROID_HOME": "/opt/android"}})
	reg, err := f.Create(context.Background(), cfg, fs)
	require.NoError(t, err)

	assert.Contains(t, ruleNames(reg), "android_library")
	assert.NotContains(t, ruleNames(reg), "ndk_library")
}

func TestFactory_Create_Cancelled(t *testing.T) {
	f, _, fs := newFactory(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Create(ctx, domain.NewConfig(domain.ConfigSpec{}), fs)
	require.ErrorIs(t, err, context.Canceled)
}
