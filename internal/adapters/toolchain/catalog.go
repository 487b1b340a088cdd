package toolchain

import (
	"maps"

	"github.com/sandeepsanjusplr/buck/internal/core/domain"
)

// Toolchain names.
const (
	ToolchainGo     = "go"
	ToolchainCxx    = "cxx"
	ToolchainNode   = "node"
	ToolchainLua    = "lua"
	ToolchainPython = "python"
)

// VariantSystem marks a descriptor that links against a library provided by the host.
const VariantSystem = "system"

// defaultExecutables maps each known toolchain to the executable probed when the
// configuration does not name one.
var defaultExecutables = map[string]string{
	ToolchainGo:     "go",
	ToolchainCxx:    "cc",
	ToolchainNode:   "node",
	ToolchainLua:    "lua",
	ToolchainPython: "python3",
}

func attrs(specs ...domain.AttributeSpec) []domain.AttributeSpec {
	return specs
}

func req(name string, kind domain.AttrKind) domain.AttributeSpec {
	return domain.AttributeSpec{Name: name, Kind: kind, Required: true}
}

func opt(name string, kind domain.AttrKind) domain.AttributeSpec {
	return domain.AttributeSpec{Name: name, Kind: kind}
}

var (
	srcs = opt("srcs", domain.AttrList)
	deps = opt("deps", domain.AttrList)
	vis  = opt("visibility", domain.AttrList)
)

// builtinRules returns a fresh copy of the catalog. Each registry owns its descriptors.
func builtinRules() []*domain.RuleDescriptor {
	return []*domain.RuleDescriptor{
		{Type: domain.RuleType{Name: "genrule"}, Attributes: attrs(
			req("out", domain.AttrString), opt("cmd", domain.AttrString), srcs, deps, vis)},
		{Type: domain.RuleType{Name: "filegroup"}, Attributes: attrs(
			req("srcs", domain.AttrList), vis)},
		{Type: domain.RuleType{Name: "export_file"}, Attributes: attrs(
			opt("src", domain.AttrString), opt("out", domain.AttrString), vis)},
		{Type: domain.RuleType{Name: "sh_binary"}, Attributes: attrs(
			req("main", domain.AttrString), opt("resources", domain.AttrList), deps, vis)},
		{Type: domain.RuleType{Name: "sh_test", Test: true}, Attributes: attrs(
			req("test", domain.AttrString), opt("args", domain.AttrList), deps, vis)},

		{Type: domain.RuleType{Name: "go_library"}, Toolchain: ToolchainGo, Attributes: attrs(
			req("srcs", domain.AttrList), opt("package_name", domain.AttrString), deps, vis)},
		{Type: domain.RuleType{Name: "go_binary"}, Toolchain: ToolchainGo, Attributes: attrs(
			req("srcs", domain.AttrList), opt("linker_flags", domain.AttrList), deps, vis)},
		{Type: domain.RuleType{Name: "go_test", Test: true}, Toolchain: ToolchainGo, Attributes: attrs(
			req("srcs", domain.AttrList), opt("library", domain.AttrString), deps, vis)},

		{Type: domain.RuleType{Name: "cxx_library"}, Toolchain: ToolchainCxx, Attributes: attrs(
			srcs, opt("headers", domain.AttrList), opt("exported_headers", domain.AttrList),
			opt("linker_flags", domain.AttrList), opt("preferred_linkage", domain.AttrString), deps, vis)},
		{Type: domain.RuleType{Name: "cxx_binary"}, Toolchain: ToolchainCxx, Attributes: attrs(
			req("srcs", domain.AttrList), opt("headers", domain.AttrList), opt("linker_flags", domain.AttrList), deps, vis)},
		{Type: domain.RuleType{Name: "cxx_test", Test: true}, Toolchain: ToolchainCxx, Attributes: attrs(
			req("srcs", domain.AttrList), deps, vis)},

		{Type: domain.RuleType{Name: "js_library"}, Toolchain: ToolchainNode, Attributes: attrs(
			req("worker", domain.AttrString), srcs, deps, vis)},
		{Type: domain.RuleType{Name: "js_bundle"}, Toolchain: ToolchainNode, Attributes: attrs(
			req("worker", domain.AttrString), req("entry", domain.AttrList), opt("bundle_name", domain.AttrString),
			opt("extra_json", domain.AttrString), deps, vis)},

		{Type: domain.RuleType{Name: "python_library"}, Toolchain: ToolchainPython, Attributes: attrs(
			srcs, opt("base_module", domain.AttrString), deps, vis)},
		{Type: domain.RuleType{Name: "python_binary"}, Toolchain: ToolchainPython, Attributes: attrs(
			req("main", domain.AttrString), deps, vis)},
		{Type: domain.RuleType{Name: "python_test", Test: true}, Toolchain: ToolchainPython, Attributes: attrs(
			req("srcs", domain.AttrList), deps, vis)},
	}
}

// luaRules returns the Lua descriptors. Without a configured C library target the
// rules link against the host's liblua.
func luaRules(cxxLibrary string) []*domain.RuleDescriptor {
	variant := ""
	defaults := map[string]any{"cxx_library": cxxLibrary}
	if cxxLibrary == "" {
		variant = VariantSystem
		defaults = map[string]any{
			"native_linker_flags": []any{"-llua"},
			"preferred_linkage":   "shared",
		}
	}

	lib := &domain.RuleDescriptor{
		Type:      domain.RuleType{Name: "lua_library"},
		Toolchain: ToolchainLua,
		Variant:   variant,
		Defaults:  defaults,
		Attributes: attrs(srcs, opt("base_module", domain.AttrString),
			opt("cxx_library", domain.AttrString), opt("native_linker_flags", domain.AttrList),
			opt("preferred_linkage", domain.AttrString), deps, vis),
	}
	bin := &domain.RuleDescriptor{
		Type:      domain.RuleType{Name: "lua_binary"},
		Toolchain: ToolchainLua,
		Variant:   variant,
		Defaults:  maps.Clone(defaults),
		Attributes: attrs(req("main_module", domain.AttrString),
			opt("cxx_library", domain.AttrString), opt("native_linker_flags", domain.AttrList),
			opt("preferred_linkage", domain.AttrString), deps, vis),
	}
	return []*domain.RuleDescriptor{lib, bin}
}

// androidRules returns the descriptors enabled by the SDK environment.
func androidRules(sdk domain.SDKEnvironment) []*domain.RuleDescriptor {
	var rules []*domain.RuleDescriptor
	if sdk.AndroidSDK != "" {
		rules = append(rules,
			&domain.RuleDescriptor{Type: domain.RuleType{Name: "android_library"}, ToolchainPath: sdk.AndroidSDK,
				Attributes: attrs(srcs, opt("manifest", domain.AttrString), deps, vis)},
			&domain.RuleDescriptor{Type: domain.RuleType{Name: "android_resource"}, ToolchainPath: sdk.AndroidSDK,
				Attributes: attrs(req("package", domain.AttrString), opt("res", domain.AttrString), deps, vis)},
		)
	}
	if sdk.AndroidNDK != "" {
		rules = append(rules,
			&domain.RuleDescriptor{Type: domain.RuleType{Name: "ndk_library"}, ToolchainPath: sdk.AndroidNDK,
				Attributes: attrs(srcs, opt("flags", domain.AttrList), deps, vis)},
		)
	}
	return rules
}
