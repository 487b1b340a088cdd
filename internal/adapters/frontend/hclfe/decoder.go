// Package hclfe is the HCL build-file front end.
//
// Every top-level block declares one rule: the block type is the rule type and
// its single label is the rule name. Attribute expressions may call glob():
//
//	go_library "server" {
//	  srcs = glob(["*.go"], ["*_test.go"])
//	  deps = ["//lib:log"]
//	}
//
// Include files contribute defaults through `defaults "<rule type>" { ... }` blocks.
package hclfe

import (
	"maps"
	"slices"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/sandeepsanjusplr/buck/internal/adapters/frontend"
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"go.trai.ch/zerr"
)

var includeSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{{Type: "defaults", LabelNames: []string{"rule_type"}}},
}

type decoder struct{}

var _ frontend.Decoder = decoder{}

func (decoder) parse(path string, data []byte) (*hcl.File, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, diagError(path, diags)
	}
	return file, nil
}

// Rules implements frontend.Decoder.
func (d decoder) Rules(path string, data []byte, glob frontend.GlobFunc) ([]domain.RawRule, error) {
	file, err := d.parse(path, data)
	if err != nil {
		return nil, err
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrBuildFileParseFailed, "not a native HCL file"), "path", path)
	}

	if names := slices.Sorted(maps.Keys(body.Attributes)); len(names) > 0 {
		attr := body.Attributes[names[0]]
		return nil, parseError(path, attr.SrcRange, "top-level attribute "+attr.Name+" is not allowed")
	}

	fn := newFunctions(glob)
	rules := make([]domain.RawRule, 0, len(body.Blocks))
	for _, block := range body.Blocks {
		if len(block.Labels) != 1 {
			return nil, parseError(path, block.TypeRange, "rule "+block.Type+" needs exactly one name label")
		}
		attrs, err := evalAttributes(path, block.Body, fn)
		if err != nil {
			return nil, err
		}
		rules = append(rules, domain.RawRule{Type: block.Type, Name: block.Labels[0], Attributes: attrs})
	}
	return rules, nil
}

// Defaults implements frontend.Decoder.
func (d decoder) Defaults(path string, data []byte) (frontend.Defaults, error) {
	file, err := d.parse(path, data)
	if err != nil {
		return nil, err
	}
	content, diags := file.Body.Content(includeSchema)
	if diags.HasErrors() {
		return nil, diagError(path, diags)
	}

	fn := newFunctions(nil)
	out := make(frontend.Defaults, len(content.Blocks))
	for _, block := range content.Blocks {
		attrs, err := evalAttributes(path, block.Body, fn)
		if err != nil {
			return nil, err
		}
		ruleType := block.Labels[0]
		if out[ruleType] == nil {
			out[ruleType] = attrs
			continue
		}
		for k, v := range attrs {
			out[ruleType][k] = v
		}
	}
	return out, nil
}

func evalAttributes(path string, body hcl.Body, fn *functions) (map[string]any, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diagError(path, diags)
	}

	out := make(map[string]any, len(attrs))
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		attr := attrs[name]
		val, diags := attr.Expr.Value(fn.evalContext())
		if err := fn.takeErr(); err != nil {
			return nil, zerr.With(err, "attribute", name)
		}
		if diags.HasErrors() {
			return nil, diagError(path, diags)
		}
		v, err := toGo(val)
		if err != nil {
			return nil, parseError(path, attr.Range, err.Error())
		}
		out[name] = v
	}
	return out, nil
}

func diagError(path string, diags hcl.Diagnostics) error {
	err := zerr.With(zerr.Wrap(domain.ErrBuildFileParseFailed, diags.Error()), "path", path)
	for _, d := range diags {
		if d.Severity == hcl.DiagError && d.Subject != nil {
			return zerr.With(err, "line", strconv.Itoa(d.Subject.Start.Line))
		}
	}
	return err
}

func parseError(path string, rng hcl.Range, msg string) error {
	err := zerr.With(zerr.Wrap(domain.ErrBuildFileParseFailed, msg), "path", path)
	return zerr.With(err, "line", strconv.Itoa(rng.Start.Line))
}
