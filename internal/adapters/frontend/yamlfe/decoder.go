// Package yamlfe is the declarative YAML build-file front end.
//
// A build file lists rules under a top-level "rules" key. Every rule names its
// type and name; all other keys are attributes. Values tagged !glob are expanded
// against the package:
//
//	rules:
//	  - type: go_library
//	    name: server
//	    srcs: !glob ["*.go"]
//	    deps: ["//lib:log"]
//
// Include files contribute defaults per rule type under a "defaults" key.
package yamlfe

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	"github.com/sandeepsanjusplr/buck/internal/adapters/frontend"
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// GlobTag marks a value that is expanded by globbing the package.
const GlobTag = "!glob"

type document struct {
	Rules    []yaml.Node          `yaml:"rules"`
	Defaults map[string]yaml.Node `yaml:"defaults"`
}

type decoder struct{}

var _ frontend.Decoder = decoder{}

func (decoder) decode(path string, data []byte) (document, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return document{}, zerr.With(zerr.Wrap(domain.ErrBuildFileParseFailed, err.Error()), "path", path)
	}
	return doc, nil
}

// Rules implements frontend.Decoder.
func (d decoder) Rules(path string, data []byte, glob frontend.GlobFunc) ([]domain.RawRule, error) {
	doc, err := d.decode(path, data)
	if err != nil {
		return nil, err
	}
	if len(doc.Defaults) > 0 {
		return nil, parseError(path, 0, "defaults are only allowed in include files")
	}

	rules := make([]domain.RawRule, 0, len(doc.Rules))
	for i := range doc.Rules {
		rule, err := decodeRule(path, &doc.Rules[i], glob)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// Defaults implements frontend.Decoder.
func (d decoder) Defaults(path string, data []byte) (frontend.Defaults, error) {
	doc, err := d.decode(path, data)
	if err != nil {
		return nil, err
	}
	if len(doc.Rules) > 0 {
		return nil, parseError(path, doc.Rules[0].Line, "include files cannot declare rules")
	}

	out := make(frontend.Defaults, len(doc.Defaults))
	for ruleType, node := range doc.Defaults {
		v, err := convert(path, &node, nil)
		if err != nil {
			return nil, err
		}
		attrs, ok := v.(map[string]any)
		if !ok {
			return nil, parseError(path, node.Line, "defaults for "+ruleType+" must be a mapping")
		}
		out[ruleType] = attrs
	}
	return out, nil
}

func decodeRule(path string, node *yaml.Node, glob frontend.GlobFunc) (domain.RawRule, error) {
	if node.Kind != yaml.MappingNode {
		return domain.RawRule{}, parseError(path, node.Line, "rule must be a mapping")
	}

	rule := domain.RawRule{Attributes: map[string]any{}}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "type", "name":
			if val.Kind != yaml.ScalarNode || val.Value == "" {
				return domain.RawRule{}, parseError(path, val.Line, key.Value+" must be a non-empty string")
			}
			if key.Value == "type" {
				rule.Type = val.Value
			} else {
				rule.Name = val.Value
			}
		default:
			v, err := convert(path, val, glob)
			if err != nil {
				return domain.RawRule{}, err
			}
			rule.Attributes[key.Value] = v
		}
	}

	if rule.Type == "" || rule.Name == "" {
		return domain.RawRule{}, parseError(path, node.Line, "rule needs both type and name")
	}
	return rule, nil
}

// convert turns a YAML node into a plain Go value. glob is nil where globbing is
// not available.
func convert(path string, node *yaml.Node, glob frontend.GlobFunc) (any, error) {
	if node.Tag == GlobTag {
		return expandGlob(path, node, glob)
	}

	switch node.Kind {
	case yaml.AliasNode:
		return convert(path, node.Alias, glob)
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, parseError(path, node.Line, err.Error())
		}
		if v == nil {
			return nil, parseError(path, node.Line, "null values are not allowed")
		}
		return v, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, n := range node.Content {
			v, err := convert(path, n, glob)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, parseError(path, key.Line, "mapping keys must be strings")
			}
			v, err := convert(path, node.Content[i+1], glob)
			if err != nil {
				return nil, err
			}
			out[key.Value] = v
		}
		return out, nil
	default:
		return nil, parseError(path, node.Line, "unsupported value")
	}
}

// expandGlob evaluates "!glob [patterns]" or "!glob {include: [...], exclude: [...]}".
func expandGlob(path string, node *yaml.Node, glob frontend.GlobFunc) (any, error) {
	if glob == nil {
		return nil, parseError(path, node.Line, "glob is not available here")
	}

	var args struct {
		Include []string `yaml:"include"`
		Exclude []string `yaml:"exclude"`
	}
	plain := *node
	plain.Tag = ""

	var err error
	switch node.Kind {
	case yaml.SequenceNode:
		err = plain.Decode(&args.Include)
	case yaml.MappingNode:
		err = plain.Decode(&args)
	default:
		return nil, parseError(path, node.Line, "glob takes a list of patterns or an include/exclude mapping")
	}
	if err != nil {
		return nil, parseError(path, node.Line, err.Error())
	}

	return glob(args.Include, args.Exclude)
}

func parseError(path string, line int, msg string) error {
	err := zerr.With(zerr.Wrap(domain.ErrBuildFileParseFailed, msg), "path", path)
	if line > 0 {
		err = zerr.With(err, "line", strconv.Itoa(line))
	}
	return err
}
