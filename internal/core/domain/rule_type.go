package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// RuleType is the stable name of one buildable rule kind.
type RuleType struct {
	Name string
	Test bool
}

// AttrKind is the value shape an attribute accepts.
type AttrKind string

// Attribute kinds.
const (
	AttrString AttrKind = "string"
	AttrList   AttrKind = "list"
	AttrBool   AttrKind = "bool"
	AttrNumber AttrKind = "number"
	AttrMap    AttrKind = "map"
)

// AttributeSpec declares one attribute of a rule kind.
type AttributeSpec struct {
	Name     string
	Kind     AttrKind
	Required bool
}

// RuleDescriptor describes one rule kind known to a cell. Descriptors are shared
// read-only once they are part of a registry.
type RuleDescriptor struct {
	Type       RuleType
	Attributes []AttributeSpec
	// Toolchain is the toolchain the kind needs, or "" for toolchain-free kinds.
	Toolchain string
	// ToolchainPath is the executable the toolchain resolved to during probing.
	ToolchainPath string
	// Variant distinguishes alternative implementations of the same kind,
	// e.g. a system-provided library.
	Variant string
	// Defaults are attribute values applied when a declaration omits them.
	Defaults map[string]any
}

// Attribute looks up an attribute declaration by name.
func (d *RuleDescriptor) Attribute(name string) (AttributeSpec, bool) {
	for _, a := range d.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return AttributeSpec{}, false
}

// Validate checks a declaration against the descriptor: every required attribute
// is present, no undeclared attribute is set and every value has the declared kind.
func (d *RuleDescriptor) Validate(rule RawRule) error {
	annotate := func(err error, attr string) error {
		err = zerr.With(err, "rule", rule.Name)
		err = zerr.With(err, "rule_type", d.Type.Name)
		return zerr.With(err, "attribute", attr)
	}

	for _, a := range d.Attributes {
		v, ok := rule.Attributes[a.Name]
		if !ok {
			if a.Required {
				return annotate(zerr.Wrap(ErrMissingAttribute, "rule "+rule.Name+" needs attribute "+a.Name), a.Name)
			}
			continue
		}
		if got := KindOf(v); got != a.Kind {
			msg := "attribute " + a.Name + " must be " + string(a.Kind) + ", got " + string(got)
			return annotate(zerr.Wrap(ErrInvalidAttribute, msg), a.Name)
		}
	}

	for _, name := range slices.Sorted(maps.Keys(rule.Attributes)) {
		if _, ok := d.Attribute(name); !ok {
			return annotate(zerr.Wrap(ErrInvalidAttribute, "unexpected attribute "+name), name)
		}
	}
	return nil
}

// KindOf classifies a decoded attribute value.
func KindOf(v any) AttrKind {
	switch v.(type) {
	case string:
		return AttrString
	case bool:
		return AttrBool
	case int, int64, float64:
		return AttrNumber
	case []any, []string:
		return AttrList
	case map[string]any:
		return AttrMap
	default:
		return AttrKind("unknown")
	}
}

// RuleTypeRegistry maps rule-type names to descriptors. It is immutable once built.
type RuleTypeRegistry struct {
	byName  map[string]*RuleDescriptor
	ordered []*RuleDescriptor
}

// NewRuleTypeRegistry builds a registry. Descriptors are ordered by name.
func NewRuleTypeRegistry(descriptors ...*RuleDescriptor) (*RuleTypeRegistry, error) {
	r := &RuleTypeRegistry{
		byName:  make(map[string]*RuleDescriptor, len(descriptors)),
		ordered: make([]*RuleDescriptor, 0, len(descriptors)),
	}
	for _, d := range descriptors {
		if _, exists := r.byName[d.Type.Name]; exists {
			return nil, zerr.With(zerr.Wrap(ErrDuplicateRuleType, "rule type registered twice"), "rule_type", d.Type.Name)
		}
		r.byName[d.Type.Name] = d
		r.ordered = append(r.ordered, d)
	}
	slices.SortFunc(r.ordered, func(a, b *RuleDescriptor) int {
		switch {
		case a.Type.Name < b.Type.Name:
			return -1
		case a.Type.Name > b.Type.Name:
			return 1
		default:
			return 0
		}
	})
	return r, nil
}

// BuildRuleType resolves a raw rule-type name.
func (r *RuleTypeRegistry) BuildRuleType(raw string) (RuleType, error) {
	d, ok := r.byName[raw]
	if !ok {
		return RuleType{}, zerr.With(zerr.Wrap(ErrUnknownRuleType, "unknown rule type "+raw), "rule_type", raw)
	}
	return d.Type, nil
}

// Description returns the descriptor registered for t.
func (r *RuleTypeRegistry) Description(t RuleType) (*RuleDescriptor, error) {
	d, ok := r.byName[t.Name]
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrUnknownRuleType, "unknown rule type "+t.Name), "rule_type", t.Name)
	}
	return d, nil
}

// AllDescriptions returns every descriptor ordered by rule-type name.
func (r *RuleTypeRegistry) AllDescriptions() []*RuleDescriptor {
	return slices.Clone(r.ordered)
}

// Len returns the number of registered rule types.
func (r *RuleTypeRegistry) Len() int {
	return len(r.ordered)
}
