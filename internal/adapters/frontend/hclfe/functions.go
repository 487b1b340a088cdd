package hclfe

import (
	"errors"
	"math/big"
	"sync"

	"github.com/hashicorp/hcl/v2"
	"github.com/sandeepsanjusplr/buck/internal/adapters/frontend"
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
	"go.trai.ch/zerr"
)

// functions holds the function table of one build file. HCL reports function
// failures as diagnostics, so the first failure is kept to preserve its kind.
type functions struct {
	glob frontend.GlobFunc

	mu  sync.Mutex
	err error
	ctx *hcl.EvalContext
}

func newFunctions(glob frontend.GlobFunc) *functions {
	f := &functions{glob: glob}
	f.ctx = &hcl.EvalContext{
		Functions: map[string]function.Function{"glob": f.globFunction()},
	}
	return f
}

func (f *functions) evalContext() *hcl.EvalContext {
	return f.ctx
}

func (f *functions) fail(err error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil {
		f.err = err
	}
	return err
}

func (f *functions) takeErr() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err := f.err
	f.err = nil
	return err
}

// globFunction implements glob(include, [exclude]).
func (f *functions) globFunction() function.Function {
	return function.New(&function.Spec{
		Description: "Lists the files of the package matching include and not exclude.",
		Params: []function.Parameter{
			{Name: "include", Type: cty.List(cty.String)},
		},
		VarParam: &function.Parameter{Name: "exclude", Type: cty.List(cty.String)},
		Type:     function.StaticReturnType(cty.List(cty.String)),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			if f.glob == nil {
				return cty.NilVal, f.fail(zerr.Wrap(domain.ErrBuildFileParseFailed, "glob() is only available in build files"))
			}

			var include, exclude []string
			if err := gocty.FromCtyValue(args[0], &include); err != nil {
				return cty.NilVal, err
			}
			for _, arg := range args[1:] {
				var more []string
				if err := gocty.FromCtyValue(arg, &more); err != nil {
					return cty.NilVal, err
				}
				exclude = append(exclude, more...)
			}

			matches, err := f.glob(include, exclude)
			if err != nil {
				return cty.NilVal, f.fail(err)
			}
			if len(matches) == 0 {
				return cty.ListValEmpty(cty.String), nil
			}
			vals := make([]cty.Value, len(matches))
			for i, m := range matches {
				vals[i] = cty.StringVal(m.(string))
			}
			return cty.ListVal(vals), nil
		},
	})
}

// toGo converts an evaluated attribute into the plain values rules carry.
// Whole numbers become int.
func toGo(v cty.Value) (any, error) {
	if !v.IsWhollyKnown() {
		return nil, errors.New("value is not known")
	}
	if v.IsNull() {
		return nil, errors.New("null values are not allowed")
	}

	t := v.Type()
	switch {
	case t == cty.String:
		return v.AsString(), nil
	case t == cty.Bool:
		return v.True(), nil
	case t == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return int(i), nil
			}
		}
		f, _ := bf.Float64()
		return f, nil
	case t.IsListType() || t.IsTupleType() || t.IsSetType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, e := it.Element()
			g, err := toGo(e)
			if err != nil {
				return nil, err
			}
			out = append(out, g)
		}
		return out, nil
	case t.IsMapType() || t.IsObjectType():
		out := make(map[string]any, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			k, e := it.Element()
			g, err := toGo(e)
			if err != nil {
				return nil, err
			}
			out[k.AsString()] = g
		}
		return out, nil
	default:
		return nil, errors.New("unsupported value of type " + t.FriendlyName())
	}
}
