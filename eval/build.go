package eval

import (
	"fmt"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/yayaml-go/yayaml/debug"
	"github.com/yayaml-go/yayaml/ir"
	"github.com/yayaml-go/yayaml/schema"
)

// Build compiles every expression of def and returns the resulting schema.
// An empty Base means the default schema.
func (def *Definition) Build() (*schema.Custom, error) {
	base := schema.Default()
	if def.Base != "" {
		var err error
		if base, err = schema.ByName(def.Base); err != nil {
			return nil, err
		}
	}
	name := def.Name
	if name == "" {
		name = "eval"
	}
	opts := exprOpts(base)
	res := []schema.CustomOption{schema.WithName(name)}

	tags := make([]string, 0, len(def.Tags))
	for tag := range def.Tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		prog, err := expr.Compile(def.Tags[tag], opts...)
		if err != nil {
			return nil, fmt.Errorf("tag %s: %w", tag, err)
		}
		res = append(res, schema.WithTag(tag, scalarFunc(tag, prog)))
	}
	if def.Scalar != "" {
		prog, err := expr.Compile(def.Scalar, opts...)
		if err != nil {
			return nil, fmt.Errorf("scalar: %w", err)
		}
		res = append(res, schema.WithParseScalar(scalarFunc("scalar", prog)))
	}
	return schema.NewCustom(base, res...), nil
}

func scalarFunc(what string, prog *vm.Program) schema.ScalarTagFunc {
	return func(v ir.ScalarValue, _ schema.Schema) (any, error) {
		out, err := expr.Run(prog, scalarEnv(v))
		if debug.Eval() {
			debug.Logf("%s: %q -> %v (err %v)\n", what, v.Value, out, err)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", what, err)
		}
		return out, nil
	}
}
