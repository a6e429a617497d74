package eval

import (
	"github.com/expr-lang/expr"
	"github.com/yayaml-go/yayaml/ir"
	"github.com/yayaml-go/yayaml/schema"
)

// exprOpts is the compile environment of every expression: the scalar
// being resolved, the registered symbols and the functions bound to base.
func exprOpts(base schema.Schema) []expr.Option {
	opts := []expr.Option{
		expr.Env(scalarEnv(ir.ScalarValue{})),
		// base resolves the scalar as it came, tag and style included
		expr.Function("base", func(params ...any) (any, error) {
			return base.ParseScalar(params[0].(ir.ScalarValue))
		},
			new(func(ir.ScalarValue) any)),
		expr.Function("parse", func(params ...any) (any, error) {
			return base.ParseScalar(ir.ScalarValue{Value: params[0].(string), Style: ir.Plain})
		},
			new(func(string) any)),
		expr.Function("parsetag", func(params ...any) (any, error) {
			return base.ParseScalar(ir.ScalarValue{Value: params[0].(string), Style: ir.Plain, Tag: ir.LongTag(params[1].(string))})
		},
			new(func(string, string) any)),
		expr.Function("tovalue", func(params ...any) (any, error) {
			return toValue(params[0].(string), base)
		},
			new(func(string) any)),
	}
	for _, s := range Symbols() {
		opts = append(opts, s.Option())
	}
	return opts
}

func scalarEnv(v ir.ScalarValue) map[string]any {
	return map[string]any{
		"value":  v.Value,
		"tag":    ir.ShortTag(v.Tag),
		"style":  v.Style.String(),
		"scalar": v,
	}
}
