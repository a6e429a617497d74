package eval

import "github.com/expr-lang/expr"

// Symbol is a function callable from schema expressions.
type Symbol interface {
	String() string
	Option() expr.Option
}

type name string

func (s name) String() string {
	return string(s)
}

type funcSymbol struct {
	name
	fn    func(params ...any) (any, error)
	types []any
}

func (s *funcSymbol) Option() expr.Option {
	return expr.Function(s.String(), s.fn, s.types...)
}

// Func makes a Symbol from fn. types are signatures as in expr.Function,
// for example new(func(string) string).
func Func(n string, fn func(params ...any) (any, error), types ...any) Symbol {
	return &funcSymbol{name: name(n), fn: fn, types: types}
}
