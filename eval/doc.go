// Package eval builds schemas from expr-lang expressions.
package eval
