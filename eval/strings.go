package eval

import (
	"encoding/base64"
	"strings"
)

var (
	upperSym = Func("upper", func(params ...any) (any, error) {
		return strings.ToUpper(params[0].(string)), nil
	}, new(func(string) string))

	lowerSym = Func("lower", func(params ...any) (any, error) {
		return strings.ToLower(params[0].(string)), nil
	}, new(func(string) string))

	trimSym = Func("trim", func(params ...any) (any, error) {
		return strings.TrimSpace(params[0].(string)), nil
	}, new(func(string) string))

	splitSym = Func("split", func(params ...any) (any, error) {
		parts := strings.Split(params[0].(string), params[1].(string))
		res := make([]any, len(parts))
		for i, p := range parts {
			res[i] = p
		}
		return res, nil
	}, new(func(string, string) []any))

	joinSym = Func("join", func(params ...any) (any, error) {
		items := params[0].([]any)
		parts := make([]string, len(items))
		for i, it := range items {
			parts[i], _ = it.(string)
		}
		return strings.Join(parts, params[1].(string)), nil
	}, new(func([]any, string) string))

	b64decSym = Func("b64dec", func(params ...any) (any, error) {
		d, err := base64.StdEncoding.DecodeString(params[0].(string))
		if err != nil {
			return nil, err
		}
		return string(d), nil
	}, new(func(string) string))
)

func Upper() Symbol  { return upperSym }
func Lower() Symbol  { return lowerSym }
func Trim() Symbol   { return trimSym }
func Split() Symbol  { return splitSym }
func Join() Symbol   { return joinSym }
func B64Dec() Symbol { return b64decSym }
