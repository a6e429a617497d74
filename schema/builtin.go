package schema

import (
	"encoding"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/yayaml-go/yayaml/debug"
	"github.com/yayaml-go/yayaml/format"
	"github.com/yayaml-go/yayaml/ir"
	"github.com/yayaml-go/yayaml/numeric"
)

var ErrCanonical = errors.New("canonical text does not reparse")

type tagFunc func(text string) (any, error)

// Builtin is one of the standard schemas. Use Failsafe, Core, JSON or
// Yaml11 to obtain one.
type Builtin struct {
	name string
	tags map[string]tagFunc

	// implicit holds the resolvers for untagged plain scalars in
	// precedence order.
	implicit []matcher
	// float checks emitted float text, nil for no check.
	float matcher

	// null is the text emitted for nil.
	null string

	json       bool
	merge      bool
	timestamps bool
}

func (b *Builtin) Name() string { return b.name }

func (b *Builtin) IsScalar(any) bool { return false }

// resolve runs the implicit chain. The first matching grammar wins.
func (b *Builtin) resolve(text string) (any, bool) {
	for _, m := range b.implicit {
		if v, ok := m(text); ok {
			return v, true
		}
	}
	return nil, false
}

func implicitStyle(s ir.ScalarStyle) bool {
	return s == ir.Plain || s == ir.ScalarAny
}

func (b *Builtin) ParseScalar(v ir.ScalarValue) (any, error) {
	tag := ir.LongTag(v.Tag)
	if fn, ok := b.tags[tag]; ok {
		res, err := fn(v.Value)
		if err != nil {
			return nil, &ir.ClassificationError{Value: v.Value, Tag: tag, Err: err}
		}
		return res, nil
	}
	if !ir.IsUntagged(tag) || !implicitStyle(v.Style) {
		return v.Value, nil
	}
	if res, ok := b.resolve(v.Value); ok {
		return res, nil
	}
	return v.Value, nil
}

func (b *Builtin) ParseMap(v ir.MapValue) (any, error) {
	if v.Values == nil {
		v.Values = ir.NewOrderedMap()
	}
	if b.merge {
		return mergeKeys(v.Values), nil
	}
	return v.Values, nil
}

func (b *Builtin) ParseSequence(v ir.SequenceValue) (any, error) {
	if v.Values == nil {
		return []any{}, nil
	}
	return v.Values, nil
}

func (b *Builtin) EmitMap(m *ir.OrderedMap) (ir.MapValue, error) {
	res := ir.MapValue{Values: m}
	if b.json {
		res.Style = ir.Flow
	}
	return res, nil
}

func (b *Builtin) EmitSequence(items []any) (ir.SequenceValue, error) {
	res := ir.SequenceValue{Values: items}
	if b.json {
		res.Style = ir.Flow
	}
	return res, nil
}

func (b *Builtin) EmitScalar(v any) (ir.ScalarValue, error) {
	switch x := v.(type) {
	case nil:
		return ir.ScalarValue{Value: b.null, Style: ir.Plain}, nil
	case bool:
		return b.emitBool(x), nil
	case string:
		return b.emitString(x), nil
	case time.Duration:
		return b.emitString(x.String()), nil
	case time.Time:
		text := x.Format(time.RFC3339Nano)
		if b.timestamps {
			return ir.ScalarValue{Value: text, Style: ir.Plain}, nil
		}
		return ir.ScalarValue{Value: text, Style: ir.DoubleQuoted}, nil
	case []byte:
		res := ir.ScalarValue{
			Value: base64.StdEncoding.EncodeToString(x),
			Style: ir.Plain,
			Tag:   ir.BinaryTag,
		}
		if b.json {
			res.Style = ir.DoubleQuoted
		}
		return res, nil
	}
	if n, ok := numeric.Normalize(v); ok {
		return b.emitNumber(n)
	}
	switch x := v.(type) {
	case encoding.TextMarshaler:
		d, err := x.MarshalText()
		if err != nil {
			return ir.ScalarValue{}, err
		}
		return b.emitString(string(d)), nil
	case fmt.Stringer:
		return b.emitString(x.String()), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return b.emitString(rv.String()), nil
	case reflect.Bool:
		return b.emitBool(rv.Bool()), nil
	}
	return b.emitString(fmt.Sprint(v)), nil
}

func (b *Builtin) emitBool(x bool) ir.ScalarValue {
	if x {
		return ir.ScalarValue{Value: "true", Style: ir.Plain}
	}
	return ir.ScalarValue{Value: "false", Style: ir.Plain}
}

func (b *Builtin) emitNumber(n any) (ir.ScalarValue, error) {
	switch x := n.(type) {
	case float64:
		return b.emitFloat(x, numeric.FormatFloatBits(x, 64))
	case float32:
		return b.emitFloat(float64(x), numeric.FormatFloatBits(float64(x), 32))
	case *big.Float:
		f, _ := x.Float64()
		return b.emitFloat(f, numeric.FormatBigFloat(x))
	}
	text, _ := numeric.FormatInt(n)
	return ir.ScalarValue{Value: text, Style: ir.Plain}, nil
}

// emitFloat checks that text reparses under the schema's own float grammar.
func (b *Builtin) emitFloat(f float64, text string) (ir.ScalarValue, error) {
	if b.float != nil {
		if _, ok := b.float(text); !ok {
			return ir.ScalarValue{}, fmt.Errorf("%w: %q under %s", ErrCanonical, text, b.name)
		}
	}
	res := ir.ScalarValue{Value: text, Style: ir.Plain}
	if b.json && (math.IsInf(f, 0) || math.IsNaN(f)) {
		res.Tag = ir.FloatTag
	}
	return res, nil
}

// emitString picks a style under which text reads back as the same string.
func (b *Builtin) emitString(text string) ir.ScalarValue {
	if b.json {
		return ir.ScalarValue{Value: text, Style: ir.DoubleQuoted}
	}
	if _, ok := b.resolve(text); ok {
		if debug.Schema() {
			debug.Logf("%s: quoting %q, it resolves implicitly\n", b.name, text)
		}
		return ir.ScalarValue{Value: text, Style: ir.DoubleQuoted}
	}
	if !plainSafe(text) {
		return ir.ScalarValue{Value: text, Style: ir.DoubleQuoted}
	}
	return ir.ScalarValue{Value: text, Style: ir.Plain}
}

// plainSafe reports whether text can be written as a single line plain
// scalar in block context. Multi line text is left to the emitter.
func plainSafe(text string) bool {
	if text == "" {
		return false
	}
	if strings.Contains(text, "\n") {
		return true
	}
	switch text[0] {
	case ' ', '\t', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`', ',', '[', ']', '{', '}':
		return false
	case '-', '?', ':':
		if len(text) == 1 || text[1] == ' ' || text[1] == '\t' {
			return false
		}
	}
	switch text[len(text)-1] {
	case ' ', '\t', ':':
		return false
	}
	return !strings.Contains(text, ": ") && !strings.Contains(text, " #")
}

const mergeKey = "<<"

// mergeKeys expands "<<" entries. Keys already present are never
// overwritten by merged ones, later explicit keys override merged ones.
func mergeKeys(m *ir.OrderedMap) *ir.OrderedMap {
	if !m.Has(mergeKey) {
		return m
	}
	res := ir.NewOrderedMap()
	m.Range(func(k, v any) bool {
		if k == mergeKey {
			if srcs, ok := mergeSources(v); ok {
				for _, src := range srcs {
					src.Range(func(mk, mv any) bool {
						if !res.Has(mk) {
							res.Set(mk, mv)
						}
						return true
					})
				}
				return true
			}
		}
		res.Set(k, v)
		return true
	})
	return res
}

func mergeSources(v any) ([]*ir.OrderedMap, bool) {
	v, _ = format.Unwrap(v)
	switch x := v.(type) {
	case *ir.OrderedMap:
		return []*ir.OrderedMap{x}, true
	case []any:
		res := make([]*ir.OrderedMap, 0, len(x))
		for _, item := range x {
			item, _ = format.Unwrap(item)
			m, ok := item.(*ir.OrderedMap)
			if !ok {
				return nil, false
			}
			res = append(res, m)
		}
		return res, true
	}
	return nil, false
}
