package schema

import (
	"github.com/yayaml-go/yayaml/debug"
	"github.com/yayaml-go/yayaml/ir"
)

type (
	ScalarTagFunc   func(v ir.ScalarValue, base Schema) (any, error)
	MapTagFunc      func(v ir.MapValue, base Schema) (any, error)
	SequenceTagFunc func(v ir.SequenceValue, base Schema) (any, error)

	IsScalarFunc     func(v any, base Schema) bool
	EmitScalarFunc   func(v any, base Schema) (ir.ScalarValue, error)
	EmitMapFunc      func(m *ir.OrderedMap, base Schema) (ir.MapValue, error)
	EmitSequenceFunc func(items []any, base Schema) (ir.SequenceValue, error)
)

// Custom decorates a base schema. Parse operations try, in order, the tag
// table for the incoming tag, the hook for the operation and finally the
// base schema. Emit operations and IsScalar have no tag table and go to the
// hook, then the base.
type Custom struct {
	name string
	base Schema

	scalarTags   map[string]ScalarTagFunc
	mapTags      map[string]MapTagFunc
	sequenceTags map[string]SequenceTagFunc

	isScalar      IsScalarFunc
	emitScalar    EmitScalarFunc
	emitMap       EmitMapFunc
	emitSequence  EmitSequenceFunc
	parseScalar   ScalarTagFunc
	parseMap      MapTagFunc
	parseSequence SequenceTagFunc
}

type CustomOption func(*Custom)

// NewCustom wraps base, which defaults to Default() when nil.
func NewCustom(base Schema, opts ...CustomOption) *Custom {
	if base == nil {
		base = Default()
	}
	c := &Custom{
		name:         "custom",
		base:         base,
		scalarTags:   map[string]ScalarTagFunc{},
		mapTags:      map[string]MapTagFunc{},
		sequenceTags: map[string]SequenceTagFunc{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithName sets the name reported by Name.
func WithName(name string) CustomOption {
	return func(c *Custom) { c.name = name }
}

// WithTag handles scalars carrying tag. Short "!!x" tags are expanded.
func WithTag(tag string, fn ScalarTagFunc) CustomOption {
	return func(c *Custom) { c.scalarTags[ir.LongTag(tag)] = fn }
}

// WithMapTag handles mappings carrying tag.
func WithMapTag(tag string, fn MapTagFunc) CustomOption {
	return func(c *Custom) { c.mapTags[ir.LongTag(tag)] = fn }
}

// WithSequenceTag handles sequences carrying tag.
func WithSequenceTag(tag string, fn SequenceTagFunc) CustomOption {
	return func(c *Custom) { c.sequenceTags[ir.LongTag(tag)] = fn }
}

// WithIsScalar overrides which Go values encode as scalars.
func WithIsScalar(fn IsScalarFunc) CustomOption {
	return func(c *Custom) { c.isScalar = fn }
}

// WithEmitScalar overrides scalar emission.
func WithEmitScalar(fn EmitScalarFunc) CustomOption {
	return func(c *Custom) { c.emitScalar = fn }
}

// WithEmitMap overrides mapping emission.
func WithEmitMap(fn EmitMapFunc) CustomOption {
	return func(c *Custom) { c.emitMap = fn }
}

// WithEmitSequence overrides sequence emission.
func WithEmitSequence(fn EmitSequenceFunc) CustomOption {
	return func(c *Custom) { c.emitSequence = fn }
}

// WithParseScalar resolves scalars no tag function claims.
func WithParseScalar(fn ScalarTagFunc) CustomOption {
	return func(c *Custom) { c.parseScalar = fn }
}

// WithParseMap resolves mappings no tag function claims.
func WithParseMap(fn MapTagFunc) CustomOption {
	return func(c *Custom) { c.parseMap = fn }
}

// WithParseSequence resolves sequences no tag function claims.
func WithParseSequence(fn SequenceTagFunc) CustomOption {
	return func(c *Custom) { c.parseSequence = fn }
}

func (c *Custom) Name() string { return c.name }

func (c *Custom) Base() Schema { return c.base }

// Dispatch reports which tier handles op for a value carrying tag.
func (c *Custom) Dispatch(op Op, tag string) Tier {
	tag = ir.LongTag(tag)
	var hasTag, hasHook bool
	switch op {
	case OpParseScalar:
		_, hasTag = c.scalarTags[tag]
		hasHook = c.parseScalar != nil
	case OpParseMap:
		_, hasTag = c.mapTags[tag]
		hasHook = c.parseMap != nil
	case OpParseSequence:
		_, hasTag = c.sequenceTags[tag]
		hasHook = c.parseSequence != nil
	case OpIsScalar:
		hasHook = c.isScalar != nil
	case OpEmitScalar:
		hasHook = c.emitScalar != nil
	case OpEmitMap:
		hasHook = c.emitMap != nil
	case OpEmitSequence:
		hasHook = c.emitSequence != nil
	}
	var t Tier
	switch {
	case hasTag:
		t = TierTag
	case hasHook:
		t = TierHook
	default:
		t = TierBase
	}
	if debug.Schema() {
		debug.Logf("%s: %s tag=%q -> %s\n", c.name, op, tag, t)
	}
	return t
}

func (c *Custom) IsScalar(v any) bool {
	if c.Dispatch(OpIsScalar, "") == TierHook {
		return c.isScalar(v, c.base)
	}
	return c.base.IsScalar(v)
}

func (c *Custom) EmitScalar(v any) (ir.ScalarValue, error) {
	if c.Dispatch(OpEmitScalar, "") == TierHook {
		return c.emitScalar(v, c.base)
	}
	return c.base.EmitScalar(v)
}

func (c *Custom) EmitMap(m *ir.OrderedMap) (ir.MapValue, error) {
	if c.Dispatch(OpEmitMap, "") == TierHook {
		return c.emitMap(m, c.base)
	}
	return c.base.EmitMap(m)
}

func (c *Custom) EmitSequence(items []any) (ir.SequenceValue, error) {
	if c.Dispatch(OpEmitSequence, "") == TierHook {
		return c.emitSequence(items, c.base)
	}
	return c.base.EmitSequence(items)
}

func (c *Custom) ParseScalar(v ir.ScalarValue) (any, error) {
	switch c.Dispatch(OpParseScalar, v.Tag) {
	case TierTag:
		res, err := c.scalarTags[ir.LongTag(v.Tag)](v, c.base)
		if err != nil {
			return nil, classification(v, err)
		}
		return res, nil
	case TierHook:
		return c.parseScalar(v, c.base)
	}
	return c.base.ParseScalar(v)
}

func (c *Custom) ParseMap(v ir.MapValue) (any, error) {
	switch c.Dispatch(OpParseMap, v.Tag) {
	case TierTag:
		return c.mapTags[ir.LongTag(v.Tag)](v, c.base)
	case TierHook:
		return c.parseMap(v, c.base)
	}
	return c.base.ParseMap(v)
}

func (c *Custom) ParseSequence(v ir.SequenceValue) (any, error) {
	switch c.Dispatch(OpParseSequence, v.Tag) {
	case TierTag:
		return c.sequenceTags[ir.LongTag(v.Tag)](v, c.base)
	case TierHook:
		return c.parseSequence(v, c.base)
	}
	return c.base.ParseSequence(v)
}

// classification wraps a tag function failure unless it already is one.
func classification(v ir.ScalarValue, err error) error {
	if _, ok := err.(*ir.ClassificationError); ok {
		return err
	}
	return &ir.ClassificationError{Value: v.Value, Tag: ir.LongTag(v.Tag), Err: err}
}
