package schema

import (
	"github.com/yayaml-go/yayaml/ir"
)

// Schema decides how scalars are typed when parsing and how native values
// are written when emitting. Implementations are immutable and may be
// shared between goroutines.
type Schema interface {
	Name() string

	// IsScalar reports whether v is written as a single scalar rather than
	// decomposed into a collection.
	IsScalar(v any) bool

	EmitScalar(v any) (ir.ScalarValue, error)
	EmitMap(m *ir.OrderedMap) (ir.MapValue, error)
	EmitSequence(items []any) (ir.SequenceValue, error)

	ParseScalar(v ir.ScalarValue) (any, error)
	ParseMap(v ir.MapValue) (any, error)
	ParseSequence(v ir.SequenceValue) (any, error)
}

// Op names one Schema operation.
type Op int

const (
	OpIsScalar Op = iota
	OpEmitScalar
	OpEmitMap
	OpEmitSequence
	OpParseScalar
	OpParseMap
	OpParseSequence
)

func (o Op) String() string {
	s, ok := map[Op]string{
		OpIsScalar:      "IsScalar",
		OpEmitScalar:    "EmitScalar",
		OpEmitMap:       "EmitMap",
		OpEmitSequence:  "EmitSequence",
		OpParseScalar:   "ParseScalar",
		OpParseMap:      "ParseMap",
		OpParseSequence: "ParseSequence",
	}[o]
	if ok {
		return s
	}
	return "<unknown op>"
}

// IsParse reports whether the op takes part in tag table dispatch.
func (o Op) IsParse() bool {
	return o == OpParseScalar || o == OpParseMap || o == OpParseSequence
}

// Tier is where a Custom schema sends an operation.
type Tier int

const (
	TierTag Tier = iota
	TierHook
	TierBase
)

func (t Tier) String() string {
	switch t {
	case TierTag:
		return "tag"
	case TierHook:
		return "hook"
	case TierBase:
		return "base"
	}
	return "<unknown tier>"
}
