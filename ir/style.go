package ir

import "fmt"

// ScalarStyle is the surface syntax of a scalar. ScalarAny leaves the
// choice to the schema and the emitter.
type ScalarStyle int

const (
	ScalarAny ScalarStyle = iota
	Plain
	SingleQuoted
	DoubleQuoted
	Literal
	Folded
)

var scalarStyleNames = map[ScalarStyle]string{
	ScalarAny:    "any",
	Plain:        "plain",
	SingleQuoted: "single",
	DoubleQuoted: "double",
	Literal:      "literal",
	Folded:       "folded",
}

func (s ScalarStyle) String() string {
	if n, ok := scalarStyleNames[s]; ok {
		return n
	}
	return fmt.Sprintf("<scalar style %d>", int(s))
}

// IsMultiLine reports whether the style is a block scalar style, which has
// no room for a same-line comment.
func (s ScalarStyle) IsMultiLine() bool {
	return s == Literal || s == Folded
}

// IsQuoted reports whether the style is one of the quoted flow styles.
func (s ScalarStyle) IsQuoted() bool {
	return s == SingleQuoted || s == DoubleQuoted
}

func (s ScalarStyle) MarshalText() ([]byte, error) {
	n, ok := scalarStyleNames[s]
	if !ok {
		return nil, fmt.Errorf("%w: scalar style %d", ErrBadStyle, int(s))
	}
	return []byte(n), nil
}

func (s *ScalarStyle) UnmarshalText(d []byte) error {
	v, err := ParseScalarStyle(string(d))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseScalarStyle accepts the lowercase style names as well as the long
// forms singlequoted and doublequoted.
func ParseScalarStyle(v string) (ScalarStyle, error) {
	s, ok := map[string]ScalarStyle{
		"any":          ScalarAny,
		"":             ScalarAny,
		"plain":        Plain,
		"single":       SingleQuoted,
		"singlequoted": SingleQuoted,
		"double":       DoubleQuoted,
		"doublequoted": DoubleQuoted,
		"literal":      Literal,
		"folded":       Folded,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadStyle, v)
}

// CollectionStyle is the surface syntax of a mapping or sequence.
type CollectionStyle int

const (
	CollectionAny CollectionStyle = iota
	Block
	Flow
)

var collectionStyleNames = map[CollectionStyle]string{
	CollectionAny: "any",
	Block:         "block",
	Flow:          "flow",
}

func (s CollectionStyle) String() string {
	if n, ok := collectionStyleNames[s]; ok {
		return n
	}
	return fmt.Sprintf("<collection style %d>", int(s))
}

func (s CollectionStyle) MarshalText() ([]byte, error) {
	n, ok := collectionStyleNames[s]
	if !ok {
		return nil, fmt.Errorf("%w: collection style %d", ErrBadStyle, int(s))
	}
	return []byte(n), nil
}

func (s *CollectionStyle) UnmarshalText(d []byte) error {
	v, err := ParseCollectionStyle(string(d))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func ParseCollectionStyle(v string) (CollectionStyle, error) {
	s, ok := map[string]CollectionStyle{
		"any":   CollectionAny,
		"":      CollectionAny,
		"block": Block,
		"flow":  Flow,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadStyle, v)
}
