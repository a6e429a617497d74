package ir

// ScalarValue is a scalar as exchanged with a schema: the decoded text, the
// style it was written in (or should be written in) and its tag. An empty
// tag or "?" means the scalar is untagged and resolved implicitly.
type ScalarValue struct {
	Value string
	Style ScalarStyle
	Tag   string
}

// Untagged reports whether implicit resolution applies to the tag.
func (v ScalarValue) Untagged() bool {
	return IsUntagged(v.Tag)
}

// MapValue is a mapping whose keys and values have already been resolved.
type MapValue struct {
	Values *OrderedMap
	Style  CollectionStyle
	Tag    string
}

// SequenceValue is a sequence whose items have already been resolved.
type SequenceValue struct {
	Values []any
	Style  CollectionStyle
	Tag    string
}
