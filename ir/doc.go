// Package ir provides the node model shared by the yayaml packages.
//
// # Nodes
//
// A Node is the generic YAML tree produced by [parse] and consumed by
// [encode]. It is a tagged union on Kind: scalars hold their decoded text
// in Value, mappings hold keys in Fields and values in Values (same
// length), sequences hold items in Values.
//
// Style is part of a node's identity. The scalar "1" written plain and the
// scalar "1" written double quoted are different nodes and resolve
// differently: only untagged plain scalars take part in implicit type
// resolution.
//
// # Values
//
// ScalarValue, MapValue and SequenceValue are the shapes a schema sees,
// with children already resolved. Mapping keys can be of any resolved type
// so they are held in an OrderedMap, with NullKey standing in for a null
// key.
//
// # Tags
//
// Tags are kept in long form ("tag:yaml.org,2002:int"). LongTag and
// ShortTag convert between that and the "!!int" shorthand. A blank tag or
// "?" asks for implicit resolution.
//
// [parse]: github.com/yayaml-go/yayaml/parse
// [encode]: github.com/yayaml-go/yayaml/encode
package ir
