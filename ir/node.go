package ir

// Node is the generic YAML tree exchanged with the YAML engine.
//
// For MappingKind nodes, Fields[i] is the key for Values[i]. Sequences use
// Values only. Scalars carry their decoded text in Value.
type Node struct {
	Kind Kind
	Tag  string

	Value           string
	ScalarStyle     ScalarStyle
	CollectionStyle CollectionStyle

	Fields []*Node
	Values []*Node

	HeadComment string
	LineComment string
	FootComment string

	Start Pos
	End   Pos
}

func Scalar(value string) *Node {
	return &Node{Kind: ScalarKind, Value: value}
}

func Mapping(fields, values []*Node) *Node {
	return &Node{Kind: MappingKind, Fields: fields, Values: values}
}

func Sequence(values ...*Node) *Node {
	return &Node{Kind: SequenceKind, Values: values}
}

func (y *Node) WithTag(tag string) *Node {
	y.Tag = tag
	return y
}

func (y *Node) WithScalarStyle(s ScalarStyle) *Node {
	y.ScalarStyle = s
	return y
}

func (y *Node) WithCollectionStyle(s CollectionStyle) *Node {
	y.CollectionStyle = s
	return y
}

// ScalarValue returns the node as presented to a schema.
func (y *Node) ScalarValue() ScalarValue {
	return ScalarValue{Value: y.Value, Style: y.ScalarStyle, Tag: y.Tag}
}

// Get returns the value under the scalar key k of a mapping node.
func (y *Node) Get(k string) *Node {
	if y.Kind != MappingKind {
		return nil
	}
	for i, f := range y.Fields {
		if f.Kind == ScalarKind && f.Value == k {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Clone() *Node {
	res := &Node{}
	*res = *y
	if y.Fields != nil {
		res.Fields = make([]*Node, len(y.Fields))
		for i, f := range y.Fields {
			res.Fields[i] = f.Clone()
		}
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Visit walks the tree depth first, keys before values. If f returns false
// the children of that node are skipped.
func (y *Node) Visit(f func(*Node) bool) {
	if y == nil || !f(y) {
		return
	}
	for i, v := range y.Values {
		if y.Kind == MappingKind && i < len(y.Fields) {
			y.Fields[i].Visit(f)
		}
		v.Visit(f)
	}
}
