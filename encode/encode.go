package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yayaml-go/yayaml/debug"
	"github.com/yayaml-go/yayaml/ir"
	"gopkg.in/yaml.v3"
)

type EncState struct {
	indent   int
	comments bool
}

// Encode writes each node as its own document. Documents after the first
// are preceded by "---".
func Encode(nodes []*ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:   2,
		comments: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(es.indent)
	for i, node := range nodes {
		if debug.Encode() {
			debug.Logf("encode: document %d %v\n", i, node)
		}
		if err := enc.Encode(toYAML(node, es, false)); err != nil {
			return fmt.Errorf("encoding document %d: %w", i, err)
		}
	}
	return enc.Close()
}

// EncodeOne encodes a single document.
func EncodeOne(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	return Encode([]*ir.Node{node}, w, opts...)
}

func toYAML(node *ir.Node, es *EncState, inFlow bool) *yaml.Node {
	if node == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: ir.NullTag, Value: "null"}
	}
	res := &yaml.Node{Tag: node.Tag}
	if node.Tag != "" {
		res.Style |= yaml.TaggedStyle
	}
	flow := inFlow || node.CollectionStyle == ir.Flow
	if es.comments && !inFlow {
		res.HeadComment = node.HeadComment
		res.LineComment = node.LineComment
		res.FootComment = node.FootComment
	}
	switch node.Kind {
	case ir.ScalarKind:
		res.Kind = yaml.ScalarNode
		res.Value = node.Value
		res.Style |= scalarStyle(node.ScalarStyle)
	case ir.MappingKind:
		res.Kind = yaml.MappingNode
		if node.CollectionStyle == ir.Flow {
			res.Style |= yaml.FlowStyle
		}
		res.Content = make([]*yaml.Node, 0, 2*len(node.Values))
		for i, v := range node.Values {
			var k *ir.Node
			if i < len(node.Fields) {
				k = node.Fields[i]
			}
			res.Content = append(res.Content, toYAML(k, es, flow), toYAML(v, es, flow))
		}
	case ir.SequenceKind:
		res.Kind = yaml.SequenceNode
		if node.CollectionStyle == ir.Flow {
			res.Style |= yaml.FlowStyle
		}
		res.Content = make([]*yaml.Node, 0, len(node.Values))
		for _, v := range node.Values {
			res.Content = append(res.Content, toYAML(v, es, flow))
		}
	}
	return res
}

func scalarStyle(s ir.ScalarStyle) yaml.Style {
	switch s {
	case ir.SingleQuoted:
		return yaml.SingleQuotedStyle
	case ir.DoubleQuoted:
		return yaml.DoubleQuotedStyle
	case ir.Literal:
		return yaml.LiteralStyle
	case ir.Folded:
		return yaml.FoldedStyle
	}
	return 0
}

func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := EncodeOne(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
