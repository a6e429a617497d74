package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/yayaml-go/yayaml/debug"
	"github.com/yayaml-go/yayaml/ir"
	"gopkg.in/yaml.v3"
)

type parseOpts struct {
	comments bool
}

type ParseOption func(*parseOpts)

// ParseComments controls whether comments are kept on the nodes. The
// default is true.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// Parse decodes every document in data. Empty input has no documents.
func Parse(data []byte, opts ...ParseOption) ([]*ir.Node, error) {
	o := &parseOpts{comments: true}
	for _, opt := range opts {
		opt(o)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var res []*ir.Node
	for i := 0; ; i++ {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return res, nil
			}
			return nil, engineError(i, err)
		}
		c := &converter{opts: o, done: map[*yaml.Node]*ir.Node{}, active: map[*yaml.Node]bool{}}
		node, err := c.document(&doc)
		if err != nil {
			var pe *ir.ParseDocumentError
			if errors.As(err, &pe) {
				pe.Document = i
				return nil, pe
			}
			return nil, &ir.ParseDocumentError{Document: i, Err: err}
		}
		if debug.Parse() {
			debug.Logf("parse: document %d %v\n", i, node)
		}
		res = append(res, node)
	}
}

// ParseOne parses data that holds at most one document. Empty input yields
// an empty plain scalar.
func ParseOne(data []byte, opts ...ParseOption) (*ir.Node, error) {
	docs, err := Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	switch len(docs) {
	case 0:
		return &ir.Node{Kind: ir.ScalarKind, ScalarStyle: ir.Plain}, nil
	case 1:
		return docs[0], nil
	}
	return nil, fmt.Errorf("%w: expected one document, got %d", ErrParse, len(docs))
}

type converter struct {
	opts *parseOpts
	// done shares the converted node of an anchor between its aliases.
	done   map[*yaml.Node]*ir.Node
	active map[*yaml.Node]bool
}

func (c *converter) document(doc *yaml.Node) (*ir.Node, error) {
	if doc.Kind != yaml.DocumentNode {
		return c.node(doc)
	}
	if len(doc.Content) == 0 {
		return &ir.Node{Kind: ir.ScalarKind, ScalarStyle: ir.Plain, Start: pos(doc), End: pos(doc)}, nil
	}
	root, err := c.node(doc.Content[0])
	if err != nil {
		return nil, err
	}
	if c.opts.comments {
		root.HeadComment = joinComments(doc.HeadComment, root.HeadComment)
		root.FootComment = joinComments(root.FootComment, doc.FootComment)
	}
	return root, nil
}

func (c *converter) node(y *yaml.Node) (*ir.Node, error) {
	if y.Kind == yaml.AliasNode {
		if y.Alias == nil {
			return nil, positioned(y, fmt.Errorf("%w %q", ErrAlias, y.Value))
		}
		if c.active[y.Alias] {
			return nil, positioned(y, fmt.Errorf("%w *%s", ErrRecursiveAlias, y.Value))
		}
		return c.node(y.Alias)
	}
	if n, ok := c.done[y]; ok {
		return n, nil
	}
	c.active[y] = true
	defer delete(c.active, y)

	res := &ir.Node{Start: pos(y)}
	if y.Style&yaml.TaggedStyle != 0 {
		res.Tag = ir.LongTag(y.Tag)
	}
	if c.opts.comments {
		res.HeadComment = y.HeadComment
		res.LineComment = y.LineComment
		res.FootComment = y.FootComment
	}
	switch y.Kind {
	case yaml.ScalarNode:
		res.Kind = ir.ScalarKind
		res.Value = y.Value
		res.ScalarStyle = scalarStyle(y.Style)
		res.End = scalarEnd(res.Start, res.Value, res.ScalarStyle)
	case yaml.MappingNode:
		res.Kind = ir.MappingKind
		res.CollectionStyle = collectionStyle(y.Style)
		if len(y.Content)%2 != 0 {
			return nil, positioned(y, fmt.Errorf("%w: odd mapping content", ErrParse))
		}
		n := len(y.Content) / 2
		res.Fields = make([]*ir.Node, 0, n)
		res.Values = make([]*ir.Node, 0, n)
		for i := 0; i < len(y.Content); i += 2 {
			k, err := c.node(y.Content[i])
			if err != nil {
				return nil, err
			}
			v, err := c.node(y.Content[i+1])
			if err != nil {
				return nil, err
			}
			res.Fields = append(res.Fields, k)
			res.Values = append(res.Values, v)
		}
		res.End = collectionEnd(res, res.Values)
	case yaml.SequenceNode:
		res.Kind = ir.SequenceKind
		res.CollectionStyle = collectionStyle(y.Style)
		res.Values = make([]*ir.Node, 0, len(y.Content))
		for _, item := range y.Content {
			v, err := c.node(item)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, v)
		}
		res.End = collectionEnd(res, res.Values)
	default:
		return nil, positioned(y, fmt.Errorf("%w: unexpected node kind %d", ErrParse, y.Kind))
	}
	c.done[y] = res
	return res, nil
}

func positioned(y *yaml.Node, err error) *ir.ParseDocumentError {
	return &ir.ParseDocumentError{Start: pos(y), End: pos(y), Err: err}
}

func pos(y *yaml.Node) ir.Pos {
	return ir.Pos{Line: y.Line, Column: y.Column}
}

func scalarStyle(s yaml.Style) ir.ScalarStyle {
	switch {
	case s&yaml.DoubleQuotedStyle != 0:
		return ir.DoubleQuoted
	case s&yaml.SingleQuotedStyle != 0:
		return ir.SingleQuoted
	case s&yaml.LiteralStyle != 0:
		return ir.Literal
	case s&yaml.FoldedStyle != 0:
		return ir.Folded
	}
	return ir.Plain
}

func collectionStyle(s yaml.Style) ir.CollectionStyle {
	if s&yaml.FlowStyle != 0 {
		return ir.Flow
	}
	return ir.Block
}

// scalarEnd estimates the position just past a scalar from its decoded
// text. Quotes add a column on each side, block scalars start on the line
// after their indicator.
func scalarEnd(start ir.Pos, value string, style ir.ScalarStyle) ir.Pos {
	if style.IsMultiLine() {
		lines := strings.Split(strings.TrimSuffix(value, "\n"), "\n")
		last := lines[len(lines)-1]
		return ir.Pos{Line: start.Line + len(lines), Column: utf8.RuneCountInString(last) + 1}
	}
	lines := strings.Split(value, "\n")
	width := utf8.RuneCountInString(lines[len(lines)-1])
	if style.IsQuoted() {
		width += 2
	}
	if len(lines) == 1 {
		return ir.Pos{Line: start.Line, Column: start.Column + width}
	}
	return ir.Pos{Line: start.Line + len(lines) - 1, Column: width + 1}
}

func collectionEnd(n *ir.Node, children []*ir.Node) ir.Pos {
	end := n.Start
	if len(children) > 0 {
		end = children[len(children)-1].End
	}
	if n.CollectionStyle == ir.Flow {
		end.Column++
	}
	return end
}

func joinComments(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + "\n" + b
}
