package gomap

import (
	"errors"

	"github.com/go-kit/log/level"
	"github.com/yayaml-go/yayaml/debug"
	"github.com/yayaml-go/yayaml/format"
	"github.com/yayaml-go/yayaml/ir"
)

// FromIR resolves node into native values through the configured schema.
// Mappings become *ir.OrderedMap unless the schema says otherwise,
// sequences []any.
func FromIR(node *ir.Node, opts ...UnmapOption) (any, error) {
	if node == nil {
		return nil, nil
	}
	d := &decoder{cfg: newUnmapConfig(opts)}
	return d.value(node, nil)
}

type decoder struct {
	cfg *unmapConfig
}

// comments carried from a mapping key or an enclosing collection to the
// value they end up annotating.
type carried struct {
	pre, line, post string
}

func (d *decoder) value(n *ir.Node, extra *carried) (any, error) {
	if debug.Convert() {
		debug.Logf("from: %v\n", n)
	}
	switch n.Kind {
	case ir.ScalarKind:
		v, err := d.cfg.schema.ParseScalar(n.ScalarValue())
		if err != nil {
			return nil, positioned(n, err)
		}
		return d.annotate(v, n, extra), nil
	case ir.MappingKind:
		m := ir.NewOrderedMap()
		for i, vn := range n.Values {
			var kn *ir.Node
			if i < len(n.Fields) {
				kn = n.Fields[i]
			}
			var k any
			var kc *carried
			if kn != nil {
				var err error
				if k, err = d.key(kn); err != nil {
					return nil, err
				}
				kc = &carried{pre: kn.HeadComment, line: kn.LineComment, post: kn.FootComment}
			}
			kc = d.collectionComments(n, extra, i, len(n.Values), kc)
			v, err := d.value(vn, kc)
			if err != nil {
				return nil, err
			}
			m.Set(k, v)
		}
		v, err := d.cfg.schema.ParseMap(ir.MapValue{Values: m, Style: n.CollectionStyle, Tag: n.Tag})
		if err != nil {
			return nil, positioned(n, err)
		}
		return d.annotate(v, n, extra), nil
	case ir.SequenceKind:
		items := make([]any, 0, len(n.Values))
		for i, vn := range n.Values {
			v, err := d.value(vn, d.collectionComments(n, extra, i, len(n.Values), nil))
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		v, err := d.cfg.schema.ParseSequence(ir.SequenceValue{Values: items, Style: n.CollectionStyle, Tag: n.Tag})
		if err != nil {
			return nil, positioned(n, err)
		}
		return d.annotate(v, n, extra), nil
	}
	return nil, nil
}

// key resolves a mapping key without format metadata so that it hashes
// like the plain value.
func (d *decoder) key(n *ir.Node) (any, error) {
	keep := d.cfg.keepFormat
	d.cfg.keepFormat = false
	defer func() { d.cfg.keepFormat = keep }()
	k, err := d.value(n, nil)
	if err != nil {
		return nil, err
	}
	if k == nil {
		return ir.NullKey, nil
	}
	return k, nil
}

// collectionComments moves the head comment of a collection, and whatever
// was carried to it, onto its first item and the foot comment onto its
// last. Collections carry no comments of their own when emitted.
func (d *decoder) collectionComments(n *ir.Node, extra *carried, i, count int, c *carried) *carried {
	if !d.cfg.keepFormat {
		return c
	}
	if c == nil {
		c = &carried{}
	}
	if i == 0 {
		head := n.HeadComment
		if extra != nil {
			head = joinComment(extra.pre, head)
			c.line = joinComment(extra.line, c.line)
		}
		c.pre = joinComment(head, c.pre)
		if n.LineComment != "" {
			level.Debug(d.cfg.logger).Log("msg", "dropping line comment on collection", "line", n.Start.Line, "comment", n.LineComment)
		}
	}
	if i == count-1 {
		foot := n.FootComment
		if extra != nil {
			foot = joinComment(foot, extra.post)
		}
		c.post = joinComment(c.post, foot)
	}
	return c
}

func (d *decoder) annotate(v any, n *ir.Node, extra *carried) any {
	if !d.cfg.keepFormat {
		return v
	}
	var opts []format.Option
	switch n.Kind {
	case ir.ScalarKind:
		if n.ScalarStyle != ir.Plain && n.ScalarStyle != ir.ScalarAny {
			opts = append(opts, format.WithScalarStyle(n.ScalarStyle))
		}
		c := carried{pre: n.HeadComment, line: n.LineComment, post: n.FootComment}
		if extra != nil {
			c.pre = joinComment(extra.pre, c.pre)
			c.line = joinComment(extra.line, c.line)
			c.post = joinComment(c.post, extra.post)
		}
		opts = append(opts, commentOpts(c)...)
	default:
		if n.CollectionStyle == ir.Flow {
			opts = append(opts, format.WithCollectionStyle(ir.Flow))
		}
	}
	if len(opts) == 0 {
		return v
	}
	return format.Annotate(v, opts...)
}

func commentOpts(c carried) []format.Option {
	var opts []format.Option
	if c.pre != "" {
		opts = append(opts, format.WithPreComment(format.StripComment(c.pre)))
	}
	if c.line != "" {
		opts = append(opts, format.WithComment(format.StripComment(c.line)))
	}
	if c.post != "" {
		opts = append(opts, format.WithPostComment(format.StripComment(c.post)))
	}
	return opts
}

func joinComment(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + "\n" + b
}

// positioned fills in the node span of a classification failure.
func positioned(n *ir.Node, err error) error {
	var ce *ir.ClassificationError
	if errors.As(err, &ce) && ce.Start.IsZero() {
		ce.Start, ce.End = n.Start, n.End
	}
	return err
}
