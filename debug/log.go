package debug

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/yayaml-go/yayaml/ir"
)

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = NodeString(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}

// NodeString renders a node on one line in a flow-like notation with tags
// and styles, for tracing.
func NodeString(y *ir.Node) string {
	b := &strings.Builder{}
	writeNode(b, y)
	return b.String()
}

func writeNode(b *strings.Builder, y *ir.Node) {
	if y == nil {
		b.WriteString("<nil>")
		return
	}
	if y.Tag != "" {
		b.WriteString(ir.ShortTag(y.Tag))
		b.WriteByte(' ')
	}
	switch y.Kind {
	case ir.ScalarKind:
		fmt.Fprintf(b, "%q", y.Value)
		if y.ScalarStyle != ir.ScalarAny {
			b.WriteString("/" + y.ScalarStyle.String())
		}
	case ir.MappingKind:
		b.WriteByte('{')
		for i := range y.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			if i < len(y.Fields) {
				writeNode(b, y.Fields[i])
			}
			b.WriteString(": ")
			writeNode(b, y.Values[i])
		}
		b.WriteByte('}')
	case ir.SequenceKind:
		b.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			writeNode(b, v)
		}
		b.WriteByte(']')
	}
}
