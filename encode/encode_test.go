package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yayaml-go/yayaml/ir"
	"github.com/yayaml-go/yayaml/parse"
)

func encodeString(t *testing.T, opts []EncodeOption, nodes ...*ir.Node) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Encode(nodes, &buf, opts...); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.String()
}

func kv(k string, v *ir.Node) *ir.Node {
	return ir.Mapping([]*ir.Node{ir.Scalar(k)}, []*ir.Node{v})
}

func TestEncodeNodes(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		opts []EncodeOption
		want string
	}{
		{name: "plain", node: ir.Scalar("a"), want: "a\n"},
		{name: "tag", node: ir.Scalar("12").WithTag(ir.IntTag), want: "!!int 12\n"},
		{name: "local tag", node: ir.Scalar("x").WithTag("!local"), want: "!local x\n"},
		{name: "quoted", node: ir.Scalar("true").WithScalarStyle(ir.DoubleQuoted), want: "\"true\"\n"},
		{name: "single", node: ir.Scalar("q").WithScalarStyle(ir.SingleQuoted), want: "'q'\n"},
		{name: "nil", node: nil, want: "null\n"},
		{
			name: "flow",
			node: ir.Sequence(ir.Scalar("x"), ir.Scalar("y")).WithCollectionStyle(ir.Flow),
			want: "[x, y]\n",
		},
		{
			name: "indent",
			node: kv("a", kv("b", ir.Scalar("c"))),
			want: "a:\n  b: c\n",
		},
		{
			name: "indent 4",
			node: kv("a", kv("b", ir.Scalar("c"))),
			opts: []EncodeOption{Indent(4)},
			want: "a:\n    b: c\n",
		},
		{
			name: "literal",
			node: kv("a", ir.Scalar("line1\nline2\n").WithScalarStyle(ir.Literal)),
			want: "a: |\n  line1\n  line2\n",
		},
	}
	for _, tt := range tests {
		got := encodeString(t, tt.opts, tt.node)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestEncodeMultiDocument(t *testing.T) {
	got := encodeString(t, nil, ir.Scalar("a"), ir.Scalar("b"))
	if diff := cmp.Diff("a\n---\nb\n", got); diff != "" {
		t.Errorf("documents mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeComments(t *testing.T) {
	key := ir.Scalar("a")
	key.HeadComment = "# hello"
	val := ir.Scalar("b")
	val.LineComment = "# x"
	node := ir.Mapping([]*ir.Node{key}, []*ir.Node{val})

	got := encodeString(t, nil, node)
	if diff := cmp.Diff("# hello\na: b # x\n", got); diff != "" {
		t.Errorf("comments mismatch (-want +got):\n%s", diff)
	}
	got = encodeString(t, []EncodeOption{EncodeComments(false)}, node)
	if diff := cmp.Diff("a: b\n", got); diff != "" {
		t.Errorf("no comments mismatch (-want +got):\n%s", diff)
	}
}

func TestFlowDropsComments(t *testing.T) {
	key := ir.Scalar("a")
	key.HeadComment = "# k"
	val := ir.Scalar("1")
	val.LineComment = "# v"
	inner := ir.Sequence(ir.Scalar("2"))
	inner.Values[0].HeadComment = "# nested"
	node := ir.Mapping([]*ir.Node{key, ir.Scalar("b")}, []*ir.Node{val, inner}).WithCollectionStyle(ir.Flow)

	got := encodeString(t, nil, node)
	if strings.Contains(got, "#") {
		t.Errorf("flow output has comments: %q", got)
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	ins := []string{
		"a: 1\nb: [x, y]\nc: 'q'\n",
		"- !!str 12\n- \"yes\"\n- {k: v}\n",
		"# head\nkey: value # line\n",
	}
	for _, in := range ins {
		n, err := parse.ParseOne([]byte(in))
		if err != nil {
			t.Fatal(err)
		}
		got := encodeString(t, nil, n)
		if diff := cmp.Diff(in, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestPlainFallsBackToQuoting(t *testing.T) {
	for _, text := range []string{"a: b", "- x", "#c", " lead", "[x]"} {
		out := MustString(ir.Scalar(text))
		n, err := parse.ParseOne([]byte(out))
		if err != nil {
			t.Fatalf("%q encoded as %q: %v", text, out, err)
		}
		if n.Kind != ir.ScalarKind || n.Value != text {
			t.Errorf("%q encoded as %q reads back as %q", text, out, n.Value)
		}
	}
}
