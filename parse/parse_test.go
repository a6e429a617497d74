package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yayaml-go/yayaml/ir"
)

type parseTest struct {
	in string
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `null`},
		{in: `true`},
		{in: `22`},
		{in: `1e14`},
		{in: `"hello"`},
		{in: `hello`},
		{in: "|\n  z\n"},
		{in: "a: >\n  folded\n  text\n"},
		{in: `[a,b]`},
		{in: `[[]]`},
		{in: `[a,[b,[c]]]`},
		{in: `!tag a`},
		{in: `!tag []`},
		{in: `[!tag a]`},
		{in: "# comment\n[0, !tag a, 1]"},
		{in: "- 0 # comment\n- z"},
		{in: "- # head\n  - -42\n  - 42 #line\n"},
		{in: "{a: {b: 9}, c: {d: 8}}"},
		{in: "a:\n  b: c\nc:\n  e: f"},
		{in: "- - a\n- - b"},
		{in: "? [complex, key]\n: value\n"},
		{in: "base: &b {x: 1}\nderived:\n  <<: *b\n  y: 2\n"},
		{in: "\"hello\"\n---\n'yo'"},
	}
	for i := range pts {
		pt := &pts[i]
		docs, err := Parse([]byte(pt.in), ParseComments(false))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", pt.in, err)
			continue
		}
		if len(docs) == 0 {
			t.Errorf("# doc\n%s\n# no documents", pt.in)
		}
	}
}

func TestBadParse(t *testing.T) {
	pts := []struct {
		in   string
		doc  int
		line int
	}{
		{in: "a: 1\nb: c: d\n", doc: 0, line: 2},
		{in: "a: 1\n---\n[", doc: 1},
		{in: "x: *nowhere", doc: 0},
		{in: "- a\n- b\nc: d\n", doc: 0},
	}
	for _, pt := range pts {
		_, err := Parse([]byte(pt.in))
		if !errors.Is(err, ir.ErrParse) {
			t.Errorf("%q: expected parse error, got %v", pt.in, err)
			continue
		}
		var pe *ir.ParseDocumentError
		if !errors.As(err, &pe) {
			t.Errorf("%q: expected ParseDocumentError, got %T", pt.in, err)
			continue
		}
		if pe.Document != pt.doc {
			t.Errorf("%q: document %d, want %d", pt.in, pe.Document, pt.doc)
		}
		if pt.line != 0 && pe.Start.Line != pt.line {
			t.Errorf("%q: line %d, want %d", pt.in, pe.Start.Line, pt.line)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	docs, err := Parse(nil)
	if err != nil || len(docs) != 0 {
		t.Fatalf("got %d docs, %v", len(docs), err)
	}
	n, err := ParseOne([]byte(""))
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind != ir.ScalarKind || n.Value != "" {
		t.Errorf("ParseOne of empty input = %+v", n)
	}
	if _, err := ParseOne([]byte("a\n---\nb\n")); !errors.Is(err, ErrParse) {
		t.Errorf("expected error for two documents, got %v", err)
	}
}

func TestMultiDocument(t *testing.T) {
	docs, err := Parse([]byte("a\n---\n- b\n---\nc: d\n"))
	if err != nil {
		t.Fatal(err)
	}
	var kinds []ir.Kind
	for _, d := range docs {
		kinds = append(kinds, d.Kind)
	}
	want := []ir.Kind{ir.ScalarKind, ir.SequenceKind, ir.MappingKind}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestStylesAndTags(t *testing.T) {
	n, err := ParseOne([]byte(`[plain, 'single', "double", !!int 12, !local x, 12]`))
	if err != nil {
		t.Fatal(err)
	}
	type st struct {
		Value string
		Style ir.ScalarStyle
		Tag   string
	}
	var got []st
	for _, v := range n.Values {
		got = append(got, st{v.Value, v.ScalarStyle, v.Tag})
	}
	want := []st{
		{"plain", ir.Plain, ""},
		{"single", ir.SingleQuoted, ""},
		{"double", ir.DoubleQuoted, ""},
		{"12", ir.Plain, ir.IntTag},
		{"x", ir.Plain, "!local"},
		{"12", ir.Plain, ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scalars mismatch (-want +got):\n%s", diff)
	}
	if n.CollectionStyle != ir.Flow {
		t.Errorf("collection style %s", n.CollectionStyle)
	}

	n, err = ParseOne([]byte("lit: |\n  a\n  b\nfold: >\n  c\n  d\n"))
	if err != nil {
		t.Fatal(err)
	}
	if n.CollectionStyle != ir.Block {
		t.Errorf("collection style %s", n.CollectionStyle)
	}
	if v := n.Get("lit"); v.ScalarStyle != ir.Literal || v.Value != "a\nb\n" {
		t.Errorf("lit = %q %s", v.Value, v.ScalarStyle)
	}
	if v := n.Get("fold"); v.ScalarStyle != ir.Folded || v.Value != "c d\n" {
		t.Errorf("fold = %q %s", v.Value, v.ScalarStyle)
	}
}

func TestAliases(t *testing.T) {
	n, err := ParseOne([]byte("a: &x {b: 1}\nc: *x\n"))
	if err != nil {
		t.Fatal(err)
	}
	if n.Get("a") != n.Get("c") {
		t.Errorf("alias should resolve to the anchored node")
	}
	if n.Get("c").Get("b").Value != "1" {
		t.Errorf("alias content lost")
	}
}

func TestRecursiveAlias(t *testing.T) {
	for _, in := range []string{"&a [*a]", "&m {x: *m}"} {
		_, err := Parse([]byte(in))
		if !errors.Is(err, ErrRecursiveAlias) {
			t.Errorf("%q: expected recursive alias error, got %v", in, err)
		}
		if !errors.Is(err, ir.ErrParse) {
			t.Errorf("%q: recursive alias should be a parse error", in)
		}
	}
}

func TestPositions(t *testing.T) {
	n, err := ParseOne([]byte("a: hello\nb: [1, 2]\nc: \"hi\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	type span struct{ Start, End ir.Pos }
	got := map[string]span{}
	for i, k := range n.Fields {
		got[k.Value] = span{n.Values[i].Start, n.Values[i].End}
	}
	want := map[string]span{
		"a": {ir.Pos{Line: 1, Column: 4}, ir.Pos{Line: 1, Column: 9}},
		"b": {ir.Pos{Line: 2, Column: 4}, ir.Pos{Line: 2, Column: 10}},
		"c": {ir.Pos{Line: 3, Column: 4}, ir.Pos{Line: 3, Column: 8}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestComments(t *testing.T) {
	in := "# top\n\n# head\na: 1 # line\nb: 2\n"
	collect := func(n *ir.Node) []string {
		var res []string
		n.Visit(func(y *ir.Node) bool {
			for _, c := range []string{y.HeadComment, y.LineComment, y.FootComment} {
				if c != "" {
					res = append(res, c)
				}
			}
			return true
		})
		return res
	}
	n, err := ParseOne([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	got := collect(n)
	for _, want := range []string{"# head", "# line"} {
		found := false
		for _, c := range got {
			if c == want || c == "# top\n"+want {
				found = true
			}
		}
		if !found {
			t.Errorf("comment %q not found in %q", want, got)
		}
	}

	n, err = ParseOne([]byte(in), ParseComments(false))
	if err != nil {
		t.Fatal(err)
	}
	if got := collect(n); len(got) != 0 {
		t.Errorf("comments kept with ParseComments(false): %q", got)
	}
}
