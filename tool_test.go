package yayaml

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yayaml-go/yayaml/gomap"
	"github.com/yayaml-go/yayaml/ir"
	"github.com/yayaml-go/yayaml/schema"
)

func TestConvertFromYAML(t *testing.T) {
	values, err := ConvertFromYAML([]byte("a: 1\nb: 0x1F\n---\n- x\n- 1.5\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(values))
	}
	want := []ir.Entry{{Key: "a", Value: int32(1)}, {Key: "b", Value: int32(31)}}
	if diff := cmp.Diff(want, values[0].(*ir.OrderedMap).Entries()); diff != "" {
		t.Errorf("document 0 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"x", 1.5}, values[1]); diff != "" {
		t.Errorf("document 1 mismatch (-want +got):\n%s", diff)
	}

	values, err = ConvertFromYAML(nil)
	if err != nil || len(values) != 0 {
		t.Errorf("empty input gave %v, %v", values, err)
	}
}

func TestConvertErrors(t *testing.T) {
	_, err := ConvertFromYAML([]byte("a: 1\n---\n[\n"))
	if !errors.Is(err, ir.ErrParse) {
		t.Errorf("expected parse error, got %v", err)
	}
	_, err = ConvertFromYAML([]byte("ok\n---\n!!float abc\n"))
	if !errors.Is(err, ir.ErrClassification) || !strings.Contains(err.Error(), "document 1") {
		t.Errorf("expected classification error in document 1, got %v", err)
	}
	loop := []any{nil}
	loop[0] = loop
	_, _, err = ConvertToYAML([]any{loop})
	if !errors.Is(err, gomap.ErrCycle) {
		t.Errorf("expected cycle error, got %v", err)
	}
}

func TestConvertToYAML(t *testing.T) {
	m := ir.NewOrderedMap()
	m.Set("a", 1)
	m.Set("when", "2001-12-14")
	out, ws, err := ConvertToYAML([]any{m, "true", nil})
	if err != nil {
		t.Fatal(err)
	}
	if len(ws) != 0 {
		t.Errorf("unexpected warnings %v", ws)
	}
	want := "a: 1\nwhen: 2001-12-14\n---\n\"true\"\n---\nnull\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	out, _, err = ConvertToYAML([]any{m}, gomap.WithSchema(schema.Yaml11()))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("a: 1\nwhen: \"2001-12-14\"\n", string(out)); diff != "" {
		t.Errorf("yaml11 output mismatch (-want +got):\n%s", diff)
	}
}

func TestToolSchemas(t *testing.T) {
	tool := DefaultTool()
	tool.Schema = schema.Yaml11()
	values, err := tool.FromYAML([]byte("on: yes\nmode: 0755\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []ir.Entry{{Key: true, Value: true}, {Key: "mode", Value: int32(493)}}
	if diff := cmp.Diff(want, values[0].(*ir.OrderedMap).Entries()); diff != "" {
		t.Errorf("yaml11 mismatch (-want +got):\n%s", diff)
	}

	tool.Schema = schema.JSON()
	out, _, err := tool.ToYAML(values...)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("{true: true, \"mode\": 493}\n", string(out)); diff != "" {
		t.Errorf("json output mismatch (-want +got):\n%s", diff)
	}
}

func TestToolDepth(t *testing.T) {
	tool := DefaultTool()
	tool.Depth = 0
	var seen []gomap.Warning
	_, ws, err := tool.ToYAML(map[string]any{"a": []any{1}})
	if err != nil {
		t.Fatal(err)
	}
	seen = append(seen, ws...)
	if len(seen) != 1 || seen[0].Kind != gomap.DepthExceeded {
		t.Errorf("warnings %v", seen)
	}
}

func TestRoundTrip(t *testing.T) {
	ins := []string{
		"# config\nname: 'app' # the name\nports: [80, 443]\nlimits:\n  cpu: \"2\"\n  mem: 1Gi\n",
		"- a\n- |\n  block\n  text\n- 'q'\n",
		"deep:\n  er:\n    still:\n      deeper: 1\n",
	}
	tool := DefaultTool()
	for _, in := range ins {
		out, ws, err := tool.RoundTrip([]byte(in))
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if len(ws) != 0 {
			t.Errorf("%q: warnings %v", in, ws)
		}
		if diff := cmp.Diff(in, string(out)); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}
