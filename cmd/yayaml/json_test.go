package main

import (
	"math"
	"math/big"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/yayaml-go/yayaml/format"
	"github.com/yayaml-go/yayaml/ir"
)

func TestJSONReady(t *testing.T) {
	big64, _ := new(big.Int).SetString("18446744073709551616", 10)
	inner := ir.NewOrderedMap()
	inner.Set(int32(2), "two")
	m := ir.NewOrderedMap()
	m.Set("z", big64)
	m.Set("a", []any{math.NaN(), math.Inf(-1), 1.5})
	m.Set(ir.NullKey, format.Annotate("x", format.WithComment("c")))
	m.Set("m", inner)

	d, err := json.Marshal(jsonReady(m))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":18446744073709551616,"a":[".nan","-.inf",1.5],"null":"x","m":{"2":"two"}}`
	if diff := cmp.Diff(want, string(d)); diff != "" {
		t.Errorf("json mismatch (-want +got):\n%s", diff)
	}
}

func TestReadJSON(t *testing.T) {
	values, err := readJSON([]byte(`{"b": 1, "a": [true, null, 2.5, 18446744073709551616]} "s"`))
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 2 {
		t.Fatalf("expected 2 values, got %d", len(values))
	}
	m := values[0].(*ir.OrderedMap)
	if diff := cmp.Diff([]any{"b", "a"}, m.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
	a, _ := m.Get("a")
	items := a.([]any)
	if items[0] != true || items[1] != nil || items[2] != 2.5 {
		t.Errorf("items %v", items)
	}
	if b, ok := items[3].(*big.Int); !ok || b.String() != "18446744073709551616" {
		t.Errorf("big int lost: %#v", items[3])
	}
	if v, _ := m.Get("b"); v != int64(1) {
		t.Errorf("b = %#v", v)
	}
	if values[1] != "s" {
		t.Errorf("second value %#v", values[1])
	}
}

func TestReadJSONErrors(t *testing.T) {
	for _, in := range []string{`{"a": }`, `[1, 2`} {
		if _, err := readJSON([]byte(in)); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}
