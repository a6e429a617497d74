package ir

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOrderedMapReplaceKeepsPosition(t *testing.T) {
	m := NewOrderedMap()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	m.Set("a", 10)

	want := []Entry{{"a", 10}, {"b", 2}, {"c", 3}}
	if diff := cmp.Diff(want, m.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderedMapNullKey(t *testing.T) {
	m := NewOrderedMap()
	m.Set(nil, "first")
	m.Set(NullKey, "second")
	if m.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", m.Len())
	}
	v, ok := m.Get(nil)
	if !ok || v != "second" {
		t.Errorf("Get(nil) = %v, %v", v, ok)
	}
	if !IsNullKey(m.Keys()[0]) {
		t.Errorf("key %v is not the null key", m.Keys()[0])
	}
}

func TestOrderedMapMixedKeys(t *testing.T) {
	m := NewOrderedMap()
	m.Set(int32(1), "int")
	m.Set("1", "str")
	m.Set(true, "bool")
	m.Set(new(big.Int).Lsh(big.NewInt(1), 70), "big")
	m.Set([]any{"x", "y"}, "seq")

	if m.Len() != 5 {
		t.Fatalf("expected 5 entries, got %d", m.Len())
	}
	if v, _ := m.Get(new(big.Int).Lsh(big.NewInt(1), 70)); v != "big" {
		t.Errorf("big key lookup got %v", v)
	}
	if v, _ := m.Get([]any{"x", "y"}); v != "seq" {
		t.Errorf("sequence key lookup got %v", v)
	}
	if v, _ := m.Get(int32(1)); v != "int" {
		t.Errorf("int key lookup got %v", v)
	}
	if m.Has(int64(1)) {
		t.Errorf("int64(1) should not match int32(1)")
	}
}

func TestOrderedMapDelete(t *testing.T) {
	m := NewOrderedMap()
	for i, k := range []string{"a", "b", "c", "d"} {
		m.Set(k, i)
	}
	if !m.Delete("b") {
		t.Fatal("Delete(b) reported missing")
	}
	if m.Delete("b") {
		t.Fatal("second Delete(b) reported present")
	}
	m.Set("e", 4)
	want := []any{"a", "c", "d", "e"}
	if diff := cmp.Diff(want, m.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if v, _ := m.Get("d"); v != 3 {
		t.Errorf("Get(d) after delete got %v", v)
	}
}

func TestOrderedMapRangeStops(t *testing.T) {
	m := NewOrderedMap()
	m.Set("a", 1)
	m.Set("b", 2)
	n := 0
	m.Range(func(k, v any) bool {
		n++
		return false
	})
	if n != 1 {
		t.Errorf("Range visited %d entries after stop", n)
	}
}
