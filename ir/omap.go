package ir

import (
	"math/big"
	"reflect"
)

// Entry is one key/value pair of an OrderedMap.
type Entry struct {
	Key   any
	Value any
}

// OrderedMap is a mapping with insertion order and keys of any resolved
// type. Hashable keys are indexed; big integers and keys that are not
// comparable are found by scanning.
//
// The zero value is not usable, use NewOrderedMap.
type OrderedMap struct {
	entries []Entry
	index   map[any]int
}

func NewOrderedMap() *OrderedMap {
	return &OrderedMap{index: map[any]int{}}
}

func normKey(k any) any {
	if IsNullKey(k) {
		return NullKey
	}
	return k
}

func hashable(k any) bool {
	if _, ok := k.(*big.Int); ok {
		return false
	}
	return reflect.TypeOf(k).Comparable() && comparableValue(reflect.ValueOf(k))
}

// comparableValue reports whether == on v cannot panic. Interfaces nested
// in arrays or structs may hold uncomparable dynamic values.
func comparableValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return true
		}
		e := v.Elem()
		return e.Type().Comparable() && comparableValue(e)
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !comparableValue(v.Index(i)) {
				return false
			}
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !comparableValue(v.Field(i)) {
				return false
			}
		}
	}
	return true
}

func keysEqual(a, b any) bool {
	if ab, ok := a.(*big.Int); ok {
		bb, ok := b.(*big.Int)
		return ok && ab.Cmp(bb) == 0
	}
	if hashable(a) && hashable(b) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func (m *OrderedMap) find(k any) (int, bool) {
	if hashable(k) {
		i, ok := m.index[k]
		return i, ok
	}
	for i := range m.entries {
		if keysEqual(m.entries[i].Key, k) {
			return i, true
		}
	}
	return -1, false
}

// Set stores v under k. An existing key keeps its position.
func (m *OrderedMap) Set(k, v any) {
	k = normKey(k)
	if i, ok := m.find(k); ok {
		m.entries[i].Value = v
		return
	}
	if hashable(k) {
		m.index[k] = len(m.entries)
	}
	m.entries = append(m.entries, Entry{Key: k, Value: v})
}

func (m *OrderedMap) Get(k any) (any, bool) {
	i, ok := m.find(normKey(k))
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

func (m *OrderedMap) Has(k any) bool {
	_, ok := m.find(normKey(k))
	return ok
}

// Delete removes k and reports whether it was present.
func (m *OrderedMap) Delete(k any) bool {
	i, ok := m.find(normKey(k))
	if !ok {
		return false
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	m.reindex()
	return true
}

func (m *OrderedMap) reindex() {
	clear(m.index)
	for i, e := range m.entries {
		if hashable(e.Key) {
			m.index[e.Key] = i
		}
	}
}

func (m *OrderedMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

func (m *OrderedMap) Keys() []any {
	res := make([]any, len(m.entries))
	for i := range m.entries {
		res[i] = m.entries[i].Key
	}
	return res
}

// Entries returns a copy of the entries in order.
func (m *OrderedMap) Entries() []Entry {
	if m == nil {
		return nil
	}
	res := make([]Entry, len(m.entries))
	copy(res, m.entries)
	return res
}

// Range calls f for each entry in order until f returns false.
func (m *OrderedMap) Range(f func(k, v any) bool) {
	if m == nil {
		return
	}
	for _, e := range m.entries {
		if !f(e.Key, e.Value) {
			return
		}
	}
}

func (m *OrderedMap) Clone() *OrderedMap {
	res := NewOrderedMap()
	for _, e := range m.entries {
		res.Set(e.Key, e.Value)
	}
	return res
}
