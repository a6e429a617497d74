package ir

type nullKey struct{}

func (nullKey) String() string { return "null" }

func (nullKey) MarshalText() ([]byte, error) { return []byte("null"), nil }

// NullKey stands in for a null mapping key. Go maps cannot hold a nil
// interface key alongside typed keys in a useful way, so OrderedMap stores
// NullKey instead and treats nil and NullKey as the same key.
var NullKey any = nullKey{}

// IsNullKey reports whether v is NullKey or native nil.
func IsNullKey(v any) bool {
	if v == nil {
		return true
	}
	_, ok := v.(nullKey)
	return ok
}
