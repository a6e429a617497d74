package ir

import "fmt"

// Kind is the structural kind of a Node.
type Kind int

const (
	ScalarKind Kind = iota
	MappingKind
	SequenceKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		ScalarKind:   "Scalar",
		MappingKind:  "Mapping",
		SequenceKind: "Sequence",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Scalar":   ScalarKind,
		"Mapping":  MappingKind,
		"Sequence": SequenceKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		ScalarKind,
		MappingKind,
		SequenceKind,
	}
}

func (k Kind) IsLeaf() bool {
	return k == ScalarKind
}
