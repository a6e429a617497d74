package ir

import (
	"errors"
	"testing"
)

func TestLongShortTag(t *testing.T) {
	tests := []struct {
		short, long string
	}{
		{"!!int", IntTag},
		{"!!merge", MergeTag},
		{"!local", "!local"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := LongTag(tt.short); got != tt.long {
			t.Errorf("LongTag(%q) = %q, want %q", tt.short, got, tt.long)
		}
		if got := ShortTag(tt.long); got != tt.short {
			t.Errorf("ShortTag(%q) = %q, want %q", tt.long, got, tt.short)
		}
	}
}

func TestUntagged(t *testing.T) {
	for _, tag := range []string{"", "?"} {
		if !IsUntagged(tag) {
			t.Errorf("%q should be untagged", tag)
		}
	}
	for _, tag := range []string{"!", "!!str", StrTag} {
		if IsUntagged(tag) {
			t.Errorf("%q should be tagged", tag)
		}
	}
}

func TestStyleText(t *testing.T) {
	for _, s := range []ScalarStyle{ScalarAny, Plain, SingleQuoted, DoubleQuoted, Literal, Folded} {
		d, err := s.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got ScalarStyle
		if err := got.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if got != s {
			t.Errorf("%s round tripped to %s", s, got)
		}
	}
	var cs CollectionStyle
	if err := cs.UnmarshalText([]byte("flow")); err != nil || cs != Flow {
		t.Errorf("flow parsed as %v, %v", cs, err)
	}
	if _, err := ParseScalarStyle("bogus"); !errors.Is(err, ErrBadStyle) {
		t.Errorf("expected ErrBadStyle, got %v", err)
	}
}

func TestErrorsIs(t *testing.T) {
	var err error = &ClassificationError{Value: "abc", Tag: IntTag, Start: Pos{1, 3}, End: Pos{1, 6}}
	if !errors.Is(err, ErrClassification) {
		t.Errorf("ClassificationError is not ErrClassification")
	}
	if got, want := err.Error(), `1:3-1:6: cannot resolve "abc" as !!int`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	err = &ParseDocumentError{Document: 1, Start: Pos{Line: 4}, Err: errors.New("boom")}
	if !errors.Is(err, ErrParse) {
		t.Errorf("ParseDocumentError is not ErrParse")
	}
}

func TestVisitOrder(t *testing.T) {
	n := Mapping(
		[]*Node{Scalar("a"), Scalar("b")},
		[]*Node{Scalar("1"), Sequence(Scalar("x"), Scalar("y"))},
	)
	var got []string
	n.Visit(func(y *Node) bool {
		if y.Kind == ScalarKind {
			got = append(got, y.Value)
		}
		return true
	})
	want := "a1bxy"
	s := ""
	for _, g := range got {
		s += g
	}
	if s != want {
		t.Errorf("visit order %q, want %q", s, want)
	}
}
