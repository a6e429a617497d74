package format

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yayaml-go/yayaml/ir"
)

func TestAnnotateMerges(t *testing.T) {
	a := Annotate(42, WithComment("answer"))
	b := Annotate(a, WithScalarStyle(ir.DoubleQuoted))

	v, md := Unwrap(b)
	if v != 42 {
		t.Fatalf("unwrapped %v", v)
	}
	want := &Metadata{ScalarStyle: ir.DoubleQuoted, Comment: "answer"}
	if diff := cmp.Diff(want, md); diff != "" {
		t.Errorf("metadata mismatch (-want +got):\n%s", diff)
	}
	if a.Format.ScalarStyle != ir.ScalarAny {
		t.Errorf("annotating modified the original metadata")
	}
}

func TestUnwrapPlain(t *testing.T) {
	v, md := Unwrap("x")
	if v != "x" || md != nil {
		t.Errorf("Unwrap(\"x\") = %v, %v", v, md)
	}
	typed := Annotated[[]int]{Value: []int{1}, Format: &Metadata{CollectionStyle: ir.Flow}}
	v, md = Unwrap(typed)
	if diff := cmp.Diff([]int{1}, v); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
	if md.CollectionStyle != ir.Flow {
		t.Errorf("got collection style %v", md.CollectionStyle)
	}
}

func TestCommentLines(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"hello", "# hello"},
		{"a\n\nb\n", "# a\n#\n# b"},
		{"# kept", "# kept"},
	}
	for _, tt := range tests {
		if got := CommentLines(tt.in); got != tt.want {
			t.Errorf("CommentLines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := StripComment("# a\n#\n# b"); got != "a\n\nb" {
		t.Errorf("StripComment got %q", got)
	}
}

func TestMetadataZero(t *testing.T) {
	var md *Metadata
	if !md.IsZero() || md.HasComments() {
		t.Errorf("nil metadata should be zero without comments")
	}
	md = &Metadata{PostComment: "x"}
	if md.IsZero() || !md.HasComments() {
		t.Errorf("post comment not detected")
	}
}
