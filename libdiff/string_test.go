package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiffString(t *testing.T) {
	tests := []struct {
		from, to string
		want     []Line
	}{
		{
			from: "a\nb\nc\n",
			to:   "a\nx\nc\n",
			want: []Line{{Equal, "a"}, {Delete, "b"}, {Insert, "x"}, {Equal, "c"}},
		},
		{
			from: "a\n",
			to:   "a\nb\n",
			want: []Line{{Equal, "a"}, {Insert, "b"}},
		},
		{
			from: "same\n",
			to:   "same\n",
			want: []Line{{Equal, "same"}},
		},
	}
	for _, tt := range tests {
		got := DiffString(tt.from, tt.to)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("DiffString(%q, %q) mismatch (-want +got):\n%s", tt.from, tt.to, diff)
		}
	}
}

func TestChanged(t *testing.T) {
	if Changed(DiffString("a\n", "a\n")) {
		t.Error("identical texts reported as changed")
	}
	if !Changed(DiffString("a\n", "b\n")) {
		t.Error("different texts reported as unchanged")
	}
	if got := (Line{Insert, "x"}).String(); got != "+ x" {
		t.Errorf("String() = %q", got)
	}
}
