package gomap

import "fmt"

type WarningKind int

const (
	DepthExceeded WarningKind = iota
	CommentOnCollection
	InlineCommentMultiline
	MemberAccess
)

var warningKinds = map[WarningKind]string{
	DepthExceeded:          "depth-exceeded",
	CommentOnCollection:    "comment-on-collection",
	InlineCommentMultiline: "inline-comment-multiline",
	MemberAccess:           "member-access",
}

func (k WarningKind) String() string {
	if s, ok := warningKinds[k]; ok {
		return s
	}
	return fmt.Sprintf("<warning %d>", int(k))
}

// Warning reports something ToIR dropped or replaced without failing.
type Warning struct {
	Kind    WarningKind
	Path    string
	Message string
}

func (w Warning) String() string {
	if w.Path == "" {
		return fmt.Sprintf("%s: %s", w.Kind, w.Message)
	}
	return fmt.Sprintf("%s at %s: %s", w.Kind, w.Path, w.Message)
}
