package format

import (
	"strings"

	"github.com/yayaml-go/yayaml/ir"
)

var ErrBadStyle = ir.ErrBadStyle

// Metadata is formatting that travels alongside a value: the styles to emit
// it in and the comments around it. Any styles leave the choice to the
// schema.
type Metadata struct {
	CollectionStyle ir.CollectionStyle
	ScalarStyle     ir.ScalarStyle

	// Comment is written on the same line as the value.
	Comment string
	// PreComment is written on the lines before the value.
	PreComment string
	// PostComment is written on the lines after the value.
	PostComment string
}

func (m *Metadata) IsZero() bool {
	return m == nil || *m == Metadata{}
}

func (m *Metadata) HasComments() bool {
	return m != nil && (m.Comment != "" || m.PreComment != "" || m.PostComment != "")
}

// Annotation is implemented by values that carry Metadata.
type Annotation interface {
	Underlying() any
	Metadata() *Metadata
}

// Annotated pairs a value with its formatting.
type Annotated[T any] struct {
	Value  T
	Format *Metadata
}

func (a Annotated[T]) Underlying() any     { return a.Value }
func (a Annotated[T]) Metadata() *Metadata { return a.Format }

// Option sets a field of Metadata.
type Option func(*Metadata)

// WithScalarStyle requests a scalar style.
func WithScalarStyle(s ir.ScalarStyle) Option {
	return func(m *Metadata) { m.ScalarStyle = s }
}

// WithCollectionStyle requests block or flow style for a collection.
func WithCollectionStyle(s ir.CollectionStyle) Option {
	return func(m *Metadata) { m.CollectionStyle = s }
}

// WithComment sets the inline comment.
func WithComment(c string) Option {
	return func(m *Metadata) { m.Comment = c }
}

// WithPreComment sets the comment lines above the value.
func WithPreComment(c string) Option {
	return func(m *Metadata) { m.PreComment = c }
}

// WithPostComment sets the comment lines below the value.
func WithPostComment(c string) Option {
	return func(m *Metadata) { m.PostComment = c }
}

// Annotate attaches formatting to v. If v is already annotated, the
// options are applied to a copy of its metadata and the inner value is
// kept.
func Annotate[T any](v T, opts ...Option) Annotated[any] {
	var (
		inner any = v
		md        = &Metadata{}
	)
	if a, ok := inner.(Annotation); ok {
		inner = a.Underlying()
		if prev := a.Metadata(); prev != nil {
			*md = *prev
		}
	}
	for _, opt := range opts {
		opt(md)
	}
	return Annotated[any]{Value: inner, Format: md}
}

// Unwrap strips any number of annotation layers and returns the innermost
// value with the outermost non-nil metadata.
func Unwrap(v any) (any, *Metadata) {
	var md *Metadata
	for {
		a, ok := v.(Annotation)
		if !ok {
			return v, md
		}
		if md == nil {
			md = a.Metadata()
		}
		v = a.Underlying()
	}
}

// CommentLines turns free text into comment lines, each starting with
// "# ". Lines that already start with '#' are kept. Empty text gives "".
func CommentLines(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, ln := range lines {
		switch {
		case strings.HasPrefix(ln, "#"):
		case ln == "":
			lines[i] = "#"
		default:
			lines[i] = "# " + ln
		}
	}
	return strings.Join(lines, "\n")
}

// StripComment is the inverse of CommentLines for a single comment block,
// removing the '#' markers and one following space from each line.
func StripComment(c string) string {
	if c == "" {
		return ""
	}
	lines := strings.Split(c, "\n")
	for i, ln := range lines {
		ln = strings.TrimPrefix(strings.TrimLeft(ln, " \t"), "#")
		lines[i] = strings.TrimPrefix(ln, " ")
	}
	return strings.Join(lines, "\n")
}
