package ir

import (
	"errors"
	"fmt"
)

var (
	ErrParse          = errors.New("parse error")
	ErrClassification = errors.New("classification error")
	ErrBadStyle       = errors.New("bad style")
)

// Pos is a 1-based line and column in the source text. The zero Pos means
// the position is unknown.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) IsZero() bool { return p.Line == 0 && p.Column == 0 }

func (p Pos) String() string {
	if p.IsZero() {
		return "?"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ClassificationError is returned when the text of an explicitly tagged
// scalar does not satisfy the grammar of its tag.
type ClassificationError struct {
	Value string
	Tag   string
	Start Pos
	End   Pos
	Err   error
}

func (e *ClassificationError) Error() string {
	msg := fmt.Sprintf("cannot resolve %q as %s", e.Value, ShortTag(e.Tag))
	if !e.Start.IsZero() {
		msg = fmt.Sprintf("%s-%s: %s", e.Start, e.End, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ClassificationError) Unwrap() error { return e.Err }

func (e *ClassificationError) Is(target error) bool {
	return target == ErrClassification
}

// ParseDocumentError reports a malformed document in a multi-document
// stream. Document is the 0-based index of the document.
type ParseDocumentError struct {
	Document int
	Start    Pos
	End      Pos
	Err      error
}

func (e *ParseDocumentError) Error() string {
	if e.Start.IsZero() {
		return fmt.Sprintf("document %d: %v", e.Document, e.Err)
	}
	return fmt.Sprintf("document %d at %s: %v", e.Document, e.Start, e.Err)
}

func (e *ParseDocumentError) Unwrap() error { return e.Err }

func (e *ParseDocumentError) Is(target error) bool {
	return target == ErrParse
}
