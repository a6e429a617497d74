package gomap

import (
	"errors"
	"fmt"
)

// ErrCycle is wrapped by the MarshalError returned when a value refers
// back to one of its ancestors.
var ErrCycle = errors.New("circular reference")

// MarshalError represents an error during marshaling
type MarshalError struct {
	FieldPath string // Field path (e.g., "person.address.street")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// MemberAccessError is a failed read of one member of a composite. It never
// escapes ToIR: its message replaces the member value.
type MemberAccessError struct {
	FieldPath string
	Member    string
	Err       error
}

func (e *MemberAccessError) Error() string {
	return fmt.Sprintf("cannot read member %q: %v", e.Member, e.Err)
}

func (e *MemberAccessError) Unwrap() error {
	return e.Err
}
