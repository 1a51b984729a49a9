package compose

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSubject is returned when a message is composed without a
	// subject.
	ErrNoSubject = errors.New("message must have a subject")

	// ErrEmptyMessage is returned when a message has no text body, no HTML
	// body, and no attachments.
	ErrEmptyMessage = errors.New("message has no text, HTML, or attachment content")
)

// DuplicateKeyError is returned when an inline resource key is registered a
// second time with a different payload.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("inline resource %q already registered with different content", e.Key)
}

// VariableCollisionError is returned when the same template variable key is
// supplied by more than one content source, such as an inline image and a
// table.
type VariableCollisionError struct {
	Key string
}

func (e *VariableCollisionError) Error() string {
	return fmt.Sprintf("template variable %q is supplied by both an image and a table", e.Key)
}

// ReadError is returned when an attachment's referenced file cannot be read.
type ReadError struct {
	Filename string
	Path     string
	Err      error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading attachment %q from %q: %v", e.Filename, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError is returned when tabular data is attached under a
// filename whose extension has no defined serialization.
type UnsupportedFormatError struct {
	Filename string
	Ext      string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("attachment %q: no tabular serialization for extension %q", e.Filename, e.Ext)
}
