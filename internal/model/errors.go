package model

import (
	"errors"
	"fmt"
)

var (
	// ErrBodySpec reports a truck body spec that is not "<width>x<height>x<length>".
	ErrBodySpec = errors.New("expected exactly 3 dimensions separated by 'x'")

	// ErrNumber reports a field that is not a valid number.
	ErrNumber = errors.New("invalid number")
)

// FormatError is returned when a raw field cannot be turned into a vehicle attribute.
//
// Value holds the offending raw text so callers can report it verbatim.
type FormatError struct {
	// Field names the attribute being parsed, e.g. "body" or "carrying".
	Field string

	// Value is the raw text that failed to parse.
	Value string

	// Err is the underlying cause.
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s format %q: %v", e.Field, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
