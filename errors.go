package fourcc

import (
	"errors"
	"fmt"
)

// Validation errors returned by every checked constructor.
// Use errors.Is() to check for these error types.
var (
	// ErrTooLong indicates more than four bytes were supplied.
	ErrTooLong = errors.New("four char code is too long")

	// ErrTooShort indicates fewer than four bytes were supplied.
	ErrTooShort = errors.New("four char code is too short")

	// ErrInvalidChar indicates a byte outside the printable ASCII range,
	// or a zero byte that is not part of the trailing padding run.
	ErrInvalidChar = errors.New("invalid char in four char code")
)

// Sentinel errors for tag verification and codec round trips.
var (
	// ErrInvalidTag indicates a fourcc struct tag has an invalid literal or
	// sits on a field that is not a Code.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrMismatch indicates a tagged field does not hold its expected code.
	ErrMismatch = errors.New("code mismatch")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// ConfigError represents a processor configuration error.
// It wraps a sentinel error with the field and tag literal that caused it.
type ConfigError struct {
	Err     error  // Underlying sentinel error (ErrInvalidTag)
	Field   string // Field name that carries the tag
	Literal string // Tag literal as written
	Cause   error  // Validation error for the literal, if any
}

func (e *ConfigError) Error() string {
	msg := e.Err.Error()
	if e.Literal != "" || e.Cause != nil {
		msg = fmt.Sprintf("%s %q", msg, e.Literal)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s (field %s)", msg, e.Field)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// MismatchError reports a tagged field whose value differs from the
// code declared in its tag.
type MismatchError struct {
	Field string
	Want  Code
	Got   Code
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: field %s = %q, want %q", ErrMismatch, e.Field, e.Got.String(), e.Want.String())
}

func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for a rejected tag.
func newConfigError(sentinel error, field, literal string, cause error) error {
	return &ConfigError{
		Err:     sentinel,
		Field:   field,
		Literal: literal,
		Cause:   cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
