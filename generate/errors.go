package generate

import (
	"errors"
	"go/token"
)

var (
	// ErrDirective indicates a //fourcc:const comment that cannot be read:
	// a missing or non-identifier name, an unquotable literal, or a name
	// declared twice.
	ErrDirective = errors.New("malformed fourcc directive")

	// ErrStale indicates a generated file that does not match its source
	// when running in check mode.
	ErrStale = errors.New("generated file is out of date")
)

// LiteralError reports a rejected directive at its source position. Err is
// ErrDirective or one of fourcc.ErrTooShort, fourcc.ErrTooLong and
// fourcc.ErrInvalidChar.
type LiteralError struct {
	Pos    token.Position
	Err    error
	Detail string
}

func (e *LiteralError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + msg
	}
	return msg
}

func (e *LiteralError) Unwrap() error {
	return e.Err
}
