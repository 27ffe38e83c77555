package fourcc

import (
	"fmt"
	"unicode/utf8"
)

// Builder assembles a Code one character at a time in a fixed four-byte
// buffer. It fails on the first bad character: anything outside printable
// ASCII is ErrInvalidChar and a fifth character is ErrTooLong. Once a write
// has failed, every later write returns the same error.
//
// The zero value is ready to use. A Builder implements io.Writer,
// io.ByteWriter and io.StringWriter, so fmt.Fprintf can write into it.
type Builder struct {
	buf [4]byte
	n   int
	err error
}

// Len returns the number of characters written so far.
func (b *Builder) Len() int {
	return b.n
}

// Reset empties the builder and clears any error.
func (b *Builder) Reset() {
	*b = Builder{}
}

// WriteByte appends one character.
func (b *Builder) WriteByte(c byte) error {
	if b.err != nil {
		return b.err
	}
	switch {
	case !printable(c):
		b.err = ErrInvalidChar
	case b.n == len(b.buf):
		b.err = ErrTooLong
	default:
		b.buf[b.n] = c
		b.n++
		return nil
	}
	return b.err
}

// WriteRune appends one character. Runes beyond ASCII are ErrInvalidChar.
func (b *Builder) WriteRune(r rune) (int, error) {
	if r >= utf8.RuneSelf {
		if b.err == nil {
			b.err = ErrInvalidChar
		}
		return 0, b.err
	}
	if err := b.WriteByte(byte(r)); err != nil {
		return 0, err
	}
	return 1, nil
}

// WriteString appends the characters of s, stopping at the first failure.
func (b *Builder) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if err := b.WriteByte(s[i]); err != nil {
			return i, err
		}
	}
	return len(s), nil
}

// Write appends the characters of p, stopping at the first failure. The
// bytes of a multi-byte UTF-8 sequence are all outside ASCII, so such input
// fails with ErrInvalidChar.
func (b *Builder) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := b.WriteByte(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// Code returns the assembled code. It reports the first write error, or
// ErrTooShort if fewer than four characters were written.
func (b *Builder) Code() (Code, error) {
	if b.err != nil {
		return 0, b.err
	}
	if b.n != len(b.buf) {
		return 0, ErrTooShort
	}
	return pack(b.buf), nil
}

// Format builds a Code from a fmt format string and arguments, without
// allocating a string for the result.
//
//	c, err := fourcc.Format("F%dMn", 1) // "F1Mn"
func Format(format string, args ...any) (Code, error) {
	var b Builder
	// The builder records its own error; fmt only relays it.
	_, _ = fmt.Fprintf(&b, format, args...)
	return b.Code()
}
