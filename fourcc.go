package fourcc

import (
	"fmt"
	"strconv"
)

// Code is a four-character code: a 32-bit value whose big-endian bytes are
// four printable ASCII characters, byte 0 being the first character.
//
// Codes are plain values. Equality and ordering of two Codes is equality and
// ordering of the packed integers, which matches byte-wise comparison of the
// four characters.
//
// The zero Code is four NUL bytes and is not valid; use Space for a blank
// code.
type Code uint32

// Space is the blank code "    ". FromBytes normalizes four zero bytes to it.
const Space Code = 0x20202020

// printable reports whether c is in the printable ASCII range 0x20-0x7E.
func printable(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}

// FromBytes validates b and packs it into a Code.
//
// Bytes are scanned from index 3 down to index 0. Zero bytes met before any
// non-zero byte are padding and become spaces, so "ab\x00\x00" yields
// "ab  ". A zero byte after a non-zero one, or any byte outside 0x20-0x7E,
// is ErrInvalidChar.
func FromBytes(b [4]byte) (Code, error) {
	padding := true
	for i := 3; i >= 0; i-- {
		c := b[i]
		if c == 0 {
			if !padding {
				return 0, ErrInvalidChar
			}
			c = ' '
			b[i] = c
		} else {
			padding = false
		}

		if !printable(c) {
			return 0, ErrInvalidChar
		}
	}
	return pack(b), nil
}

// FromSlice validates a four-byte slice. Shorter input is ErrTooShort,
// longer input is ErrTooLong.
func FromSlice(b []byte) (Code, error) {
	switch {
	case len(b) < 4:
		return 0, ErrTooShort
	case len(b) > 4:
		return 0, ErrTooLong
	}
	return FromBytes([4]byte(b))
}

// Parse validates a four-character string. Length is measured in bytes, so
// multi-byte UTF-8 input fails the length or character checks.
func Parse(s string) (Code, error) {
	switch {
	case len(s) < 4:
		return 0, ErrTooShort
	case len(s) > 4:
		return 0, ErrTooLong
	}
	return FromBytes([4]byte{s[0], s[1], s[2], s[3]})
}

// New validates that v decodes to a legal code.
func New(v uint32) (Code, error) {
	return FromBytes(unpack(v))
}

// NewUnchecked returns v as a Code without any validation.
//
// The caller guarantees that v is a valid code. Nothing checks it at run
// time: String and MarshalText will happily emit whatever bytes v holds.
// Never use it with untrusted input; IsValid can test the result.
func NewUnchecked(v uint32) Code {
	return Code(v)
}

// MustParse is like Parse but panics on invalid input. It is meant for
// package-level variables initialized from literals; prefer fourccgen
// constants where the literal is known at build time.
func MustParse(s string) Code {
	return Must(Parse(s))
}

// Must panics if err is non-nil and returns c otherwise.
func Must(c Code, err error) Code {
	if err != nil {
		panic(fmt.Sprintf("fourcc: %v", err))
	}
	return c
}

// Uint32 returns the packed integer.
func (c Code) Uint32() uint32 {
	return uint32(c)
}

// Bytes returns the four characters in reading order.
func (c Code) Bytes() [4]byte {
	return unpack(uint32(c))
}

// String returns the four characters as text. The bytes are not
// re-validated.
func (c Code) String() string {
	b := c.Bytes()
	return string(b[:])
}

// GoString returns a Go expression that rebuilds c.
func (c Code) GoString() string {
	if !c.IsValid() {
		return fmt.Sprintf("fourcc.NewUnchecked(0x%08X)", uint32(c))
	}
	return "fourcc.MustParse(" + strconv.Quote(c.String()) + ")"
}

// IsValid reports whether every byte of c is printable ASCII. Codes from the
// checked constructors are always valid.
func (c Code) IsValid() bool {
	b := c.Bytes()
	for _, ch := range b {
		if !printable(ch) {
			return false
		}
	}
	return true
}

// Normalize replaces the trailing run of zero bytes with spaces, leaving the
// rest of c untouched. A code with no trailing zero byte is returned as is.
func (c Code) Normalize() Code {
	b := c.Bytes()
	for i := 3; i >= 0 && b[i] == 0; i-- {
		b[i] = ' '
	}
	return pack(b)
}

func pack(b [4]byte) Code {
	return Code(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

func unpack(v uint32) [4]byte {
	return [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}
