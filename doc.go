// Package fourcc implements four-character codes: 32-bit values read as four
// printable ASCII characters, used as type and tag identifiers in binary file
// and resource formats (RIFF chunks, QuickTime atoms, Mac OS type and creator
// codes).
//
// # Representation
//
// A Code is a uint32 whose big-endian bytes are the characters in reading
// order, so "RIFF" is 0x52494646. Every byte of a valid code lies in
// 0x20-0x7E. Comparing two Codes compares the characters byte by byte.
//
// # Construction
//
// Checked constructors validate their input and return one of ErrTooShort,
// ErrTooLong or ErrInvalidChar:
//
//	c, err := fourcc.Parse("hex_")
//	c, err := fourcc.FromBytes([4]byte{'R', 'I', 'F', 'F'})
//	c, err := fourcc.FromSlice(header[8:12])
//	c, err := fourcc.New(0x57415645)
//
// Zero bytes at the end of the input are padding and become spaces, which
// accepts NUL-terminated legacy values: "ab\x00\x00" parses as "ab  ". A
// zero byte followed by a non-zero one is invalid.
//
// NewUnchecked skips validation entirely. The caller guarantees the value is
// valid; nothing checks it later.
//
// # Build-time constants
//
// The fourccgen command validates literals during go generate and emits
// typed constants, so a bad literal stops the build instead of failing at
// run time:
//
//	//go:generate go run github.com/zoobzio/fourcc/cmd/fourccgen $GOFILE
//
//	//fourcc:const KindHex "hex_"
//
// # Formatted codes
//
// Format builds a code from a format string, failing on the first invalid
// or surplus character:
//
//	c, err := fourcc.Format("F%dMn", 1) // "F1Mn"
//
// # Tagged structs
//
// A Processor decodes and encodes structs whose Code fields declare their
// expected value in a `fourcc:"..."` tag, through any Codec. The json, xml,
// yaml, msgpack, bson and cbor subpackages provide codecs.
package fourcc
