package fourcc

import "cmp"

// Compare orders two codes by their packed integers. It suits
// slices.SortFunc.
func Compare(a, b Code) int {
	return cmp.Compare(a, b)
}

// Equal reports whether v denotes the same code as c.
//
// v may be a Code, a uint32, a [4]byte, a []byte or a string. Anything but a
// Code is validated first with New, FromBytes, FromSlice or Parse; if that
// fails, or v has another type, Equal returns false.
func (c Code) Equal(v any) bool {
	other, err := coerce(v)
	if err != nil {
		return false
	}
	return c == other
}

// Compare orders c against v, accepting the same types as Equal. The result
// is -1, 0 or +1 with ok set; if v does not validate, ok is false and the
// codes are unordered.
func (c Code) Compare(v any) (result int, ok bool) {
	other, err := coerce(v)
	if err != nil {
		return 0, false
	}
	return Compare(c, other), true
}

// coerce converts any supported representation into a validated Code.
func coerce(v any) (Code, error) {
	switch tv := v.(type) {
	case Code:
		return tv, nil
	case uint32:
		return New(tv)
	case [4]byte:
		return FromBytes(tv)
	case []byte:
		return FromSlice(tv)
	case string:
		return Parse(tv)
	default:
		return 0, ErrInvalidChar
	}
}
