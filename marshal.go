package fourcc

// Text and binary forms of a Code. The text form is the four characters;
// the binary form is the big-endian packed integer, which is the same four
// bytes. Both decoders apply FromSlice, so padding is normalized and
// invalid input is rejected with the validation errors.

// AppendText appends the four characters of c to b.
func (c Code) AppendText(b []byte) ([]byte, error) {
	v := c.Bytes()
	return append(b, v[:]...), nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	return c.AppendText(make([]byte, 0, 4))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	v, err := FromSlice(text)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// AppendBinary appends the big-endian bytes of c to b.
func (c Code) AppendBinary(b []byte) ([]byte, error) {
	v := c.Bytes()
	return append(b, v[:]...), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c Code) MarshalBinary() ([]byte, error) {
	return c.AppendBinary(make([]byte, 0, 4))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *Code) UnmarshalBinary(data []byte) error {
	v, err := FromSlice(data)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
