// Package cbor provides a CBOR codec implementation.
package cbor

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/zoobzio/fourcc"
)

// cborCodec implements fourcc.Codec for CBOR.
type cborCodec struct{}

// New returns a CBOR codec.
func New() fourcc.Codec {
	return &cborCodec{}
}

// ContentType returns the MIME type for CBOR.
func (c *cborCodec) ContentType() string {
	return "application/cbor"
}

// Marshal encodes v as CBOR.
func (c *cborCodec) Marshal(v any) ([]byte, error) {
	return cbor.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func (c *cborCodec) Unmarshal(data []byte, v any) error {
	return cbor.Unmarshal(data, v)
}
