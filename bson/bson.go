// Package bson provides a BSON codec implementation.
//
// The codec stores fourcc.Code values as four-character BSON strings rather
// than the integer the default registry would write. It still decodes codes
// stored as int32 or int64 by other writers.
package bson

import (
	"bytes"
	"fmt"
	"math"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/zoobzio/fourcc"
)

var codeType = reflect.TypeFor[fourcc.Code]()

// bsonCodec implements fourcc.Codec for BSON.
type bsonCodec struct {
	registry *bsoncodec.Registry
}

// New returns a BSON codec.
func New() fourcc.Codec {
	return &bsonCodec{registry: Registry()}
}

// Registry returns the default BSON registry extended with a fourcc.Code
// encoder and decoder.
func Registry() *bsoncodec.Registry {
	reg := bson.NewRegistry()
	reg.RegisterTypeEncoder(codeType, bsoncodec.ValueEncoderFunc(encodeCode))
	reg.RegisterTypeDecoder(codeType, bsoncodec.ValueDecoderFunc(decodeCode))
	return reg
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	vw, err := bsonrw.NewBSONValueWriter(&buf)
	if err != nil {
		return nil, err
	}
	enc, err := bson.NewEncoder(vw)
	if err != nil {
		return nil, err
	}
	if err := enc.SetRegistry(c.registry); err != nil {
		return nil, err
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(data))
	if err != nil {
		return err
	}
	if err := dec.SetRegistry(c.registry); err != nil {
		return err
	}
	return dec.Decode(v)
}

func encodeCode(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != codeType {
		return bsoncodec.ValueEncoderError{Name: "CodeEncodeValue", Types: []reflect.Type{codeType}, Received: val}
	}
	return vw.WriteString(fourcc.Code(val.Uint()).String())
}

func decodeCode(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != codeType {
		return bsoncodec.ValueDecoderError{Name: "CodeDecodeValue", Types: []reflect.Type{codeType}, Received: val}
	}

	var code fourcc.Code
	switch vr.Type() {
	case bsontype.String:
		s, err := vr.ReadString()
		if err != nil {
			return err
		}
		if code, err = fourcc.Parse(s); err != nil {
			return err
		}
	case bsontype.Int32:
		i, err := vr.ReadInt32()
		if err != nil {
			return err
		}
		if code, err = fourcc.New(uint32(i)); err != nil {
			return err
		}
	case bsontype.Int64:
		i, err := vr.ReadInt64()
		if err != nil {
			return err
		}
		if i < 0 || i > math.MaxUint32 {
			return fmt.Errorf("%d overflows a four char code", i)
		}
		if code, err = fourcc.New(uint32(i)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot decode BSON %v into a four char code", vr.Type())
	}

	val.SetUint(uint64(code))
	return nil
}
