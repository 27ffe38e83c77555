// Package testing provides test fixtures for fourcc.
package testing

import (
	"github.com/zoobzio/fourcc"
)

// WaveHeader is the RIFF header of a WAVE file. Both codes are fixed by
// their tags.
type WaveHeader struct {
	Chunk  fourcc.Code `json:"chunk" xml:"chunk" yaml:"chunk" msgpack:"chunk" bson:"chunk" cbor:"chunk" fourcc:"RIFF"`
	Size   uint32      `json:"size" xml:"size" yaml:"size" msgpack:"size" bson:"size" cbor:"size"`
	Format fourcc.Code `json:"format" xml:"format" yaml:"format" msgpack:"format" bson:"format" cbor:"format" fourcc:"WAVE"`
}

// Clone implements Cloner[WaveHeader].
func (h WaveHeader) Clone() WaveHeader { return h }

// FormatChunk is the "fmt " chunk of a WAVE file.
type FormatChunk struct {
	ID         fourcc.Code `json:"id" xml:"id" yaml:"id" msgpack:"id" bson:"id" cbor:"id" fourcc:"fmt "`
	Channels   uint16      `json:"channels" xml:"channels" yaml:"channels" msgpack:"channels" bson:"channels" cbor:"channels"`
	SampleRate uint32      `json:"sample_rate" xml:"sample_rate" yaml:"sample_rate" msgpack:"sample_rate" bson:"sample_rate" cbor:"sample_rate"`
}

// Chunk is a chunk header whose identifier is not constrained.
type Chunk struct {
	ID   fourcc.Code `json:"id" xml:"id" yaml:"id" msgpack:"id" bson:"id" cbor:"id"`
	Size uint32      `json:"size" xml:"size" yaml:"size" msgpack:"size" bson:"size" cbor:"size"`
}

// WaveFile nests a tagged header, an optional tagged format chunk and
// untagged chunks.
type WaveFile struct {
	Header WaveHeader   `json:"header" xml:"header" yaml:"header" msgpack:"header" bson:"header" cbor:"header"`
	Format *FormatChunk `json:"format,omitempty" xml:"format,omitempty" yaml:"format,omitempty" msgpack:"format,omitempty" bson:"format,omitempty" cbor:"format,omitempty"`
	Chunks []Chunk      `json:"chunks" xml:"chunks" yaml:"chunks" msgpack:"chunks" bson:"chunks" cbor:"chunks"`
}

// Clone implements Cloner[WaveFile].
func (f WaveFile) Clone() WaveFile {
	clone := f
	if f.Format != nil {
		format := *f.Format
		clone.Format = &format
	}
	if f.Chunks != nil {
		clone.Chunks = make([]Chunk, len(f.Chunks))
		copy(clone.Chunks, f.Chunks)
	}
	return clone
}

// NewWaveHeader returns a header with its codes set.
func NewWaveHeader(size uint32) WaveHeader {
	return WaveHeader{Chunk: fourcc.ChunkRIFF, Size: size, Format: fourcc.FormWave}
}

// NewWaveFile returns a stereo 44.1 kHz file with one data chunk.
func NewWaveFile() WaveFile {
	return WaveFile{
		Header: NewWaveHeader(36),
		Format: &FormatChunk{ID: fourcc.ChunkFormat, Channels: 2, SampleRate: 44100},
		Chunks: []Chunk{{ID: fourcc.ChunkData, Size: 0}},
	}
}

// Samples returns valid codes covering padding, punctuation and the ends of
// the printable range.
func Samples() []fourcc.Code {
	return []fourcc.Code{
		fourcc.ChunkRIFF,
		fourcc.ChunkFormat,
		fourcc.Space,
		fourcc.MustParse("hex_"),
		fourcc.MustParse("ab  "),
		fourcc.MustParse("~!~!"),
		fourcc.MustParse(`"'\<`),
	}
}
