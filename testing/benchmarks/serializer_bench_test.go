package benchmarks

import (
	"context"
	"testing"

	"github.com/zoobzio/fourcc"
	"github.com/zoobzio/fourcc/json"
	"github.com/zoobzio/fourcc/msgpack"
	fourcctest "github.com/zoobzio/fourcc/testing"
)

var sink fourcc.Code

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink, _ = fourcc.Parse("hex_")
	}
}

func BenchmarkFromBytes_Padded(b *testing.B) {
	in := [4]byte{'a', 'b', 0, 0}
	for i := 0; i < b.N; i++ {
		sink, _ = fourcc.FromBytes(in)
	}
}

func BenchmarkFormat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink, _ = fourcc.Format("F%dMn", i%10)
	}
}

func BenchmarkCompare_String(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = fourcc.ChunkRIFF.Compare("RIFF")
	}
}

func BenchmarkProcessor_Encode_JSON(b *testing.B) {
	proc, _ := fourcc.NewProcessor[fourcctest.WaveFile](json.New())
	file := fourcctest.NewWaveFile()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Encode(context.Background(), &file)
	}
}

func BenchmarkProcessor_Decode_JSON(b *testing.B) {
	proc, _ := fourcc.NewProcessor[fourcctest.WaveFile](json.New())
	file := fourcctest.NewWaveFile()
	data, _ := proc.Encode(context.Background(), &file)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Decode(context.Background(), data)
	}
}

func BenchmarkProcessor_Decode_MessagePack(b *testing.B) {
	proc, _ := fourcc.NewProcessor[fourcctest.WaveFile](msgpack.New())
	file := fourcctest.NewWaveFile()
	data, _ := proc.Encode(context.Background(), &file)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Decode(context.Background(), data)
	}
}

func BenchmarkUse_Cached(b *testing.B) {
	codec := json.New()
	_, _ = fourcc.Use[fourcctest.WaveHeader](codec)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = fourcc.Use[fourcctest.WaveHeader](codec)
	}
}
