package fourcc_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/fourcc"
	"github.com/zoobzio/fourcc/json"
	"github.com/zoobzio/fourcc/yaml"
	fourcctest "github.com/zoobzio/fourcc/testing"
)

func TestUse_Caching(t *testing.T) {
	fourcc.Reset()

	p1, err := fourcc.Use[fourcctest.WaveHeader](json.New())
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	p2, err := fourcc.Use[fourcctest.WaveHeader](json.New())
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if p1 != p2 {
		t.Error("Use() should return cached processor")
	}
}

func TestUse_DifferentCodecs(t *testing.T) {
	fourcc.Reset()

	p1, _ := fourcc.Use[fourcctest.WaveHeader](json.New())
	p2, _ := fourcc.Use[fourcctest.WaveHeader](yaml.New())

	if p1 == p2 {
		t.Error("different codecs should return different processors")
	}
}

func TestUse_InvalidTag(t *testing.T) {
	fourcc.Reset()

	if _, err := fourcc.Use[badLiteral](json.New()); !errors.Is(err, fourcc.ErrInvalidTag) {
		t.Errorf("Use() error = %v, want %v", err, fourcc.ErrInvalidTag)
	}
}

func TestReset(t *testing.T) {
	p1, _ := fourcc.Use[fourcctest.WaveHeader](json.New())

	fourcc.Reset()

	p2, _ := fourcc.Use[fourcctest.WaveHeader](json.New())

	if p1 == p2 {
		t.Error("Reset() should clear cache, new processor expected")
	}
}
