package generate

import (
	"strings"
	"testing"

	"github.com/zoobzio/fourcc"
)

func TestRender(t *testing.T) {
	f := &File{
		Package: "kinds",
		Source:  "kinds.go",
		Constants: []Constant{
			{Name: "KindHex", Code: fourcc.MustParse("hex_")},
			{Name: "KindPadded", Code: fourcc.MustParse("ab  ")},
		},
	}

	src, err := Render(f)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	want := `// Code generated by fourccgen. DO NOT EDIT.

package kinds

import "github.com/zoobzio/fourcc"

const (
	KindHex    fourcc.Code = 0x6865785F // "hex_"
	KindPadded fourcc.Code = 0x61622020 // "ab  "
)
`
	if string(src) != want {
		t.Errorf("Render() =\n%s\nwant\n%s", src, want)
	}
}

func TestRender_SamePackage(t *testing.T) {
	f := &File{
		Package:   "fourcc",
		Constants: []Constant{{Name: "ChunkRIFF", Code: fourcc.ChunkRIFF}},
	}

	src, err := Render(f)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Contains(string(src), "import") {
		t.Errorf("Render() = %s, should not import its own package", src)
	}
	if !strings.Contains(string(src), "ChunkRIFF Code = 0x52494646") {
		t.Errorf("Render() = %s, want unqualified Code", src)
	}
}

func TestRender_EscapedComment(t *testing.T) {
	f := &File{
		Package:   "p",
		Constants: []Constant{{Name: "Quote", Code: fourcc.MustParse(`a"b\`)}},
	}

	src, err := Render(f)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(string(src), `// "a\"b\\"`) {
		t.Errorf("Render() = %s, want quoted comment", src)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"codes.go", "codes_fourcc.go"},
		{"dir/kinds.go", "dir/kinds_fourcc.go"},
		{"noext", "noext_fourcc.go"},
	}

	for _, tt := range tests {
		if got := OutputPath(tt.in); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
