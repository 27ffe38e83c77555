package generate

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/fourcc"
)

func TestParseFile(t *testing.T) {
	src := `package kinds

//go:generate go run github.com/zoobzio/fourcc/cmd/fourccgen $GOFILE

// Value kinds.
//
//fourcc:const KindHex "hex_"
//fourcc:const KindU32 "ui32"
//fourcc:const	KindTab "tab "
//fourcc:const KindPadded "ab\x00\x00"
//fourcc:const KindRaw ` + "`raw!`" + `

// Not directives.
//fourcc:constant KindOther "abcd"
// fourcc:const KindSpaced "abcd"
`

	f, err := ParseFile("kinds.go", []byte(src))
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if f.Package != "kinds" {
		t.Errorf("Package = %q, want %q", f.Package, "kinds")
	}
	if f.Source != "kinds.go" {
		t.Errorf("Source = %q, want %q", f.Source, "kinds.go")
	}

	want := []struct {
		name    string
		literal string
		code    string
	}{
		{"KindHex", "hex_", "hex_"},
		{"KindU32", "ui32", "ui32"},
		{"KindTab", "tab ", "tab "},
		{"KindPadded", "ab\x00\x00", "ab  "},
		{"KindRaw", "raw!", "raw!"},
	}
	if len(f.Constants) != len(want) {
		t.Fatalf("got %d constants, want %d", len(f.Constants), len(want))
	}
	for i, w := range want {
		c := f.Constants[i]
		if c.Name != w.name {
			t.Errorf("Constants[%d].Name = %q, want %q", i, c.Name, w.name)
		}
		if c.Literal != w.literal {
			t.Errorf("Constants[%d].Literal = %q, want %q", i, c.Literal, w.literal)
		}
		if c.Code != fourcc.MustParse(w.code) {
			t.Errorf("Constants[%d].Code = %q, want %q", i, c.Code, w.code)
		}
	}

	if got := f.Constants[0].Code.Uint32(); got != 0x6865785F {
		t.Errorf("KindHex = %#x, want %#x", got, 0x6865785F)
	}
	if pos := f.Constants[0].Pos; pos.Line != 7 {
		t.Errorf("KindHex line = %d, want 7", pos.Line)
	}
}

func TestParseFile_NoDirectives(t *testing.T) {
	f, err := ParseFile("plain.go", []byte("package plain\n\n// Just a comment.\nconst X = 1\n"))
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(f.Constants) != 0 {
		t.Errorf("got %d constants, want 0", len(f.Constants))
	}
}

func TestParseFile_InvalidLiteral(t *testing.T) {
	tests := []struct {
		name      string
		directive string
		wantErr   error
	}{
		{"too long", `//fourcc:const Bad "toolong1"`, fourcc.ErrTooLong},
		{"too short", `//fourcc:const Bad "ab"`, fourcc.ErrTooShort},
		{"empty", `//fourcc:const Bad ""`, fourcc.ErrTooShort},
		{"DEL", `//fourcc:const Bad "\x7f___"`, fourcc.ErrInvalidChar},
		{"inner zero", `//fourcc:const Bad "a\x00bc"`, fourcc.ErrInvalidChar},
		{"non-ascii", `//fourcc:const Bad "né_"`, fourcc.ErrInvalidChar},
		{"missing literal", `//fourcc:const Bad`, ErrDirective},
		{"missing name", `//fourcc:const`, ErrDirective},
		{"bad name", `//fourcc:const 1Bad "abcd"`, ErrDirective},
		{"unquoted literal", `//fourcc:const Bad abcd`, ErrDirective},
		{"unterminated literal", `//fourcc:const Bad "abcd`, ErrDirective},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "package p\n\n" + tt.directive + "\n"
			_, err := ParseFile("p.go", []byte(src))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseFile(%s) error = %v, want %v", tt.directive, err, tt.wantErr)
			}

			var litErr *LiteralError
			if !errors.As(err, &litErr) {
				t.Fatalf("ParseFile() error should be *LiteralError, got %T", err)
			}
			if litErr.Pos.Filename != "p.go" || litErr.Pos.Line != 3 {
				t.Errorf("Pos = %v, want p.go:3", litErr.Pos)
			}
		})
	}
}

func TestParseFile_LiteralPosition(t *testing.T) {
	src := "package p\n\n//fourcc:const Bad \"ab\"\n"
	_, err := ParseFile("p.go", []byte(src))

	var litErr *LiteralError
	if !errors.As(err, &litErr) {
		t.Fatalf("ParseFile() error should be *LiteralError, got %T", err)
	}
	// Column of the opening quote.
	if litErr.Pos.Column != 20 {
		t.Errorf("Column = %d, want 20", litErr.Pos.Column)
	}

	want := "p.go:3:20: four char code is too short"
	if got := litErr.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestParseFile_AllErrorsReported(t *testing.T) {
	src := `package p

//fourcc:const Long "abcde"
//fourcc:const Good "abcd"
//fourcc:const Short "abc"
`
	_, err := ParseFile("p.go", []byte(src))
	if err == nil {
		t.Fatal("ParseFile() should fail")
	}
	if !errors.Is(err, fourcc.ErrTooLong) || !errors.Is(err, fourcc.ErrTooShort) {
		t.Errorf("ParseFile() error = %v, want both length errors", err)
	}
	if msg := err.Error(); !strings.Contains(msg, "p.go:3:") || !strings.Contains(msg, "p.go:5:") {
		t.Errorf("ParseFile() error = %q, want both positions", msg)
	}
}

func TestParseFile_Duplicate(t *testing.T) {
	src := `package p

//fourcc:const Kind "abcd"
//fourcc:const Kind "efgh"
`
	_, err := ParseFile("p.go", []byte(src))
	if !errors.Is(err, ErrDirective) {
		t.Fatalf("ParseFile() error = %v, want %v", err, ErrDirective)
	}
	if !strings.Contains(err.Error(), "duplicate name Kind") {
		t.Errorf("ParseFile() error = %q, want duplicate name", err)
	}
}

func TestParseFile_SyntaxError(t *testing.T) {
	if _, err := ParseFile("p.go", []byte("not go")); err == nil {
		t.Error("ParseFile() should fail for invalid Go source")
	}
}

func TestLiteralError_NoPosition(t *testing.T) {
	err := &LiteralError{Err: ErrDirective, Detail: "want NAME \"lit\""}

	want := `malformed fourcc directive: want NAME "lit"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrDirective) {
		t.Error("LiteralError should unwrap to ErrDirective")
	}
}
