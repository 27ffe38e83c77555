// Package generate turns //fourcc:const directives in Go source into typed
// fourcc.Code constants.
//
// A directive names a constant and gives its four-character literal as a Go
// string literal:
//
//	//fourcc:const KindHex "hex_"
//	//fourcc:const KindPadded "ab\x00\x00"
//
// Literals are validated exactly as fourcc.Parse validates them, including
// the trailing-NUL padding rule. A rejected literal is reported with its
// file position, so running the generator from go generate stops the build
// before any code using the constant is compiled.
package generate

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"github.com/zoobzio/fourcc"
)

// directivePrefix starts every directive comment.
const directivePrefix = "//fourcc:const"

// Constant is one validated directive.
type Constant struct {
	Name    string
	Literal string // literal after unquoting, before normalization
	Code    fourcc.Code
	Pos     token.Position
}

// File holds the directives found in one source file.
type File struct {
	Package   string
	Source    string
	Constants []Constant
}

// ParseFile reads the directives of a Go source file. src may be nil, in
// which case the file is read from filename.
//
// All rejected directives are reported together; each is a *LiteralError
// and the returned error matches the sentinels through errors.Is.
func ParseFile(filename string, src []byte) (*File, error) {
	fset := token.NewFileSet()
	var source any
	if src != nil {
		source = src
	}
	af, err := parser.ParseFile(fset, filename, source, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	f := &File{
		Package: af.Name.Name,
		Source:  filename,
	}

	var errs []error
	seen := make(map[string]bool)
	for _, group := range af.Comments {
		for _, c := range group.List {
			constant, ok, err := parseDirective(fset, c)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if !ok {
				continue
			}
			if seen[constant.Name] {
				errs = append(errs, &LiteralError{
					Pos:    constant.Pos,
					Err:    ErrDirective,
					Detail: "duplicate name " + constant.Name,
				})
				continue
			}
			seen[constant.Name] = true
			f.Constants = append(f.Constants, constant)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return f, nil
}

// parseDirective reads a single comment. ok is false for comments that are
// not directives.
func parseDirective(fset *token.FileSet, c *ast.Comment) (constant Constant, ok bool, err error) {
	text := c.Text
	if !strings.HasPrefix(text, directivePrefix) {
		return Constant{}, false, nil
	}
	rest := text[len(directivePrefix):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		// //fourcc:constant and friends belong to someone else.
		return Constant{}, false, nil
	}

	pos := fset.Position(c.Slash)
	body := strings.TrimLeft(rest, " \t")
	nameEnd := strings.IndexAny(body, " \t")
	if nameEnd < 0 {
		return Constant{}, false, &LiteralError{Pos: pos, Err: ErrDirective, Detail: "want NAME \"lit\""}
	}

	name := body[:nameEnd]
	if !token.IsIdentifier(name) {
		return Constant{}, false, &LiteralError{Pos: pos, Err: ErrDirective, Detail: strconv.Quote(name) + " is not an identifier"}
	}

	quoted := strings.TrimSpace(body[nameEnd:])
	if i := strings.LastIndex(text, quoted); i >= 0 {
		pos = fset.Position(c.Slash + token.Pos(i))
	}
	literal, err := strconv.Unquote(quoted)
	if err != nil {
		return Constant{}, false, &LiteralError{Pos: pos, Err: ErrDirective, Detail: "bad literal " + quoted}
	}

	code, err := fourcc.Parse(literal)
	if err != nil {
		return Constant{}, false, &LiteralError{Pos: pos, Err: err}
	}

	return Constant{
		Name:    name,
		Literal: literal,
		Code:    code,
		Pos:     pos,
	}, true, nil
}
