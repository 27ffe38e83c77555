package generate

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
)

// importPath is the package providing the generated constants' type.
const importPath = "github.com/zoobzio/fourcc"

var fileTemplate = template.Must(template.New("fourcc").Parse(`// Code generated by fourccgen. DO NOT EDIT.

package {{.Package}}
{{if .Qualifier}}
import "` + importPath + `"
{{end}}
const (
{{- range .Constants}}
	{{.Name}} {{$.Qualifier}}Code = {{.Hex}} // {{.Quoted}}
{{- end}}
)
`))

type renderConstant struct {
	Name   string
	Hex    string
	Quoted string
}

type renderData struct {
	Package   string
	Qualifier string
	Constants []renderConstant
}

// Render returns gofmt-formatted source declaring the constants of f. Code
// in package fourcc itself refers to Code unqualified.
func Render(f *File) ([]byte, error) {
	data := renderData{
		Package:   f.Package,
		Qualifier: "fourcc.",
	}
	if f.Package == "fourcc" {
		data.Qualifier = ""
	}
	for _, c := range f.Constants {
		data.Constants = append(data.Constants, renderConstant{
			Name:   c.Name,
			Hex:    fmt.Sprintf("0x%08X", c.Code.Uint32()),
			Quoted: strconv.Quote(c.Code.String()),
		})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", f.Source, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", f.Source, err)
	}
	return src, nil
}

// OutputPath returns the file generated for source: codes.go becomes
// codes_fourcc.go.
func OutputPath(source string) string {
	return strings.TrimSuffix(source, ".go") + "_fourcc.go"
}
