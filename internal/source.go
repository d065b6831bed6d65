package internal

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// PackerImport is the import path of the run-time package used by generated sources.
const PackerImport = "github.com/maja42/packer"

// SourceFile is the name of the generated accessor source within the package directory.
const SourceFile = "payload_gen.go"

var sourceTemplate = template.Must(template.New("source").Funcs(template.FuncMap{
	"varName": VarName,
}).Parse(`// Code generated by embedder. DO NOT EDIT.

package {{.Package}}

import (
	_ "embed"

	"{{.Import}}"
)
{{range .TOC}}
// {{.Accessor}}Size is the length in bytes of the payload returned by {{.Accessor}}.
const {{.Accessor}}Size = {{.Size}}

//go:embed {{.File}}
var {{varName .Accessor}} string

// {{.Accessor}} returns a copy of the payload embedded from {{printf "%q" .File}}.
func {{.Accessor}}() []byte {
	return packer.Payload({{varName .Accessor}}).Bytes()
}
{{end}}`))

// WriteSource renders the gofmt'ed accessor source for the given payloads.
func WriteSource(w io.Writer, pkg string, toc TOC) error {
	src, err := Source(pkg, toc)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// Source returns the gofmt'ed accessor source for the given payloads.
func Source(pkg string, toc TOC) ([]byte, error) {
	var buf bytes.Buffer
	err := sourceTemplate.Execute(&buf, struct {
		Package string
		Import  string
		TOC     TOC
	}{pkg, PackerImport, toc})
	if err != nil {
		return nil, fmt.Errorf("render source: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format source: %w", err)
	}
	return src, nil
}

// VarName returns the name of the unexported variable holding the payload of an accessor.
func VarName(accessor string) string {
	r, n := utf8.DecodeRuneInString(accessor)
	return string(unicode.ToLower(r)) + accessor[n:] + "Payload"
}
