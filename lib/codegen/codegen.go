// Package codegen turns the introspected interface of a shader pair into
// the source of a Go binding.
package codegen

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/fosdem/glslbind/lib/reflection"
	"github.com/fosdem/glslbind/lib/shadertype"
)

// DefaultRuntimeImport is the package generated bindings build on.
const DefaultRuntimeImport = "github.com/fosdem/glslbind/lib/glrt"

//go:embed templates/*.tmpl
var templateDir embed.FS

// Binding is everything needed to emit one module.
type Binding struct {
	Package  string
	Stem     string
	VertPath string
	FragPath string

	VertSource string
	FragSource string

	Uniforms      []reflection.UniformInfo
	AttribsSorted []reflection.AttribInfo
}

// UnsupportedSizeError is returned for array uniforms and attributes.
type UnsupportedSizeError struct {
	Name string
	Size int32
}

func (e *UnsupportedSizeError) Error() string {
	return fmt.Sprintf("Unsupported field size of %d for %s", e.Size, e.Name)
}

type Emitter struct {
	RuntimeImport string

	templates *template.Template
}

func New(runtimeImport string) (*Emitter, error) {
	if runtimeImport == "" {
		runtimeImport = DefaultRuntimeImport
	}
	templates, err := template.ParseFS(templateDir, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("could not parse templates: %w", err)
	}
	return &Emitter{RuntimeImport: runtimeImport, templates: templates}, nil
}

type field struct {
	GoName   string
	NameLit  string
	HostType string
	Kind     string
	Location uint32
}

type moduleData struct {
	Package  string
	Import   string
	Prefix   string
	Private  string
	VertFile string
	FragFile string
	VSPath   string
	FSPath   string
	VSCode   string
	FSCode   string
	Uniforms []field
	Attribs  []field
}

// Emit renders the binding module for b. The output is valid Go but not
// gofmt-formatted.
func (e *Emitter) Emit(b *Binding) ([]byte, error) {
	prefix, err := StemPrefix(b.Stem)
	if err != nil {
		return nil, err
	}
	if !isGoIdent(b.Package) {
		return nil, &IdentifierError{Name: b.Package, Reason: "is not a valid package name"}
	}

	uniforms, err := uniformFields(b.Uniforms)
	if err != nil {
		return nil, err
	}
	attribs, err := attribFields(b.AttribsSorted)
	if err != nil {
		return nil, err
	}

	data := &moduleData{
		Package:  b.Package,
		Import:   importSpec(e.RuntimeImport),
		Prefix:   prefix,
		Private:  unexport(prefix),
		VertFile: filepath.Base(b.VertPath),
		FragFile: filepath.Base(b.FragPath),
		VSPath:   strconv.Quote(b.VertPath),
		FSPath:   strconv.Quote(b.FragPath),
		VSCode:   SourceLiteral(b.VertSource),
		FSCode:   SourceLiteral(b.FragSource),
		Uniforms: uniforms,
		Attribs:  attribs,
	}

	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, "module.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("error while rendering template: %w", err)
	}
	return buf.Bytes(), nil
}

func importSpec(importPath string) string {
	if path.Base(importPath) == "glrt" {
		return strconv.Quote(importPath)
	}
	return "glrt " + strconv.Quote(importPath)
}

func uniformFields(uniforms []reflection.UniformInfo) ([]field, error) {
	names := newFieldNames("UniformArray")
	fields := make([]field, 0, len(uniforms))
	for _, u := range uniforms {
		hostType, err := shadertype.HostType(u.Type)
		if err != nil {
			return nil, err
		}
		kind, err := shadertype.UniformKind(u.Type)
		if err != nil {
			return nil, err
		}
		if u.Size != 1 {
			return nil, &UnsupportedSizeError{Name: u.Name, Size: u.Size}
		}
		goName, err := names.add(u.Name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field{
			GoName:   goName,
			NameLit:  strconv.Quote(u.Name),
			HostType: hostType,
			Kind:     kind,
		})
	}
	return fields, nil
}

// attribFields keeps the locations the program reported, so that layout
// qualifiers in the shader are honoured.
func attribFields(attribs []reflection.AttribInfo) ([]field, error) {
	names := newFieldNames()
	used := make(map[int32]string)
	fields := make([]field, 0, len(attribs))
	for _, a := range attribs {
		hostType, err := shadertype.HostType(a.Type)
		if err != nil {
			return nil, err
		}
		slots, err := shadertype.Slots(a.Type)
		if err != nil {
			return nil, err
		}
		if a.Size != 1 {
			return nil, &UnsupportedSizeError{Name: a.Name, Size: a.Size}
		}
		if a.Location < 0 {
			return nil, fmt.Errorf("attribute %s has no location", a.Name)
		}
		for slot := int32(0); slot < int32(slots); slot++ {
			if other, ok := used[a.Location+slot]; ok {
				return nil, fmt.Errorf("attributes %s and %s overlap at location %d", other, a.Name, a.Location+slot)
			}
			used[a.Location+slot] = a.Name
		}
		goName, err := names.add(a.Name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field{
			GoName:   goName,
			NameLit:  strconv.Quote(a.Name),
			HostType: hostType,
			Location: uint32(a.Location),
		})
	}
	return fields, nil
}
