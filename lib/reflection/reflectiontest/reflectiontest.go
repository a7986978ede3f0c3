// Package reflectiontest provides a scripted reflection.Reflector for
// tests that cannot create a GL context.
package reflectiontest

import (
	"fmt"

	"github.com/fosdem/glslbind/lib/reflection"
)

// Program is the scripted result of compiling one vertex source.
type Program struct {
	UniformList []reflection.UniformInfo
	AttribList  []reflection.AttribInfo
	Err         error

	Deleted bool
}

func (p *Program) Uniforms() ([]reflection.UniformInfo, error) {
	return p.UniformList, p.Err
}

// AttributesSorted sorts a copy of AttribList, like a real driver would.
func (p *Program) AttributesSorted() ([]reflection.AttribInfo, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	attribs := append([]reflection.AttribInfo(nil), p.AttribList...)
	reflection.SortAttribs(attribs)
	return attribs, nil
}

func (p *Program) Delete() {
	p.Deleted = true
}

// Reflector looks programs up by vertex shader source.
type Reflector struct {
	Programs map[string]*Program
	// CompileErrors fails compilation for the given vertex sources.
	CompileErrors map[string]error

	Compiled []string
}

func New() *Reflector {
	return &Reflector{
		Programs:      make(map[string]*Program),
		CompileErrors: make(map[string]error),
	}
}

func (r *Reflector) Add(vertSource string, p *Program) {
	r.Programs[vertSource] = p
}

func (r *Reflector) Compile(vertSource, fragSource string) (reflection.Program, error) {
	r.Compiled = append(r.Compiled, vertSource)
	if err, ok := r.CompileErrors[vertSource]; ok {
		return nil, err
	}
	p, ok := r.Programs[vertSource]
	if !ok {
		return nil, fmt.Errorf("no program scripted for vertex source %q", vertSource)
	}
	return p, nil
}
