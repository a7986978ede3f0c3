// Package glreflect implements reflection.Reflector on top of OpenGL.
// A context must be current on the calling thread.
package glreflect

import (
	"fmt"
	"strings"

	"github.com/fosdem/glslbind/lib/glrt"
	"github.com/fosdem/glslbind/lib/reflection"
	"github.com/fosdem/glslbind/lib/shadertype"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type Reflector struct{}

func New() *Reflector {
	return &Reflector{}
}

func (r *Reflector) Compile(vertSource, fragSource string) (reflection.Program, error) {
	shader, err := glrt.CompileShader(vertSource, fragSource, nil)
	if err != nil {
		return nil, err
	}
	return &program{shader: shader}, nil
}

type program struct {
	shader *glrt.Shader
}

// activeVar holds what glGetActiveUniform and glGetActiveAttrib report.
type activeVar struct {
	name  string
	size  int32
	xtype uint32
}

type activeFunc func(program, index uint32, bufSize int32, length *int32, size *int32, xtype *uint32, name *uint8)

func listActive(prog uint32, countParam, maxLenParam uint32, get activeFunc) []activeVar {
	var count, maxLen int32
	gl.GetProgramiv(prog, countParam, &count)
	gl.GetProgramiv(prog, maxLenParam, &maxLen)

	vars := make([]activeVar, 0, count)
	for i := uint32(0); i < uint32(count); i++ {
		var length, size int32
		var xtype uint32
		buf := strings.Repeat("\x00", int(maxLen+1))
		get(prog, i, maxLen+1, &length, &size, &xtype, gl.Str(buf))
		vars = append(vars, activeVar{name: buf[:length], size: size, xtype: xtype})
	}
	return vars
}

// Uniforms reports uniforms in active index order. Built-ins are skipped.
func (p *program) Uniforms() ([]reflection.UniformInfo, error) {
	prog := p.shader.Program()
	var uniforms []reflection.UniformInfo
	for _, v := range listActive(prog, gl.ACTIVE_UNIFORMS, gl.ACTIVE_UNIFORM_MAX_LENGTH, gl.GetActiveUniform) {
		if strings.HasPrefix(v.name, "gl_") {
			continue
		}
		uniforms = append(uniforms, reflection.UniformInfo{
			Name: v.name,
			Type: shadertype.Token(v.xtype),
			Size: v.size,
		})
	}
	if code := gl.GetError(); code != gl.NO_ERROR {
		return nil, fmt.Errorf("could not list active uniforms: GL error 0x%04x", code)
	}
	return uniforms, nil
}

// AttributesSorted reports attributes ordered by location. Built-ins such
// as gl_VertexID have no location and are skipped.
func (p *program) AttributesSorted() ([]reflection.AttribInfo, error) {
	prog := p.shader.Program()
	var attribs []reflection.AttribInfo
	for _, v := range listActive(prog, gl.ACTIVE_ATTRIBUTES, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, gl.GetActiveAttrib) {
		if strings.HasPrefix(v.name, "gl_") {
			continue
		}
		loc := gl.GetAttribLocation(prog, gl.Str(v.name+"\x00"))
		if loc < 0 {
			continue
		}
		attribs = append(attribs, reflection.AttribInfo{
			Name:     v.name,
			Type:     shadertype.Token(v.xtype),
			Size:     v.size,
			Location: loc,
		})
	}
	if code := gl.GetError(); code != gl.NO_ERROR {
		return nil, fmt.Errorf("could not list active attributes: GL error 0x%04x", code)
	}
	reflection.SortAttribs(attribs)
	return attribs, nil
}

func (p *program) Delete() {
	p.shader.Delete()
}
