package glrt

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// HasVertexArrayHandle is implemented by every generated vertex array.
type HasVertexArrayHandle interface {
	VertexArrayHandle() uint32
}

// ShaderUniforms lets a renderer upload a generated Uniforms struct
// without knowing its concrete type.
type ShaderUniforms interface {
	UniformArray() []NamedUniform
}

// Drawable gives access to the compiled program behind a generated
// shader wrapper.
type Drawable interface {
	GLShader() *Shader
}

// IsShader ties a generated shader to the vertex array and uniforms types
// generated with it. ShaderTypes is a marker and is never called.
type IsShader[VA HasVertexArrayHandle, U ShaderUniforms] interface {
	Drawable
	ShaderTypes(VA, U)
}

// BelongsToShader is implemented by the vertex arrays generated for S,
// so that a vertex array of one shader cannot be drawn with another.
type BelongsToShader[S any] interface {
	HasVertexArrayHandle
	BelongsToShader(S)
}

// Draw uploads u, binds va and issues a non-indexed draw of count
// vertices. Generated shaders expose a typed Draw method that forwards
// here.
func Draw(s Drawable, va HasVertexArrayHandle, u ShaderUniforms, mode uint32, count int32) error {
	shader := s.GLShader()
	if shader == nil || shader.Program() == 0 {
		return fmt.Errorf("shader is not compiled")
	}
	if err := shader.SetUniforms(u.UniformArray()); err != nil {
		return err
	}
	gl.BindVertexArray(va.VertexArrayHandle())
	gl.DrawArrays(mode, 0, count)
	gl.BindVertexArray(0)
	return checkError("draw")
}
