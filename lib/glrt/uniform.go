package glrt

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform is a value that can be uploaded to a uniform location. The set
// of kinds is closed.
type Uniform interface {
	upload(loc int32, st *uploadState)
}

// NamedUniform pairs a GLSL uniform name with its value.
type NamedUniform struct {
	Name  string
	Value Uniform
}

type uploadState struct {
	nextUnit int32
}

type (
	Float         float32
	Vec2          [2]float32
	Vec3          [3]float32
	Vec4          [4]float32
	Mat4x4        [16]float32
	TextureHandle uint32
	Int           int32
)

func (v Float) upload(loc int32, _ *uploadState) { gl.Uniform1f(loc, float32(v)) }
func (v Vec2) upload(loc int32, _ *uploadState)  { gl.Uniform2fv(loc, 1, &v[0]) }
func (v Vec3) upload(loc int32, _ *uploadState)  { gl.Uniform3fv(loc, 1, &v[0]) }
func (v Vec4) upload(loc int32, _ *uploadState)  { gl.Uniform4fv(loc, 1, &v[0]) }
func (v Int) upload(loc int32, _ *uploadState)   { gl.Uniform1i(loc, int32(v)) }

// Mat4x4 is column-major.
func (v Mat4x4) upload(loc int32, _ *uploadState) {
	gl.UniformMatrix4fv(loc, 1, false, &v[0])
}

func (v TextureHandle) upload(loc int32, st *uploadState) {
	unit := st.nextUnit
	st.nextUnit++
	gl.ActiveTexture(uint32(gl.TEXTURE0 + unit))
	gl.BindTexture(gl.TEXTURE_2D, uint32(v))
	gl.Uniform1i(loc, unit)
}

// Mat4x4FromMgl converts an mgl32 matrix. Both are column-major.
func Mat4x4FromMgl(m mgl32.Mat4) [16]float32 { return m }
func Vec2FromMgl(v mgl32.Vec2) [2]float32    { return v }
func Vec3FromMgl(v mgl32.Vec3) [3]float32    { return v }
func Vec4FromMgl(v mgl32.Vec4) [4]float32    { return v }
