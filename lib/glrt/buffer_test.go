package glrt

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestLayoutOf(t *testing.T) {
	assert.Equal(t, AttribLayout{Components: 1, Type: gl.FLOAT, Slots: 1, Stride: 4}, LayoutOf[float32]())
	assert.Equal(t, AttribLayout{Components: 3, Type: gl.FLOAT, Slots: 1, Stride: 12}, LayoutOf[[3]float32]())
	assert.Equal(t, AttribLayout{Components: 4, Type: gl.FLOAT, Slots: 4, Stride: 64}, LayoutOf[[16]float32]())
	assert.Equal(t, AttribLayout{Components: 1, Type: gl.INT, Integer: true, Slots: 1, Stride: 4}, LayoutOf[int32]())
	assert.Equal(t, AttribLayout{Components: 1, Type: gl.UNSIGNED_INT, Integer: true, Slots: 1, Stride: 4}, LayoutOf[uint32]())
}

func TestBufferLayoutMatchesElem(t *testing.T) {
	var b Buffer[[2]float32]
	assert.Equal(t, LayoutOf[[2]float32](), b.Layout())
	assert.Zero(t, b.BufferHandle())
	assert.Zero(t, b.Len())
}

func TestMglConversions(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3)
	converted := Mat4x4FromMgl(m)
	// column-major: translation lives in elements 12..14
	assert.Equal(t, float32(1), converted[12])
	assert.Equal(t, float32(2), converted[13])
	assert.Equal(t, float32(3), converted[14])

	assert.Equal(t, [3]float32{1, 2, 3}, Vec3FromMgl(mgl32.Vec3{1, 2, 3}))
	assert.Equal(t, [2]float32{4, 5}, Vec2FromMgl(mgl32.Vec2{4, 5}))
	assert.Equal(t, [4]float32{6, 7, 8, 9}, Vec4FromMgl(mgl32.Vec4{6, 7, 8, 9}))
}

func TestCompileErrorMessage(t *testing.T) {
	err := &CompileError{Stage: "compile vertex shader", Log: "0:1: syntax error\n\x00"}
	assert.Equal(t, "failed to compile vertex shader: 0:1: syntax error", err.Error())
}

func TestVertexArrayRejectsMissingBuffers(t *testing.T) {
	var tmp struct {
		APos *Buffer[[3]float32]
	}
	_, err := NewVertexArrayTmp(At(0, tmp.APos))
	assert.EqualError(t, err, "buffer 0 is not allocated")

	var unallocated Buffer[float32]
	_, err = NewVertexArray(At(0, &unallocated))
	assert.EqualError(t, err, "buffer 0 is not allocated")

	_, err = NewVertexArray(At(1, nil))
	assert.EqualError(t, err, "buffer 0 is not allocated")
}

func TestNilBufferIsSafe(t *testing.T) {
	var b *Buffer[[3]float32]
	assert.Zero(t, b.BufferHandle())
	assert.NotPanics(t, b.Delete)
}

func TestCheckBuffersOverlap(t *testing.T) {
	model := Buffer[[16]float32]{handle: 1}
	uv := Buffer[[2]float32]{handle: 2}

	assert.NoError(t, checkBuffers([]BoundBuffer{At(0, &model), At(4, &uv)}))
	assert.EqualError(t, checkBuffers([]BoundBuffer{At(0, &model), At(2, &uv)}),
		"buffers 0 and 1 both use location 2")
}
