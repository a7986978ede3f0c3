package glrt

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Elem lists the host types a vertex buffer can hold.
type Elem interface {
	float32 | [2]float32 | [3]float32 | [4]float32 | [16]float32 | uint32 | int32
}

// AttribLayout describes how one buffer element maps onto attribute slots.
type AttribLayout struct {
	Components int32
	Type       uint32
	Integer    bool
	// Slots is the number of consecutive attribute locations an element
	// occupies; a mat4 takes four.
	Slots  uint32
	Stride int32
}

// LayoutOf returns the attribute layout of T.
func LayoutOf[T Elem]() AttribLayout {
	var zero T
	l := AttribLayout{Slots: 1, Stride: int32(unsafe.Sizeof(zero))}
	switch any(zero).(type) {
	case float32:
		l.Components, l.Type = 1, gl.FLOAT
	case [2]float32:
		l.Components, l.Type = 2, gl.FLOAT
	case [3]float32:
		l.Components, l.Type = 3, gl.FLOAT
	case [4]float32:
		l.Components, l.Type = 4, gl.FLOAT
	case [16]float32:
		l.Components, l.Type, l.Slots = 4, gl.FLOAT, 4
	case uint32:
		l.Components, l.Type, l.Integer = 1, gl.UNSIGNED_INT, true
	case int32:
		l.Components, l.Type, l.Integer = 1, gl.INT, true
	}
	return l
}

// VertexBuffer is what a vertex array is assembled from.
type VertexBuffer interface {
	BufferHandle() uint32
	Layout() AttribLayout
	Delete()
}

// Buffer is a GL array buffer holding elements of type T.
type Buffer[T Elem] struct {
	handle uint32
	length int
}

// NewBuffer uploads data into a new array buffer with the given usage hint
// (gl.STATIC_DRAW, gl.DYNAMIC_DRAW, ...).
func NewBuffer[T Elem](data []T, usage uint32) (Buffer[T], error) {
	b := Buffer[T]{}
	gl.GenBuffers(1, &b.handle)
	if b.handle == 0 {
		return b, fmt.Errorf("could not allocate buffer")
	}
	if err := b.Update(data, usage); err != nil {
		b.Delete()
		return b, err
	}
	return b, nil
}

// Update replaces the buffer contents.
func (b *Buffer[T]) Update(data []T, usage uint32) error {
	var zero T
	var ptr unsafe.Pointer
	if len(data) > 0 {
		// gl.Ptr rejects pointers to arrays
		ptr = unsafe.Pointer(&data[0])
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.handle)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*int(unsafe.Sizeof(zero)), ptr, usage)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	b.length = len(data)
	return checkError("upload buffer data")
}

func (b *Buffer[T]) BufferHandle() uint32 {
	if b == nil {
		return 0
	}
	return b.handle
}

// Len returns the number of elements last uploaded.
func (b *Buffer[T]) Len() int {
	return b.length
}

func (b *Buffer[T]) Layout() AttribLayout {
	return LayoutOf[T]()
}

func (b *Buffer[T]) Delete() {
	if b != nil && b.handle != 0 {
		gl.DeleteBuffers(1, &b.handle)
		b.handle = 0
		b.length = 0
	}
}
