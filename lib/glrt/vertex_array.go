package glrt

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexArray binds each buffer to the attribute location it was given.
// A buffer whose elements take several slots (mat4) also fills the
// locations following its own.
type VertexArray struct {
	handle  uint32
	buffers []VertexBuffer
	owned   bool
}

// BoundBuffer is a buffer together with its attribute location.
type BoundBuffer struct {
	Location uint32
	Buffer   VertexBuffer
}

func At(location uint32, b VertexBuffer) BoundBuffer {
	return BoundBuffer{Location: location, Buffer: b}
}

// NewVertexArray takes ownership of buffers: Delete releases them too.
func NewVertexArray(buffers ...BoundBuffer) (*VertexArray, error) {
	return newVertexArray(buffers, true)
}

// NewVertexArrayTmp borrows buffers: the caller keeps them alive for as
// long as the vertex array is used and deletes them itself.
func NewVertexArrayTmp(buffers ...BoundBuffer) (*VertexArray, error) {
	return newVertexArray(buffers, false)
}

func checkBuffers(buffers []BoundBuffer) error {
	used := make(map[uint32]int)
	for i, bb := range buffers {
		if bb.Buffer == nil || bb.Buffer.BufferHandle() == 0 {
			return fmt.Errorf("buffer %d is not allocated", i)
		}
		for slot := uint32(0); slot < bb.Buffer.Layout().Slots; slot++ {
			loc := bb.Location + slot
			if other, ok := used[loc]; ok {
				return fmt.Errorf("buffers %d and %d both use location %d", other, i, loc)
			}
			used[loc] = i
		}
	}
	return nil
}

func newVertexArray(buffers []BoundBuffer, owned bool) (*VertexArray, error) {
	if err := checkBuffers(buffers); err != nil {
		return nil, err
	}

	va := &VertexArray{owned: owned}
	gl.GenVertexArrays(1, &va.handle)
	if va.handle == 0 {
		return nil, fmt.Errorf("could not allocate vertex array")
	}
	gl.BindVertexArray(va.handle)

	for _, bb := range buffers {
		b := bb.Buffer
		va.buffers = append(va.buffers, b)
		l := b.Layout()
		gl.BindBuffer(gl.ARRAY_BUFFER, b.BufferHandle())
		for slot := uint32(0); slot < l.Slots; slot++ {
			location := bb.Location + slot
			offset := uintptr(slot) * uintptr(l.Stride) / uintptr(l.Slots)
			gl.EnableVertexAttribArray(location)
			if l.Integer {
				gl.VertexAttribIPointerWithOffset(location, l.Components, l.Type, l.Stride, offset)
			} else {
				gl.VertexAttribPointerWithOffset(location, l.Components, l.Type, false, l.Stride, offset)
			}
		}
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	if err := checkError("set up vertex array"); err != nil {
		gl.DeleteVertexArrays(1, &va.handle)
		return nil, err
	}
	return va, nil
}

func (va *VertexArray) VertexArrayHandle() uint32 {
	return va.handle
}

// Owned reports whether Delete also releases the buffers.
func (va *VertexArray) Owned() bool {
	return va.owned
}

func (va *VertexArray) Delete() {
	if va.handle != 0 {
		gl.DeleteVertexArrays(1, &va.handle)
		va.handle = 0
	}
	if va.owned {
		for _, b := range va.buffers {
			b.Delete()
		}
	}
	va.buffers = nil
}
