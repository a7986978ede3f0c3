package glrt

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Texture is an RGBA 2D texture. Its handle is what a sampler2D field of
// a generated Uniforms struct holds.
type Texture struct {
	handle uint32
	Width  int
	Height int
}

// NewTexture2D uploads img. Rows are flipped so that texture coordinate
// (0, 0) is the bottom-left corner of the image, as GL expects.
func NewTexture2D(img image.Image) (*Texture, error) {
	pixels := imaging.FlipV(img)
	width := pixels.Bounds().Dx()
	height := pixels.Bounds().Dy()

	t := &Texture{Width: width, Height: height}
	gl.GenTextures(1, &t.handle)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	borderColor := mgl32.Vec4{0, 0, 0, 0}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &borderColor[0])
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)

	var ptr = gl.Ptr(nil)
	if len(pixels.Pix) > 0 {
		ptr = gl.Ptr(&pixels.Pix[0])
	}
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(width),
		int32(height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		ptr,
	)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := checkError("upload texture"); err != nil {
		t.Delete()
		return nil, err
	}
	return t, nil
}

// Handle returns the GL texture name.
func (t *Texture) Handle() uint32 {
	return t.handle
}

func (t *Texture) Delete() {
	if t.handle != 0 {
		gl.DeleteTextures(1, &t.handle)
		t.handle = 0
	}
}
