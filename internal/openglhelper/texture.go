package openglhelper

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // decoders for LoadTexture
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// TextureOptions controls sampling of an uploaded texture.
type TextureOptions struct {
	Repeat  bool // GL_REPEAT instead of GL_CLAMP_TO_EDGE
	Mipmaps bool
}

// Texture is a 2D RGBA texture living on the GPU.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// NewTextureFromImage uploads img as an RGBA texture.
func NewTextureFromImage(img image.Image, opts TextureOptions) (*Texture, error) {
	rgba := ToRGBA(img)
	width := int32(rgba.Rect.Size().X)
	height := int32(rgba.Rect.Size().Y)
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("empty image")
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	wrap := int32(gl.CLAMP_TO_EDGE)
	if opts.Repeat {
		wrap = gl.REPEAT
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)

	minFilter := int32(gl.LINEAR)
	if opts.Mipmaps {
		minFilter = gl.LINEAR_MIPMAP_LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	if opts.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{ID: id, Width: int(width), Height: int(height)}, nil
}

// LoadTexture decodes a PNG or JPEG file and uploads it.
func LoadTexture(path string, opts TextureOptions) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	tex, err := NewTextureFromImage(img, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", path, err)
	}
	return tex, nil
}

// NewSolidTexture creates a 1x1 texture of a single colour.
func NewSolidTexture(r, g, b, a uint8) (*Texture, error) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Pix[0], img.Pix[1], img.Pix[2], img.Pix[3] = r, g, b, a
	return NewTextureFromImage(img, TextureOptions{})
}

// ToRGBA returns img as a tightly packed *image.RGBA anchored at the origin,
// flipped vertically so row 0 is the bottom row GL expects.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	flat := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(flat, flat.Bounds(), img, b.Min, draw.Src)

	rowLen := flat.Stride
	row := make([]byte, rowLen)
	for y := 0; y < b.Dy()/2; y++ {
		top := flat.Pix[y*rowLen : (y+1)*rowLen]
		bottom := flat.Pix[(b.Dy()-1-y)*rowLen : (b.Dy()-y)*rowLen]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
	return flat
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the texture.
func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.ID)
}
