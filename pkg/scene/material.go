package scene

import "github.com/go-gl/mathgl/mgl32"

// TextureID indexes the renderer's texture table.
type TextureID int

// NoTexture marks a flat-colour material.
const NoTexture TextureID = -1

// Scene colours.
var (
	ColorFloor      = HexColor(0x2e1e1b)
	ColorBackground = HexColor(0x085c99)
	ColorFog        = HexColor(0x040002)
	ColorMonolith   = HexColor(0x222222)
	ColorWhite      = HexColor(0xffffff)
)

// Material is an unlit surface: a tint, optionally multiplied by a texture.
type Material struct {
	Color   mgl32.Vec3
	Texture TextureID
	// Repeat scales texture coordinates; zero means {1, 1}.
	Repeat mgl32.Vec2
}

// ColorMaterial returns a flat-colour material.
func ColorMaterial(color mgl32.Vec3) *Material {
	return &Material{Color: color, Texture: NoTexture}
}

// TextureMaterial returns a white-tinted textured material.
func TextureMaterial(tex TextureID) *Material {
	return &Material{Color: ColorWhite, Texture: tex}
}

// Textured reports whether the material samples a texture.
func (m Material) Textured() bool {
	return m.Texture != NoTexture
}

// UVRepeat returns Repeat with the zero value replaced by {1, 1}.
func (m Material) UVRepeat() mgl32.Vec2 {
	if m.Repeat == (mgl32.Vec2{}) {
		return mgl32.Vec2{1, 1}
	}
	return m.Repeat
}

// HexColor converts 0xRRGGBB to 0..1 RGB.
func HexColor(hex uint32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32((hex>>16)&0xff) / 255,
		float32((hex>>8)&0xff) / 255,
		float32(hex&0xff) / 255,
	}
}
