package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// BoxOptions configures NewBox. Zero dimensions fall back to 1.
type BoxOptions struct {
	Width, Height, Depth float32
	Color                *mgl32.Vec3
	Material             *Material // takes precedence over Color
}

// NewBox builds a box object.
func NewBox(opts BoxOptions) *Object {
	mat := boxMaterial(opts)
	size := mgl32.Vec3{
		orDefault(opts.Width, 1),
		orDefault(opts.Height, 1),
		orDefault(opts.Depth, 1),
	}
	return newObject(ShapeBox, size, mat)
}

func boxMaterial(opts BoxOptions) Material {
	switch {
	case opts.Material != nil:
		return *opts.Material
	case opts.Color != nil:
		return *ColorMaterial(*opts.Color)
	default:
		return *ColorMaterial(ColorMonolith)
	}
}

// FloorOptions configures NewFloor. Zero dimensions fall back to 2000.
type FloorOptions struct {
	Width, Height float32
	Color         *mgl32.Vec3
	Material      *Material
}

// NewFloor builds a ground plane lying in the XZ plane, facing up.
func NewFloor(opts FloorOptions) *Object {
	var mat Material
	switch {
	case opts.Material != nil:
		mat = *opts.Material
	case opts.Color != nil:
		mat = *ColorMaterial(*opts.Color)
	default:
		mat = *ColorMaterial(ColorFloor)
	}

	size := mgl32.Vec3{orDefault(opts.Width, 2000), orDefault(opts.Height, 2000), 1}
	floor := newObject(ShapePlane, size, mat)
	floor.RotateX(-math.Pi / 2)
	return floor
}

// NewCatPlane builds a square image plane with a white tint.
func NewCatPlane(size float32, tex TextureID) *Object {
	mat := TextureMaterial(tex)
	if tex == NoTexture {
		mat = ColorMaterial(ColorWhite)
	}
	return newObject(ShapePlane, mgl32.Vec3{size, size, 1}, *mat)
}

func orDefault(v, def float32) float32 {
	if v == 0 {
		return def
	}
	return v
}
