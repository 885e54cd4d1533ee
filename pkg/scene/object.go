// Package scene builds the corridor: monolith walls, cat planes and the floor.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Shape selects which unit mesh an Object is drawn with.
type Shape int

const (
	ShapeBox Shape = iota
	ShapePlane
)

// Object is a renderable item with a mutable transform and tint.
// Objects are created once during population and live for the whole session.
type Object struct {
	Shape    Shape
	Size     mgl32.Vec3 // scale applied to the unit mesh
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Material Material
}

func newObject(shape Shape, size mgl32.Vec3, mat Material) *Object {
	return &Object{
		Shape:    shape,
		Size:     size,
		Rotation: mgl32.QuatIdent(),
		Material: mat,
	}
}

// Translate moves the object in world space.
func (o *Object) Translate(delta mgl32.Vec3) {
	o.Position = o.Position.Add(delta)
}

// TranslateX moves the object along the world X axis.
func (o *Object) TranslateX(d float32) { o.Position[0] += d }

// TranslateY moves the object along the world Y axis.
func (o *Object) TranslateY(d float32) { o.Position[1] += d }

// TranslateZ moves the object along the world Z axis.
func (o *Object) TranslateZ(d float32) { o.Position[2] += d }

// RotateX rotates the object about its local X axis.
func (o *Object) RotateX(rad float32) {
	o.Rotation = o.Rotation.Mul(mgl32.QuatRotate(rad, mgl32.Vec3{1, 0, 0})).Normalize()
}

// RotateY rotates the object about its local Y axis.
func (o *Object) RotateY(rad float32) {
	o.Rotation = o.Rotation.Mul(mgl32.QuatRotate(rad, mgl32.Vec3{0, 1, 0})).Normalize()
}

// SetRotation replaces the orientation outright.
func (o *Object) SetRotation(q mgl32.Quat) {
	o.Rotation = q
}

// SetColor replaces the material tint.
func (o *Object) SetColor(c mgl32.Vec3) {
	o.Material.Color = c
}

// Facing returns the direction the object's local +Z points in world space.
// For a plane this is the side the image is drawn on.
func (o *Object) Facing() mgl32.Vec3 {
	return o.Rotation.Rotate(mgl32.Vec3{0, 0, 1})
}

// Yaw returns the heading of Facing around the Y axis in radians,
// zero along +Z and positive toward +X.
func (o *Object) Yaw() float32 {
	f := o.Facing()
	return float32(math.Atan2(float64(f.X()), float64(f.Z())))
}

// Model returns the model matrix: translate * rotate * scale.
func (o *Object) Model() mgl32.Mat4 {
	t := mgl32.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z())
	s := mgl32.Scale3D(o.Size.X(), o.Size.Y(), o.Size.Z())
	return t.Mul4(o.Rotation.Mat4()).Mul4(s)
}
