// Package camera implements the first-person view the player walks with.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera implements a yaw/pitch first-person camera
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	// Euler angles in degrees
	yaw   float32
	pitch float32

	// Camera options
	fov         float32
	rotateSpeed float32

	// Mouse state
	lastX      float64
	lastY      float64
	firstMouse bool

	// Projection
	projection mgl32.Mat4
	width      int
	height     int
}

// New creates a camera at position looking down -Z
func New(position mgl32.Vec3) *Camera {
	c := &Camera{
		position:    position,
		worldUp:     mgl32.Vec3{0, 1, 0},
		front:       mgl32.Vec3{0, 0, -1},
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		fov:         DefaultFOV,
		rotateSpeed: DefaultRotateSpeed,
		firstMouse:  true,
		width:       800,
		height:      600,
	}

	c.updateCameraVectors()
	c.updateProjectionMatrix()

	return c
}

// updateCameraVectors recalculates camera vectors based on Euler angles
func (c *Camera) updateCameraVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()

	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func (c *Camera) updateProjectionMatrix() {
	height := c.height
	if height == 0 {
		height = 1 // minimised window
	}
	aspect := float32(c.width) / float32(height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, Near, Far)
}

// UpdateProjectionMatrix updates the projection matrix with new dimensions
func (c *Camera) UpdateProjectionMatrix(width, height int) {
	c.width = width
	c.height = height
	c.updateProjectionMatrix()
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// FOV returns the vertical field of view in degrees
func (c *Camera) FOV() float32 {
	return c.fov
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns the current camera orientation (yaw, pitch)
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// SetRotation sets the camera rotation angles
func (c *Camera) SetRotation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = clampPitch(pitch)
	c.updateCameraVectors()
}

// Rotation returns the camera orientation as a quaternion. The identity
// quaternion looks down -Z, matching yaw -90 and pitch 0.
func (c *Camera) Rotation() mgl32.Quat {
	heading := mgl32.QuatRotate(mgl32.DegToRad(-(c.yaw - DefaultYaw)), c.worldUp)
	tilt := mgl32.QuatRotate(mgl32.DegToRad(c.pitch), mgl32.Vec3{1, 0, 0})
	return heading.Mul(tilt).Normalize()
}

// LookAt makes the camera look at a specific point
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.position).Normalize()

	c.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(direction.Z()), float64(direction.X()))))
	c.pitch = clampPitch(mgl32.RadToDeg(float32(math.Asin(float64(direction.Y())))))

	c.updateCameraVectors()
}

// FrontVector returns the camera's front direction vector
func (c *Camera) FrontVector() mgl32.Vec3 {
	return c.front
}

// RightVector returns the camera's right direction vector
func (c *Camera) RightVector() mgl32.Vec3 {
	return c.right
}

// MoveForward walks along the view direction flattened onto the ground,
// so looking up or down never changes height.
func (c *Camera) MoveForward(distance float32) {
	forward := c.worldUp.Cross(c.right)
	c.position = c.position.Add(forward.Mul(distance))
}

// MoveRight strafes along the camera's right vector.
func (c *Camera) MoveRight(distance float32) {
	c.position = c.position.Add(c.right.Mul(distance))
}

// HandleMouseMovement updates camera orientation based on mouse movement
func (c *Camera) HandleMouseMovement(xpos, ypos float64) {
	if c.firstMouse {
		c.lastX = xpos
		c.lastY = ypos
		c.firstMouse = false
		return
	}

	xoffset := float32(xpos - c.lastX)
	yoffset := float32(c.lastY - ypos) // Reversed: y ranges bottom to top

	c.lastX = xpos
	c.lastY = ypos

	c.yaw += xoffset * c.rotateSpeed
	c.pitch = clampPitch(c.pitch + yoffset*c.rotateSpeed)

	c.updateCameraVectors()
}

// HandleMouseScroll handles mouse scroll for zoom
func (c *Camera) HandleMouseScroll(yoffset float64) {
	c.fov -= float32(yoffset)

	if c.fov < MinFOV {
		c.fov = MinFOV
	}
	if c.fov > MaxFOV {
		c.fov = MaxFOV
	}

	c.updateProjectionMatrix()
}

// ResetMouseState resets the first-mouse flag for smooth camera control
func (c *Camera) ResetMouseState() {
	c.firstMouse = true
}

func clampPitch(pitch float32) float32 {
	if pitch > MaxPitch {
		return MaxPitch
	}
	if pitch < MinPitch {
		return MinPitch
	}
	return pitch
}
