package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Key constants the renderer handles itself; movement keys go to pkg/input.
const (
	KeyEscape = glfw.KeyEscape
)

// Press is the only key action the renderer reacts to itself
const Press = glfw.Press

// Fog and title constants
const (
	FogNear = 0.0
	FogFar  = 550.0

	// Title refresh interval in seconds
	TitleInterval = 1.0

	// Texture repeat for the grass floor
	FloorRepeat = 128
)
