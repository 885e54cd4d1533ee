package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/catwalk/pkg/input"
)

var movementKeys = map[glfw.Key]input.Key{
	glfw.KeyUp:    input.KeyUp,
	glfw.KeyDown:  input.KeyDown,
	glfw.KeyLeft:  input.KeyLeft,
	glfw.KeyRight: input.KeyRight,
	glfw.KeyW:     input.KeyW,
	glfw.KeyA:     input.KeyA,
	glfw.KeyS:     input.KeyS,
	glfw.KeyD:     input.KeyD,
	glfw.KeySpace: input.KeySpace,
}

// translateKey maps a GLFW key event onto the movement key set. Press and
// Repeat both count as held.
func translateKey(key glfw.Key, action glfw.Action) (input.Key, bool) {
	k, ok := movementKeys[key]
	if !ok {
		return input.KeyUnknown, false
	}
	return k, action != glfw.Release
}
