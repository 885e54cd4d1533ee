package camera

// Camera constants
const (
	DefaultRotateSpeed = 0.1

	// Default orientation
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0

	// Field of view
	DefaultFOV = 75.0
	MinFOV     = 1.0
	MaxFOV     = DefaultFOV

	// Clip planes
	Near = 0.1
	Far  = 1000.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0
)
