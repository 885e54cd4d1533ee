// Package sim advances the corridor one frame at a time: player motion,
// monolith rise and retract, and cat planes chasing the player.
package sim

import "github.com/go-gl/mathgl/mgl32"

// Config holds every tunable of the frame update.
type Config struct {
	// Phase thresholds in frames. Rising lasts until RiseUntil, Retracting until RetractUntil.
	RiseUntil    int
	RetractUntil int

	RiseStep    float32 // per frame, walls and planes
	RetractStep float32 // per frame, walls only

	Damping      float32 // horizontal velocity decay rate, 1/s
	Acceleration float32 // horizontal impulse per second of held input
	Gravity      float32
	JumpImpulse  float32
	EyeHeight    float32
	MaxStep      float32 // longest frame delta integrated in one update, seconds

	TriggerRadius float32 // distance at which a plane starts chasing
	DeadZone      float32 // a chasing plane stops advancing inside this distance
	MinChaseSpeed float32 // per frame, at TriggerRadius and beyond
	MaxChaseSpeed float32 // per frame, at zero distance
	AlertColor    mgl32.Vec3
}

// DefaultConfig returns the tuning the corridor ships with.
// 480 frames at 0.1 per frame raises a monolith by its full 48 units of height.
func DefaultConfig() Config {
	return Config{
		RiseUntil:    480,
		RetractUntil: 720,

		RiseStep:    0.1,
		RetractStep: 0.2,

		Damping:      20,
		Acceleration: 400,
		Gravity:      98,
		JumpImpulse:  35,
		EyeHeight:    1.8,
		MaxStep:      1.0 / 30,

		TriggerRadius: 30,
		DeadZone:      10,
		MinChaseSpeed: 0.05,
		MaxChaseSpeed: 0.4,
		AlertColor:    mgl32.Vec3{1, 0.15, 0.15},
	}
}

// ChaseSpeed interpolates linearly from MaxChaseSpeed at distance zero down to
// MinChaseSpeed at TriggerRadius, clamped outside that range.
func (c Config) ChaseSpeed(distance float32) float32 {
	t := mgl32.Clamp(distance/c.TriggerRadius, 0, 1)
	return c.MaxChaseSpeed - (c.MaxChaseSpeed-c.MinChaseSpeed)*t
}
