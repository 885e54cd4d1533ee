package sim

import (
	"github.com/leterax/catwalk/pkg/camera"
	"github.com/leterax/catwalk/pkg/scene"
)

// Chase runs one frame of pursuit for a single pair and reports whether its
// latch was set this frame. A latched plane turns to the camera's orientation
// and closes in, faster the nearer it gets, until it reaches the dead zone.
func Chase(p *scene.MonolithPair, cam *camera.Camera, cfg Config) bool {
	offset := cam.Position().Sub(p.Plane.Position)
	dist := offset.Len()

	latched := false
	if !p.Chasing && dist <= cfg.TriggerRadius {
		p.Chasing = true
		p.Plane.SetColor(cfg.AlertColor)
		latched = true
	}

	if p.Chasing && dist > cfg.DeadZone {
		p.Plane.SetRotation(cam.Rotation())
		p.Plane.Translate(offset.Mul(cfg.ChaseSpeed(dist) / dist))
	}
	return latched
}
