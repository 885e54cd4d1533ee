package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/catwalk/pkg/camera"
	"github.com/leterax/catwalk/pkg/input"
	"github.com/leterax/catwalk/pkg/scene"
)

// State is everything the frame update carries between frames.
type State struct {
	Config Config

	// Counter counts frames spent under player control.
	Counter int
	Phase   Phase
	// TurnHeads latches once the chase phase is reached and never clears.
	TurnHeads bool

	Velocity  mgl32.Vec3 // x strafe, y vertical, z forward (negative is forward)
	Direction mgl32.Vec3 // normalized intended direction from held keys
	CanJump   bool
}

// NewState returns a player standing on the floor with the monoliths buried.
func NewState(cfg Config) *State {
	return &State{
		Config:  cfg,
		Phase:   Rising,
		CanJump: true,
	}
}

// Events reports what changed during one Update, for logging and sound.
type Events struct {
	Phase        Phase
	PhaseChanged bool
	Latched      []int // indices of pairs that started chasing this frame
	Jumped       bool
	Landed       bool
}

// Update advances one frame. It runs only while the pointer is captured.
func Update(st *State, dt float32, in *input.State, cam *camera.Camera, pairs []*scene.MonolithPair) Events {
	ev := Events{PhaseChanged: st.advancePhase()}
	ev.Phase = st.Phase

	cfg := st.Config
	switch st.Phase {
	case Rising:
		for _, p := range pairs {
			p.Wall.TranslateY(cfg.RiseStep)
			p.Plane.TranslateY(cfg.RiseStep)
		}
	case Retracting:
		for _, p := range pairs {
			p.Wall.TranslateY(-cfg.RetractStep)
		}
	case ChaseEnabled:
		for _, p := range pairs {
			if Chase(p, cam, cfg) {
				ev.Latched = append(ev.Latched, p.Index)
			}
		}
	}
	st.Counter++

	st.move(clampStep(dt, cfg.MaxStep), in, cam, &ev)
	return ev
}

// advancePhase moves the phase forward to match the counter and reports a change.
func (st *State) advancePhase() bool {
	next := PhaseFor(st.Counter, st.Config)
	if next <= st.Phase {
		return false
	}
	st.Phase = next
	if next == ChaseEnabled {
		st.TurnHeads = true
	}
	return true
}

func (st *State) move(dt float32, in *input.State, cam *camera.Camera, ev *Events) {
	cfg := st.Config
	v := &st.Velocity

	v[0] -= v[0] * cfg.Damping * dt
	v[2] -= v[2] * cfg.Damping * dt

	st.Direction = mgl32.Vec3{axis(in.Right, in.Left), 0, axis(in.Forward, in.Backward)}
	if st.Direction.Len() > 0 {
		st.Direction = st.Direction.Normalize()
	}

	if in.Forward || in.Backward {
		v[2] -= st.Direction.Z() * cfg.Acceleration * dt
	}
	if in.Left || in.Right {
		v[0] -= st.Direction.X() * cfg.Acceleration * dt
	}

	v[1] -= cfg.Gravity * dt
	if in.Jump && st.CanJump {
		v[1] += cfg.JumpImpulse
		st.CanJump = false
		ev.Jumped = true
	}

	cam.MoveRight(-v[0] * dt)
	cam.MoveForward(-v[2] * dt)

	pos := cam.Position()
	pos[1] += v[1] * dt
	if pos[1] < cfg.EyeHeight {
		v[1] = 0
		pos[1] = cfg.EyeHeight
		ev.Landed = !st.CanJump
		st.CanJump = true
	}
	cam.SetPosition(pos)
}

func axis(positive, negative bool) float32 {
	var a float32
	if positive {
		a++
	}
	if negative {
		a--
	}
	return a
}

func clampStep(dt, limit float32) float32 {
	if dt < 0 {
		return 0
	}
	if limit > 0 && dt > limit {
		return limit
	}
	return dt
}
