package sim

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/catwalk/pkg/camera"
	"github.com/leterax/catwalk/pkg/input"
	"github.com/leterax/catwalk/pkg/scene"
)

const dt = float32(1.0 / 60)

type fixture struct {
	st    *State
	in    *input.State
	cam   *camera.Camera
	pairs []*scene.MonolithPair
}

func newFixture() *fixture {
	cfg := DefaultConfig()
	return &fixture{
		st:    NewState(cfg),
		in:    &input.State{},
		cam:   camera.New(mgl32.Vec3{0, cfg.EyeHeight, 15}),
		pairs: scene.Populate(scene.DefaultLayout(), rand.New(rand.NewSource(1)), nil),
	}
}

func (f *fixture) step() Events {
	return Update(f.st, dt, f.in, f.cam, f.pairs)
}

func (f *fixture) snapshot() (walls, planes []mgl32.Vec3) {
	for _, p := range f.pairs {
		walls = append(walls, p.Wall.Position)
		planes = append(planes, p.Plane.Position)
	}
	return walls, planes
}

func TestRisingBand(t *testing.T) {
	f := newFixture()
	for frame := 0; frame < 480; frame++ {
		walls, planes := f.snapshot()
		ev := f.step()
		require.Equal(t, Rising, ev.Phase, "frame %d", frame)

		for i, p := range f.pairs {
			assert.InDelta(t, 0.1, p.Wall.Position.Y()-walls[i].Y(), 1e-4)
			assert.InDelta(t, 0.1, p.Plane.Position.Y()-planes[i].Y(), 1e-4)
			assert.Equal(t, walls[i].X(), p.Wall.Position.X())
			assert.Equal(t, planes[i].Z(), p.Plane.Position.Z())
		}
	}

	// 48 units of rise lands the walls with their base on the floor.
	assert.InDelta(t, 23, f.pairs[0].Wall.Position.Y(), 0.01)
	assert.InDelta(t, 23, f.pairs[0].Plane.Position.Y(), 0.01)
}

func TestRetractingBand(t *testing.T) {
	f := newFixture()
	f.st.Counter = 480
	for frame := 480; frame < 720; frame++ {
		walls, planes := f.snapshot()
		ev := f.step()
		require.Equal(t, Retracting, ev.Phase, "frame %d", frame)

		for i, p := range f.pairs {
			assert.InDelta(t, -0.2, p.Wall.Position.Y()-walls[i].Y(), 1e-4)
			assert.Equal(t, planes[i], p.Plane.Position)
		}
	}
	assert.False(t, f.st.TurnHeads)
}

func TestNoChaseBeforeChasePhase(t *testing.T) {
	f := newFixture()
	near := f.pairs[2].Plane
	standBy := func() {
		f.cam.SetPosition(near.Position.Add(mgl32.Vec3{5, 0, 0}))
	}

	for frame := 0; frame < 720; frame++ {
		standBy()
		ev := f.step()
		require.NotEqual(t, ChaseEnabled, ev.Phase, "frame %d", frame)
		require.Empty(t, ev.Latched, "frame %d", frame)
		for _, p := range f.pairs {
			require.False(t, p.Chasing, "pair %d at frame %d", p.Index, frame)
		}
	}
	assert.Equal(t, scene.ColorWhite, near.Material.Color)

	// The same spot latches on the first chase frame.
	standBy()
	ev := f.step()
	assert.Equal(t, ChaseEnabled, ev.Phase)
	assert.Equal(t, []int{2}, ev.Latched)
	assert.True(t, f.pairs[2].Chasing)
}

func TestPhaseTransitionsAreForwardOnly(t *testing.T) {
	f := newFixture()
	var changes []Phase
	for i := 0; i < 800; i++ {
		if ev := f.step(); ev.PhaseChanged {
			changes = append(changes, ev.Phase)
		}
		if f.st.Counter == 481 {
			assert.Equal(t, Retracting, f.st.Phase)
		}
	}
	assert.Equal(t, []Phase{Retracting, ChaseEnabled}, changes)
	assert.True(t, f.st.TurnHeads)

	// Rewinding the counter never reopens an earlier band.
	f.st.Counter = 0
	walls, _ := f.snapshot()
	ev := f.step()
	assert.Equal(t, ChaseEnabled, ev.Phase)
	assert.False(t, ev.PhaseChanged)
	assert.True(t, f.st.TurnHeads)
	for i, p := range f.pairs {
		assert.Equal(t, walls[i], p.Wall.Position)
	}
}

func TestPhaseFor(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, Rising, PhaseFor(0, cfg))
	assert.Equal(t, Rising, PhaseFor(479, cfg))
	assert.Equal(t, Retracting, PhaseFor(480, cfg))
	assert.Equal(t, Retracting, PhaseFor(719, cfg))
	assert.Equal(t, ChaseEnabled, PhaseFor(720, cfg))
	assert.Equal(t, "chase", ChaseEnabled.String())
}

func chasePair(at mgl32.Vec3) *scene.MonolithPair {
	plane := scene.NewCatPlane(24, scene.NoTexture)
	plane.Position = at
	plane.RotateY(mgl32.DegToRad(90))
	return &scene.MonolithPair{Index: 3, Plane: plane, Wall: scene.NewBox(scene.BoxOptions{})}
}

func TestChaseLatchesWithinTriggerRadius(t *testing.T) {
	cfg := DefaultConfig()
	cam := camera.New(mgl32.Vec3{0, 1.8, 0})

	far := chasePair(mgl32.Vec3{0, 1.8, -31})
	assert.False(t, Chase(far, cam, cfg))
	assert.False(t, far.Chasing)
	assert.Equal(t, mgl32.Vec3{0, 1.8, -31}, far.Plane.Position)
	assert.Equal(t, scene.ColorWhite, far.Plane.Material.Color)

	near := chasePair(mgl32.Vec3{0, 1.8, -30})
	assert.True(t, Chase(near, cam, cfg))
	assert.True(t, near.Chasing)
	assert.Equal(t, cfg.AlertColor, near.Plane.Material.Color)

	// The recolour happens once; later frames leave the tint alone.
	near.Plane.SetColor(scene.ColorWhite)
	for i := 0; i < 5; i++ {
		assert.False(t, Chase(near, cam, cfg))
		assert.True(t, near.Chasing)
	}
	assert.Equal(t, scene.ColorWhite, near.Plane.Material.Color)

	// Retreating past the trigger radius does not clear the latch.
	cam.SetPosition(mgl32.Vec3{0, 1.8, 500})
	Chase(near, cam, cfg)
	assert.True(t, near.Chasing)
}

func TestChaseClosesIn(t *testing.T) {
	cfg := DefaultConfig()
	cam := camera.New(mgl32.Vec3{0, 1.8, 0})
	cam.SetRotation(30, -10)

	for _, d := range []float32{10.5, 15, 25, 29.9} {
		p := chasePair(mgl32.Vec3{d, 1.8, 0})
		p.Chasing = true

		before := cam.Position().Sub(p.Plane.Position).Len()
		Chase(p, cam, cfg)
		after := cam.Position().Sub(p.Plane.Position).Len()

		moved := before - after
		assert.Greater(t, moved, float32(0), "distance %v", d)
		assert.GreaterOrEqual(t, moved, cfg.MinChaseSpeed-1e-4)
		assert.LessOrEqual(t, moved, cfg.MaxChaseSpeed+1e-4)
		assert.InDelta(t, cfg.ChaseSpeed(d), moved, 1e-4)
		assert.True(t, p.Plane.Rotation.ApproxEqualThreshold(cam.Rotation(), 1e-5))
	}
}

func TestChaseStopsInDeadZone(t *testing.T) {
	cfg := DefaultConfig()
	cam := camera.New(mgl32.Vec3{0, 1.8, 0})
	p := chasePair(mgl32.Vec3{0, 1.8, -8})
	rot := p.Plane.Rotation

	assert.True(t, Chase(p, cam, cfg), "still latches inside the dead zone")
	assert.Equal(t, mgl32.Vec3{0, 1.8, -8}, p.Plane.Position)
	assert.Equal(t, rot, p.Plane.Rotation)
}

func TestChaseSpeed(t *testing.T) {
	cfg := DefaultConfig()
	assert.InDelta(t, cfg.MaxChaseSpeed, cfg.ChaseSpeed(0), 1e-6)
	assert.InDelta(t, cfg.MinChaseSpeed, cfg.ChaseSpeed(30), 1e-6)
	assert.InDelta(t, cfg.MinChaseSpeed, cfg.ChaseSpeed(300), 1e-6)
	assert.InDelta(t, (cfg.MinChaseSpeed+cfg.MaxChaseSpeed)/2, cfg.ChaseSpeed(15), 1e-6)
	assert.Greater(t, cfg.ChaseSpeed(12), cfg.ChaseSpeed(20))
}

func TestUpdateReportsLatchedPairs(t *testing.T) {
	f := newFixture()
	f.st.Counter = 720
	// Stand right in front of the second row's left plane once the planes are up.
	for _, p := range f.pairs {
		p.Plane.Position[1] = 23
	}
	target := f.pairs[2].Plane.Position
	f.cam.SetPosition(mgl32.Vec3{target.X() + 20, 1.8, target.Z()})

	ev := f.step()
	assert.Contains(t, ev.Latched, 2)
	assert.True(t, f.pairs[2].Chasing)

	ev = f.step()
	assert.NotContains(t, ev.Latched, 2)
}

func TestVelocityDecaysGeometrically(t *testing.T) {
	f := newFixture()
	f.st.Velocity = mgl32.Vec3{10, 0, -10}
	factor := 1 - f.st.Config.Damping*dt

	want := float32(10)
	for i := 0; i < 30; i++ {
		f.step()
		want *= factor
		assert.InDelta(t, want, f.st.Velocity.X(), 1e-4)
		assert.InDelta(t, -want, f.st.Velocity.Z(), 1e-4)
		assert.NotZero(t, f.st.Velocity.X())
	}
}

func TestForwardInputMovesCamera(t *testing.T) {
	f := newFixture()
	f.in.Forward = true
	start := f.cam.Position()

	f.step()

	assert.InDelta(t, -f.st.Config.Acceleration*dt, f.st.Velocity.Z(), 1e-4)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, f.st.Direction)
	assert.Less(t, f.cam.Position().Z(), start.Z(), "camera faces -Z")
	assert.InDelta(t, start.X(), f.cam.Position().X(), 1e-6)
}

func TestDiagonalInputIsNormalized(t *testing.T) {
	f := newFixture()
	f.in.Forward = true
	f.in.Right = true

	f.step()

	assert.InDelta(t, 1, f.st.Direction.Len(), 1e-6)
	assert.InDelta(t, f.st.Direction.X(), f.st.Direction.Z(), 1e-6)
	assert.Greater(t, f.cam.Position().X(), float32(0))
}

func TestOpposingKeysCancel(t *testing.T) {
	f := newFixture()
	f.in.Left = true
	f.in.Right = true

	f.step()

	assert.Equal(t, mgl32.Vec3{}, f.st.Direction)
	assert.Zero(t, f.st.Velocity.X())
}

func TestJumpOnlyWhenReady(t *testing.T) {
	grounded := newFixture()
	cfg := grounded.st.Config
	grounded.in.Jump = true
	ev := grounded.step()
	assert.True(t, ev.Jumped)
	assert.False(t, grounded.st.CanJump)
	assert.InDelta(t, cfg.JumpImpulse-cfg.Gravity*dt, grounded.st.Velocity.Y(), 1e-4)
	assert.Greater(t, grounded.cam.Position().Y(), cfg.EyeHeight)

	// Still airborne: holding or re-pressing jump changes nothing.
	vy := grounded.st.Velocity.Y()
	grounded.in.Jump = false
	grounded.step()
	grounded.in.Jump = true
	ev = grounded.step()
	assert.False(t, ev.Jumped)
	assert.InDelta(t, vy-2*cfg.Gravity*dt, grounded.st.Velocity.Y(), 1e-3)
}

func TestFloorClampLandsOncePerDescent(t *testing.T) {
	f := newFixture()
	eye := f.st.Config.EyeHeight

	ev := f.step()
	assert.False(t, ev.Landed, "standing still is not a landing")
	assert.Equal(t, eye, f.cam.Position().Y())
	assert.Zero(t, f.st.Velocity.Y())

	f.in.Jump = true
	f.step()
	f.in.Jump = false

	landings := 0
	for i := 0; i < 200; i++ {
		ev := f.step()
		assert.GreaterOrEqual(t, f.cam.Position().Y(), eye)
		if ev.Landed {
			landings++
			assert.True(t, f.st.CanJump)
			assert.Zero(t, f.st.Velocity.Y())
		}
	}
	assert.Equal(t, 1, landings)
}

func TestLongFramesAreClamped(t *testing.T) {
	f := newFixture()
	f.st.Velocity = mgl32.Vec3{10, 0, 0}

	Update(f.st, 5, f.in, f.cam, f.pairs)

	factor := 1 - f.st.Config.Damping*f.st.Config.MaxStep
	assert.InDelta(t, 10*factor, f.st.Velocity.X(), 1e-4)
}
