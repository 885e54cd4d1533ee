package scene

import (
	"math"
	"math/rand"
)

// Side is the corridor side a monolith stands on.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Sign is the lateral direction of the side: -1 for Left, +1 for Right.
func (s Side) Sign() float32 {
	if s == Left {
		return -1
	}
	return 1
}

// Yaw turns a plane on this side to face the corridor centreline.
func (s Side) Yaw() float32 {
	return -s.Sign() * math.Pi / 2
}

// Layout holds the corridor placement parameters.
type Layout struct {
	Rows        int
	Spacing     float32 // longitudinal distance between rows
	StartZ      float32 // z of row 0
	HalfWidth   float32 // lateral distance from the centreline to a wall
	WallWidth   float32
	WallHeight  float32
	WallDepth   float32
	WallStartY  float32
	PlaneSize   float32
	PlaneStartY float32
	PlaneInset  float32 // how far in front of the wall centre the plane hangs
}

// DefaultLayout returns the fifteen-row corridor.
func DefaultLayout() Layout {
	return Layout{
		Rows:        15,
		Spacing:     48,
		StartZ:      48,
		HalfWidth:   48,
		WallWidth:   2,
		WallHeight:  48,
		WallDepth:   36,
		WallStartY:  -25,
		PlaneSize:   24,
		PlaneStartY: -25,
		PlaneInset:  1.1,
	}
}

// RowZ returns the longitudinal position of row i.
func (l Layout) RowZ(i int) float32 {
	return l.StartZ - l.Spacing*float32(i)
}

// MonolithPair ties a wall to the cat plane hung on it and that plane's chase latch.
type MonolithPair struct {
	Index   int
	Side    Side
	Wall    *Object
	Plane   *Object
	Chasing bool
}

// Populate builds a left and a right pair for every row, in that order.
// Textures are drawn uniformly from textures with rng; an empty set yields blank planes.
func Populate(layout Layout, rng *rand.Rand, textures []TextureID) []*MonolithPair {
	pairs := make([]*MonolithPair, 0, layout.Rows*2)
	for row := 0; row < layout.Rows; row++ {
		for _, side := range []Side{Left, Right} {
			tex := NoTexture
			if len(textures) > 0 {
				tex = textures[rng.Intn(len(textures))]
			}
			pairs = append(pairs, newMonolith(layout, len(pairs), row, side, tex))
		}
	}
	return pairs
}

func newMonolith(layout Layout, index, row int, side Side, tex TextureID) *MonolithPair {
	z := layout.RowZ(row)
	sign := side.Sign()

	wall := NewBox(BoxOptions{
		Width:  layout.WallWidth,
		Height: layout.WallHeight,
		Depth:  layout.WallDepth,
	})
	wall.TranslateX(sign * layout.HalfWidth)
	wall.TranslateY(layout.WallStartY)
	wall.TranslateZ(z)

	plane := NewCatPlane(layout.PlaneSize, tex)
	plane.TranslateX(sign * (layout.HalfWidth - layout.PlaneInset))
	plane.TranslateY(layout.PlaneStartY)
	plane.TranslateZ(z)
	plane.RotateY(side.Yaw())

	return &MonolithPair{
		Index: index,
		Side:  side,
		Wall:  wall,
		Plane: plane,
	}
}

// Scene is everything the renderer draws.
type Scene struct {
	Floor *Object
	Pairs []*MonolithPair
}

// New populates the corridor and lays the floor.
func New(layout Layout, rng *rand.Rand, textures []TextureID, floor *Material) *Scene {
	return &Scene{
		Floor: NewFloor(FloorOptions{Material: floor}),
		Pairs: Populate(layout, rng, textures),
	}
}

// Objects returns every drawable object, floor first.
func (s *Scene) Objects() []*Object {
	objs := make([]*Object, 0, 1+len(s.Pairs)*2)
	objs = append(objs, s.Floor)
	for _, p := range s.Pairs {
		objs = append(objs, p.Wall, p.Plane)
	}
	return objs
}

// Chasing counts pairs whose chase latch is set.
func (s *Scene) Chasing() int {
	n := 0
	for _, p := range s.Pairs {
		if p.Chasing {
			n++
		}
	}
	return n
}
