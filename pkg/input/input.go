// Package input tracks which movement keys are held. It knows nothing about
// the windowing library; the renderer translates its key events into Keys.
package input

// Key is a physical key the movement state cares about.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
)

// State is the set of held movement keys. It is written only by key callbacks
// and read once per frame by the simulation.
type State struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Jump     bool
}

// HandleKey sets or clears the flag bound to key. Keys outside the movement
// set are ignored.
func (s *State) HandleKey(key Key, held bool) {
	switch key {
	case KeyUp, KeyW:
		s.Forward = held
	case KeyLeft, KeyA:
		s.Left = held
	case KeyDown, KeyS:
		s.Backward = held
	case KeyRight, KeyD:
		s.Right = held
	case KeySpace:
		s.Jump = held
	}
}

// Reset releases every key, e.g. when the pointer is released mid-stride.
func (s *State) Reset() {
	*s = State{}
}

// Moving reports whether any horizontal movement key is held.
func (s *State) Moving() bool {
	return s.Forward || s.Backward || s.Left || s.Right
}
