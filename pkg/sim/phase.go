package sim

// Phase is the stage of the corridor animation. Phases only move forward.
type Phase int

const (
	Rising Phase = iota
	Retracting
	ChaseEnabled
)

func (p Phase) String() string {
	switch p {
	case Rising:
		return "rising"
	case Retracting:
		return "retracting"
	case ChaseEnabled:
		return "chase"
	default:
		return "unknown"
	}
}

// PhaseFor maps a frame counter onto its phase band.
func PhaseFor(counter int, cfg Config) Phase {
	switch {
	case counter < cfg.RiseUntil:
		return Rising
	case counter < cfg.RetractUntil:
		return Retracting
	default:
		return ChaseEnabled
	}
}
