package glyphanim

// State is the lifecycle state of an Animator.
type State int

const (
	// Idle: no path, nothing presented.
	Idle State = iota
	// Primed: path built, clock parked at zero, ready to be scrubbed.
	Primed
	// Playing: the clock driver advances the timeline.
	Playing
	// Frozen: clock halted, path and last frame retained.
	Frozen
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Primed:
		return "Primed"
	case Playing:
		return "Playing"
	case Frozen:
		return "Frozen"
	default:
		return "Unknown"
	}
}
