package input

// Transition is the discrete event a normalizer derives for one key or
// button on one tick.
type Transition uint8

const (
	// None indicates nothing happened this tick.
	None Transition = iota
	// Pushed indicates a down-transition.
	Pushed
	// Repeat indicates the key or button is held and should act again.
	Repeat
	// Released indicates an up-transition.
	Released
)

// String returns a string representation of the transition.
func (t Transition) String() string {
	switch t {
	case Pushed:
		return "pushed"
	case Repeat:
		return "repeat"
	case Released:
		return "released"
	default:
		return "none"
	}
}

// IsActive returns true for transitions that should trigger an action
// (Pushed or Repeat).
func (t Transition) IsActive() bool {
	return t == Pushed || t == Repeat
}
