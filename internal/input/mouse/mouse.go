package mouse

import (
	"github.com/dshills/fieldkit/internal/input"
	"github.com/dshills/fieldkit/internal/input/key"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonBack is the back navigation button (mouse button 4).
	ButtonBack
	// ButtonForward is the forward navigation button (mouse button 5).
	ButtonForward

	// NumButtons is the size of the tracked button space.
	NumButtons = int(ButtonForward) + 1
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	default:
		return "none"
	}
}

// Valid reports whether b is a tracked button.
func (b Button) Valid() bool {
	return b != ButtonNone && int(b) < NumButtons
}

// Position represents a screen coordinate.
type Position struct {
	X int
	Y int
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Distance returns the Manhattan distance (|dx| + |dy|) between two positions.
func (p Position) Distance(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// State is one tick's raw down/up state for every button.
type State [NumButtons]bool

// Set marks b as down or up. Untracked buttons are ignored.
func (s *State) Set(b Button, down bool) {
	if b.Valid() {
		s[b] = down
	}
}

// IsDown reports whether b is down.
func (s *State) IsDown(b Button) bool {
	return b.Valid() && s[b]
}

// Event is a normalized transition for one button on one tick.
type Event struct {
	// Button is the mouse button involved.
	Button Button

	// Transition is what happened to the button this tick.
	Transition input.Transition

	// Position is the pointer position sampled on the same tick.
	Position Position

	// Modifiers are any keyboard modifiers held during the tick.
	Modifiers key.Modifier
}

// Channel is the press state of a single button.
type Channel struct {
	down bool
}

// Update feeds one tick of raw state and returns the derived transition.
func (c *Channel) Update(rawDown bool) input.Transition {
	prev := c.down
	c.down = rawDown
	switch {
	case rawDown && !prev:
		return input.Pushed
	case rawDown:
		return input.Repeat
	case prev:
		return input.Released
	default:
		return input.None
	}
}

// IsDown reports whether the button was down on the last tick.
func (c *Channel) IsDown() bool {
	return c.down
}

// Normalizer owns one Channel per tracked button.
//
// Normalizer is not safe for concurrent use; it is driven once per tick
// from the UI loop.
type Normalizer struct {
	channels [NumButtons]Channel
}

// NewNormalizer creates a normalizer with every button up.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Update feeds one tick of raw state for a single button.
// Untracked buttons always yield input.None.
func (n *Normalizer) Update(b Button, rawDown bool) input.Transition {
	if !b.Valid() {
		return input.None
	}
	return n.channels[b].Update(rawDown)
}

// IsDown reports whether b was down on the last tick.
func (n *Normalizer) IsDown(b Button) bool {
	return b.Valid() && n.channels[b].IsDown()
}

// Reset marks every button as up without emitting Released.
func (n *Normalizer) Reset() {
	n.channels = [NumButtons]Channel{}
}

// Step feeds one tick of raw state for every button and returns the
// non-None transitions in button order.
func (n *Normalizer) Step(state *State, pos Position, mods key.Modifier) []Event {
	var events []Event
	for i := 1; i < NumButtons; i++ {
		b := Button(i)
		tr := n.channels[b].Update(state[b])
		if tr != input.None {
			events = append(events, Event{
				Button:     b,
				Transition: tr,
				Position:   pos,
				Modifiers:  mods,
			})
		}
	}
	return events
}
