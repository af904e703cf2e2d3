package key

import (
	"time"

	"github.com/dshills/fieldkit/internal/input"
)

// DefaultInitialDelay is how long a key must be held before it repeats.
const DefaultInitialDelay = 300 * time.Millisecond

// notDown marks a channel whose key was up on the previous tick.
const notDown time.Duration = -1

// Config configures key repeat timing.
type Config struct {
	// InitialDelay gates the first repeat after a press.
	InitialDelay time.Duration

	// RepeatInterval gates every repeat after the first. Zero means
	// InitialDelay gates all repeats.
	RepeatInterval time.Duration
}

// DefaultConfig returns the default repeat timing.
func DefaultConfig() Config {
	return Config{
		InitialDelay: DefaultInitialDelay,
	}
}

// gate returns the hold time required before the next repeat.
func (c Config) gate(repeating bool) time.Duration {
	if repeating && c.RepeatInterval > 0 {
		return c.RepeatInterval
	}
	return c.InitialDelay
}

// Channel is the debounce state of a single key.
// The zero value is not ready for use; call NewChannel.
type Channel struct {
	held      time.Duration
	repeating bool
}

// NewChannel returns a channel for a key that is not down.
func NewChannel() Channel {
	return Channel{held: notDown}
}

// Update feeds one tick of raw state and returns the derived transition.
// Non-positive elapsed values never move the hold timer.
func (c *Channel) Update(rawDown bool, elapsed time.Duration, cfg Config) input.Transition {
	if !rawDown {
		tr := input.None
		if c.held >= 0 {
			tr = input.Released
		}
		c.held = notDown
		c.repeating = false
		return tr
	}

	var tr input.Transition
	switch {
	case c.held < 0:
		tr = input.Pushed
		c.held = 0
		c.repeating = false
	case c.held < cfg.gate(c.repeating):
		tr = input.None
	default:
		tr = input.Repeat
		c.held = 0
		c.repeating = true
	}

	if elapsed > 0 {
		c.held += elapsed
	}
	return tr
}

// IsDown reports whether the key was down on the last tick.
func (c *Channel) IsDown() bool {
	return c.held >= 0
}

// Held returns the time accumulated since the key went down or last
// repeated. ok is false when the key is not down.
func (c *Channel) Held() (d time.Duration, ok bool) {
	if c.held < 0 {
		return 0, false
	}
	return c.held, true
}

// Normalizer owns one Channel for every code in the key-code space.
//
// Normalizer is not safe for concurrent use; it is driven once per tick
// from the UI loop.
type Normalizer struct {
	config   Config
	channels [NumCodes]Channel
	other    rune
}

// NewNormalizer creates a normalizer with every key up.
func NewNormalizer(config Config) *Normalizer {
	n := &Normalizer{config: config}
	n.Reset()
	return n
}

// Config returns the repeat timing.
func (n *Normalizer) Config() Config {
	return n.config
}

// SetConfig replaces the repeat timing. Held keys keep their timers.
func (n *Normalizer) SetConfig(config Config) {
	n.config = config
}

// Reset marks every key as up without emitting Released.
func (n *Normalizer) Reset() {
	for i := range n.channels {
		n.channels[i] = NewChannel()
	}
	n.other = 0
}

// Update feeds one tick of raw state for a single code.
// Invalid codes always yield input.None.
func (n *Normalizer) Update(c Code, rawDown bool, elapsed time.Duration) input.Transition {
	if !c.Valid() {
		return input.None
	}
	return n.channels[c].Update(rawDown, elapsed, n.config)
}

// IsDown reports whether c was down on the last tick.
func (n *Normalizer) IsDown(c Code) bool {
	return c.Valid() && n.channels[c].IsDown()
}

// Step feeds one tick of raw state for every code and returns the non-None
// transitions in ascending code order.
func (n *Normalizer) Step(state *State, mods Modifier, elapsed time.Duration) []Event {
	// The character held on CodeOther sticks until the key goes up, so
	// Repeat and Released report the character that was pushed.
	if state.down[CodeOther] && !n.channels[CodeOther].IsDown() {
		n.other = state.other
	}

	var events []Event
	for i := 1; i < NumCodes; i++ {
		c := Code(i)
		tr := n.channels[c].Update(state.down[c], elapsed, n.config)
		if tr == input.None {
			continue
		}
		ev := Event{Code: c, Transition: tr, Modifiers: mods}
		if c == CodeOther {
			ev.Other = n.other
		}
		events = append(events, ev)
	}
	return events
}
