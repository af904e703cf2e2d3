package key

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/fieldkit/internal/input"
)

// Event is a normalized transition for one key on one tick.
type Event struct {
	// Code identifies the key.
	Code Code

	// Transition is what happened to the key this tick.
	Transition input.Transition

	// Modifiers contains the modifier state sampled on the same tick.
	Modifiers Modifier

	// Other is the character of a CodeOther event.
	Other rune
}

// NewEvent creates an event for a special key.
func NewEvent(k Key, tr input.Transition, mods Modifier) Event {
	c, _ := CodeFor(k, 0)
	return Event{Code: c, Transition: tr, Modifiers: mods}
}

// NewRuneEvent creates an event for a character key. Negative runes yield
// an invalid code.
func NewRuneEvent(r rune, tr input.Transition, mods Modifier) Event {
	c, _ := RuneCode(r)
	ev := Event{Code: c, Transition: tr, Modifiers: mods}
	if c == CodeOther {
		ev.Other = r
	}
	return ev
}

// Key returns the key of the event (KeyRune for characters).
func (e Event) Key() Key {
	return e.Code.Key()
}

// Rune returns the character for character events, or 0.
func (e Event) Rune() rune {
	if e.Code == CodeOther {
		return e.Other
	}
	return e.Code.Rune()
}

// IsChar returns true if this is a printable character without Ctrl, Alt or
// Command held. Shift is part of the character itself.
func (e Event) IsChar() bool {
	if e.Key() != KeyRune || e.Modifiers.Has(ModCtrl|ModAlt|ModCommand) {
		return false
	}
	r := e.Rune()
	return r != 0 && unicode.IsPrint(r)
}

// String returns a representation like "Ctrl+Shift+Left:pushed".
func (e Event) String() string {
	var b strings.Builder
	if mods := e.Modifiers.String(); mods != "" {
		b.WriteString(mods)
		b.WriteByte('+')
	}
	if e.Code == CodeOther {
		fmt.Fprintf(&b, "%q", e.Other)
	} else {
		b.WriteString(e.Code.String())
	}
	b.WriteByte(':')
	b.WriteString(e.Transition.String())
	return b.String()
}
