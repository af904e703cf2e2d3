package key

import "fmt"

// Code is an index into the fixed key-code space tracked by the normalizer.
// Special keys occupy [1, KeyRune); Latin-1 characters occupy
// [runeBase, runeBase+MaxRune]; every other character shares CodeOther.
// Use CodeFor to build one.
type Code uint16

const (
	runeBase Code = Code(KeyRune)

	// MaxRune is the largest character with a code of its own.
	MaxRune rune = 0xFF

	// CodeOther is the shared code of characters above MaxRune. The
	// character itself travels in State and Event.
	CodeOther = runeBase + Code(MaxRune) + 1

	// NumCodes is the size of the key-code space.
	NumCodes = int(CodeOther) + 1
)

// CodeFor returns the code for a special key, or for a character when k is
// KeyRune. ok is false when the key lies outside the tracked space or r is
// negative.
func CodeFor(k Key, r rune) (c Code, ok bool) {
	switch {
	case k == KeyRune:
		switch {
		case r < 0:
			return 0, false
		case r > MaxRune:
			return CodeOther, true
		}
		return runeBase + Code(r), true
	case k.IsSpecial():
		return Code(k), true
	default:
		return 0, false
	}
}

// RuneCode is shorthand for CodeFor(KeyRune, r).
func RuneCode(r rune) (Code, bool) {
	return CodeFor(KeyRune, r)
}

// Valid reports whether c lies in the tracked code space.
func (c Code) Valid() bool {
	return c != 0 && int(c) < NumCodes
}

// Key returns the key identified by c (KeyRune for characters).
func (c Code) Key() Key {
	if c >= runeBase {
		return KeyRune
	}
	return Key(c)
}

// Rune returns the character for a character code, or 0. CodeOther has
// no character of its own.
func (c Code) Rune() rune {
	if c >= runeBase && c < CodeOther {
		return rune(c - runeBase)
	}
	return 0
}

// String returns the key name, or the quoted character.
func (c Code) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Code(%d)", uint16(c))
	}
	if c == CodeOther {
		return "Other"
	}
	if c.Key() == KeyRune {
		return fmt.Sprintf("%q", c.Rune())
	}
	return c.Key().String()
}

// State is one tick's raw down/up state for every code, plus the character
// behind CodeOther.
type State struct {
	down  [NumCodes]bool
	other rune
}

// Set marks c as down or up. Invalid codes are ignored.
func (s *State) Set(c Code, down bool) {
	if c.Valid() {
		s.down[c] = down
	}
}

// SetRune marks the key of character r as down or up. Characters above
// MaxRune are recorded on CodeOther.
func (s *State) SetRune(r rune, down bool) {
	c, ok := RuneCode(r)
	if !ok {
		return
	}
	if c == CodeOther && down {
		s.other = r
	}
	s.Set(c, down)
}

// IsDown reports whether c is down. Invalid codes are never down.
func (s *State) IsDown(c Code) bool {
	return c.Valid() && s.down[c]
}

// Other returns the last character recorded on CodeOther.
func (s *State) Other() rune {
	return s.other
}

// Clear marks every code as up.
func (s *State) Clear() {
	*s = State{}
}
