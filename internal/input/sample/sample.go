// Package sample produces the raw per-tick input snapshots consumed by the
// key and button normalizers.
//
// A Snapshot is level-triggered: it says which keys and buttons are down
// right now. Edge detection (pushed, repeat, released) is the normalizers'
// job.
package sample

import (
	"github.com/dshills/fieldkit/internal/input/key"
	"github.com/dshills/fieldkit/internal/input/mouse"
)

// Snapshot is the raw input state for one tick.
type Snapshot struct {
	Keys      key.State
	Buttons   mouse.State
	Pointer   mouse.Position
	Modifiers key.Modifier
}

// Sampler produces one Snapshot per tick.
type Sampler interface {
	Sample() Snapshot
}

// Sequence replays a fixed list of snapshots, then repeats an idle snapshot
// with the last pointer position.
type Sequence struct {
	snaps []Snapshot
	next  int
}

// NewSequence creates a sampler replaying snaps in order.
func NewSequence(snaps ...Snapshot) *Sequence {
	return &Sequence{snaps: snaps}
}

// Sample returns the next snapshot.
func (s *Sequence) Sample() Snapshot {
	if s.next < len(s.snaps) {
		snap := s.snaps[s.next]
		s.next++
		return snap
	}
	if n := len(s.snaps); n > 0 {
		return Snapshot{Pointer: s.snaps[n-1].Pointer}
	}
	return Snapshot{}
}

// Done reports whether every scripted snapshot was returned.
func (s *Sequence) Done() bool {
	return s.next >= len(s.snaps)
}

// KeyDown returns a snapshot with the key k held.
func KeyDown(k key.Key, mods key.Modifier) Snapshot {
	var snap Snapshot
	if c, ok := key.CodeFor(k, 0); ok {
		snap.Keys.Set(c, true)
	}
	snap.Modifiers = mods
	return snap
}

// RuneDown returns a snapshot with the character r held.
func RuneDown(r rune, mods key.Modifier) Snapshot {
	var snap Snapshot
	snap.Keys.SetRune(r, true)
	snap.Modifiers = mods
	return snap
}

// ButtonDown returns a snapshot with button b held at pos.
func ButtonDown(b mouse.Button, pos mouse.Position) Snapshot {
	snap := Snapshot{Pointer: pos}
	snap.Buttons.Set(b, true)
	return snap
}

// Idle returns a snapshot with nothing held and the pointer at pos.
func Idle(pos mouse.Position) Snapshot {
	return Snapshot{Pointer: pos}
}
