package sample

import (
	"github.com/dshills/fieldkit/internal/input/key"
	"github.com/dshills/fieldkit/internal/input/mouse"
	"github.com/dshills/fieldkit/internal/logging"
	"github.com/dshills/fieldkit/internal/render/backend"
)

// press is one queued terminal key press.
type press struct {
	code key.Code
	r    rune
	mods key.Modifier
}

// mouseReport is one queued terminal mouse report.
type mouseReport struct {
	pos     mouse.Position
	buttons mouse.State
	mods    key.Modifier
}

// TerminalSampler turns terminal events into level-triggered snapshots.
//
// Terminals report key presses but never releases, so each press is held
// for exactly one sample and released on the next. Presses queue in arrival
// order and at most one key is down per sample, which keeps typed
// characters in order. Mouse reports queue the same way and each change of
// held buttons gets its own sample, so a press and release arriving between
// two ticks still produce a click.
//
// TerminalSampler is not safe for concurrent use; feed it from the loop
// goroutine.
type TerminalSampler struct {
	presses []press
	reports []mouseReport

	snap    Snapshot
	held    bool
	heldKey press
	ptrMods key.Modifier

	log *logging.Logger
}

// NewTerminalSampler creates an empty sampler.
func NewTerminalSampler(log *logging.Logger) *TerminalSampler {
	if log == nil {
		log = logging.Discard()
	}
	return &TerminalSampler{log: log}
}

// Feed queues a terminal event. Non-input events are ignored. It reports
// whether the event was queued.
func (s *TerminalSampler) Feed(ev backend.Event) bool {
	switch ev.Type {
	case backend.EventKey:
		code, ok := key.CodeFor(ev.Key, ev.Rune)
		if !ok {
			s.log.Debug("dropped key %s rune %q: outside the code table", ev.Key, ev.Rune)
			return false
		}
		s.presses = append(s.presses, press{code: code, r: ev.Rune, mods: ev.Mod})
		return true
	case backend.EventMouse:
		s.reports = append(s.reports, mouseReport{
			pos:     mouse.Position{X: ev.X, Y: ev.Y},
			buttons: ev.Buttons,
			mods:    ev.Mod,
		})
		return true
	default:
		return false
	}
}

// Pending reports whether queued input remains, including a key that is
// still held from the previous sample.
func (s *TerminalSampler) Pending() bool {
	return s.held || len(s.presses) > 0 || len(s.reports) > 0
}

// Sample returns the snapshot for this tick.
func (s *TerminalSampler) Sample() Snapshot {
	s.sampleKeys()
	s.sampleMouse()

	if s.held {
		s.snap.Modifiers = s.heldKey.mods
	} else {
		s.snap.Modifiers = s.ptrMods
	}
	return s.snap
}

func (s *TerminalSampler) sampleKeys() {
	if s.held {
		s.snap.Keys.Set(s.heldKey.code, false)
		s.held = false
		// The same key needs one released sample before it can go down
		// again.
		if len(s.presses) > 0 && s.presses[0].code == s.heldKey.code {
			return
		}
	}
	if len(s.presses) == 0 {
		return
	}
	s.heldKey = s.presses[0]
	s.presses = s.presses[1:]
	if s.heldKey.code == key.CodeOther {
		s.snap.Keys.SetRune(s.heldKey.r, true)
	} else {
		s.snap.Keys.Set(s.heldKey.code, true)
	}
	s.held = true
}

func (s *TerminalSampler) sampleMouse() {
	for len(s.reports) > 0 {
		r := s.reports[0]
		s.reports = s.reports[1:]
		changed := r.buttons != s.snap.Buttons
		s.snap.Pointer = r.pos
		s.snap.Buttons = r.buttons
		s.ptrMods = r.mods
		if changed {
			return
		}
	}
}
