package controller

import (
	"unicode"

	"github.com/dshills/fieldkit/internal/input"
	"github.com/dshills/fieldkit/internal/input/key"
)

// HandleKey applies a normalized key event and reports whether the
// controller consumed it. Pushed and Repeat drive editing and movement;
// Enter acts on Pushed only. Released events are never consumed.
//
// Bindings:
//
//	Left/Right          move by character (Ctrl or Alt: by group)
//	Home/End            move to either end
//	Shift+movement      extend the selection
//	Backspace/Delete    delete (Ctrl or Alt: by group)
//	Enter               commit numeric value, emit Enter
//	Ctrl+A / Cmd+A      select all
//	printable rune      insert
func (c *Controller) HandleKey(ev key.Event) bool {
	if !ev.Transition.IsActive() {
		return false
	}

	mods := ev.Modifiers
	extend := mods.HasShift()
	byGroup := mods.WordModifier()

	switch ev.Key() {
	case key.KeyLeft:
		c.MoveCursor(Left, extend, byGroup)
	case key.KeyRight:
		c.MoveCursor(Right, extend, byGroup)
	case key.KeyHome:
		c.MoveCursor(Home, extend, false)
	case key.KeyEnd:
		c.MoveCursor(End, extend, false)
	case key.KeyBackspace:
		if byGroup {
			c.DeleteGroupBackward()
		} else {
			c.DeleteBackward()
		}
	case key.KeyDelete:
		if byGroup {
			c.DeleteGroupForward()
		} else {
			c.DeleteForward()
		}
	case key.KeyEnter:
		if ev.Transition != input.Pushed {
			return false
		}
		c.CommitNumericClamp()
		c.emit(Enter)
	case key.KeyRune:
		r := ev.Rune()
		if (mods.HasCtrl() || mods.HasCommand()) && unicode.ToLower(r) == 'a' {
			c.SelectAll()
			return true
		}
		if !ev.IsChar() {
			return false
		}
		c.InsertChar(r)
	default:
		return false
	}
	return true
}
