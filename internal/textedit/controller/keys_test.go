package controller

import (
	"testing"

	"github.com/dshills/fieldkit/internal/input"
	"github.com/dshills/fieldkit/internal/input/key"
	"github.com/dshills/fieldkit/internal/textedit/buffer"
)

func press(k key.Key, mods key.Modifier) key.Event {
	return key.NewEvent(k, input.Pushed, mods)
}

func typed(r rune) key.Event {
	return key.NewRuneEvent(r, input.Pushed, 0)
}

func TestHandleKeyTyping(t *testing.T) {
	c, _ := newController("")
	for _, r := range "hi there" {
		if !c.HandleKey(typed(r)) {
			t.Fatalf("HandleKey(%q) not consumed", r)
		}
	}
	assertState(t, c, "hi there", 8)

	c.HandleKey(press(key.KeyBackspace, key.ModCtrl))
	assertState(t, c, "hi ", 3)

	c.HandleKey(press(key.KeyHome, 0))
	c.HandleKey(press(key.KeyDelete, 0))
	assertState(t, c, "i ", 0)
}

func TestHandleKeyMovement(t *testing.T) {
	tests := []struct {
		name       string
		ev         key.Event
		wantCursor int
		wantSel    string
	}{
		{"left", press(key.KeyLeft, 0), 5, ""},
		{"right", press(key.KeyRight, 0), 7, ""},
		{"ctrl left", press(key.KeyLeft, key.ModCtrl), 4, ""},
		{"alt right", press(key.KeyRight, key.ModAlt), 8, ""},
		{"home", press(key.KeyHome, 0), 0, ""},
		{"end", press(key.KeyEnd, 0), 11, ""},
		{"shift home", press(key.KeyHome, key.ModShift), 0, "foo ba"},
		{"shift ctrl right", press(key.KeyRight, key.ModShift|key.ModCtrl), 8, "r "},
		{"repeat moves", key.NewEvent(key.KeyLeft, input.Repeat, 0), 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newController("foo bar baz")
			c.Buffer().SetCursor(6)
			if !c.HandleKey(tt.ev) {
				t.Fatalf("HandleKey(%s) not consumed", tt.ev)
			}
			if got := c.Buffer().Cursor(); got != tt.wantCursor {
				t.Errorf("Cursor() = %d, want %d", got, tt.wantCursor)
			}
			if got := c.Buffer().SelectedText(); got != tt.wantSel {
				t.Errorf("SelectedText() = %q, want %q", got, tt.wantSel)
			}
		})
	}
}

func TestHandleKeyEnter(t *testing.T) {
	c, rec := newController("300", buffer.WithNumericOnly(100))

	if c.HandleKey(key.NewEvent(key.KeyEnter, input.Repeat, 0)) {
		t.Error("repeated Enter consumed")
	}
	if rec.count(Enter) != 0 {
		t.Fatal("Enter emitted on repeat")
	}

	if !c.HandleKey(press(key.KeyEnter, 0)) {
		t.Fatal("Enter not consumed")
	}
	if rec.count(Enter) != 1 {
		t.Errorf("Enter emitted %d times, want 1", rec.count(Enter))
	}
	if got := c.Buffer().Text(); got != "100" {
		t.Errorf("Text() = %q, want %q", got, "100")
	}
	// Changed comes before Enter.
	if len(rec.signals) != 2 || rec.signals[0] != Changed || rec.signals[1] != Enter {
		t.Errorf("signals = %v, want [changed enter]", rec.signals)
	}
}

func TestHandleKeySelectAll(t *testing.T) {
	for _, mods := range []key.Modifier{key.ModCtrl, key.ModCommand} {
		c, rec := newController("select me")
		if !c.HandleKey(key.NewRuneEvent('a', input.Pushed, mods)) {
			t.Fatalf("%s+A not consumed", mods)
		}
		if got := c.Buffer().SelectedText(); got != "select me" {
			t.Errorf("%s+A selected %q", mods, got)
		}
		if len(rec.signals) != 0 {
			t.Errorf("select all emitted %v", rec.signals)
		}
	}
}

func TestHandleKeyIgnored(t *testing.T) {
	tests := []struct {
		name string
		ev   key.Event
	}{
		{"released rune", key.NewRuneEvent('x', input.Released, 0)},
		{"released backspace", key.NewEvent(key.KeyBackspace, input.Released, 0)},
		{"ctrl rune", key.NewRuneEvent('x', input.Pushed, key.ModCtrl)},
		{"function key", press(key.KeyF5, 0)},
		{"tab", press(key.KeyTab, 0)},
		{"escape", press(key.KeyEscape, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newController("abc")
			if c.HandleKey(tt.ev) {
				t.Errorf("HandleKey(%s) consumed", tt.ev)
			}
			assertState(t, c, "abc", 0)
			if len(rec.signals) != 0 {
				t.Errorf("signals = %v, want none", rec.signals)
			}
		})
	}
}

func TestHandleKeyShiftedRune(t *testing.T) {
	c, _ := newController("")
	c.HandleKey(key.NewRuneEvent('Q', input.Pushed, key.ModShift))
	c.HandleKey(key.NewRuneEvent('z', input.Repeat, 0))
	assertState(t, c, "Qz", 2)
}
