package key

import (
	"testing"

	"github.com/dshills/fieldkit/internal/input"
)

func TestEventIsChar(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"plain rune", NewRuneEvent('a', input.Pushed, ModNone), true},
		{"shifted rune", NewRuneEvent('A', input.Pushed, ModShift), true},
		{"ctrl rune", NewRuneEvent('a', input.Pushed, ModCtrl), false},
		{"control char", NewRuneEvent('\x01', input.Pushed, ModNone), false},
		{"special key", NewEvent(KeyEnter, input.Pushed, ModNone), false},
		{"rune beyond latin1", NewRuneEvent('世', input.Pushed, ModNone), true},
		{"negative rune", NewRuneEvent(-1, input.Pushed, ModNone), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.IsChar(); got != tt.want {
				t.Errorf("IsChar() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventString(t *testing.T) {
	ev := NewEvent(KeyLeft, input.Repeat, ModCtrl|ModShift)
	if got, want := ev.String(), "Ctrl+Shift+Left:repeat"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	ev = NewRuneEvent('q', input.Pushed, ModNone)
	if got, want := ev.String(), "'q':pushed"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	ev = NewRuneEvent('€', input.Released, ModNone)
	if got, want := ev.String(), "'€':released"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
