package controller

import "github.com/dshills/fieldkit/internal/textedit/buffer"

// Mode is the pointer interaction state.
type Mode uint8

const (
	// Idle is the initial state and the state between interactions.
	Idle Mode = iota
	// Selecting indicates a pointer drag is in progress.
	Selecting
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Selecting:
		return "selecting"
	default:
		return "unknown"
	}
}

// Direction is a cursor movement target.
type Direction uint8

const (
	// Left moves one character (or group) towards the start.
	Left Direction = iota
	// Right moves one character (or group) towards the end.
	Right
	// Home moves to the start of the content.
	Home
	// End moves to the end of the content.
	End
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Home:
		return "home"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Signal is a notification delivered to the owning widget.
type Signal uint8

const (
	// Clicked indicates a pointer press inside the field.
	Clicked Signal = iota
	// Changed indicates the content was mutated.
	Changed
	// Enter indicates the Enter key was pushed.
	Enter
)

// String returns a string representation of the signal.
func (s Signal) String() string {
	switch s {
	case Clicked:
		return "clicked"
	case Changed:
		return "changed"
	case Enter:
		return "enter"
	default:
		return "unknown"
	}
}

// Listener receives signals together with the buffer that raised them.
type Listener func(sig Signal, buf *buffer.Buffer)

// CharFilter decides whether a character may be inserted into text.
// It is consulted after the buffer's own constraints.
type CharFilter interface {
	Accept(r rune, text string) bool
}

// CharFilterFunc adapts a function to the CharFilter interface.
type CharFilterFunc func(r rune, text string) bool

// Accept calls f(r, text).
func (f CharFilterFunc) Accept(r rune, text string) bool {
	return f(r, text)
}
