// Package controller turns normalized key and pointer events into text
// buffer edits.
//
// # State Machine
//
// A Controller is Idle until a pointer press lands in its field. The press
// places the cursor, fixes the selection anchor and enters Selecting; pointer
// moves then select between the anchor and the pointer, and the release
// returns to Idle. A release without movement is a plain click and leaves no
// selection behind.
//
// # Operations
//
// Key-driven operations insert and delete characters, move the cursor by
// character, by character group or to either end, optionally extending the
// selection, and commit numeric fields by clamping their value. Every
// operation is total: a keystroke that violates the field's constraints is
// silently ignored. Content mutations are ignored on read-only buffers, but
// cursor and selection movement still work.
//
// # Signals
//
// Listeners registered with Subscribe receive Clicked, Changed and Enter
// synchronously, after the buffer has been updated.
package controller
