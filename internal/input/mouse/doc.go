// Package mouse provides mouse button normalization for the text widgets.
//
// # Core Types
//
// State is one tick's raw down/up state for every tracked button, sampled
// together with the pointer Position. Normalizer turns it into at most one
// Event per button per tick:
//
//	n := mouse.NewNormalizer()
//	for _, ev := range n.Step(&snapshot.Buttons, snapshot.Pointer, snapshot.Modifiers) {
//	    form.HandlePointer(ev)
//	}
//
// Buttons carry no timing: a held button yields Repeat on every tick, which
// the text controller uses to drive drag selection.
//
// # Click Counting
//
// ClickCounter detects double and triple clicks from consecutive presses
// based on timing and position thresholds:
//
//   - Single click: Positions cursor
//   - Double click: Selects a character group
//   - Triple click: Selects everything
package mouse
