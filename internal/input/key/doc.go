// Package key provides key codes, modifiers and the key event normalizer.
//
// This package defines the fundamental types for keyboard input:
//
//   - Key: Identifies a special key, or KeyRune for character keys
//   - Code: A validated index into the fixed key-code space. Latin-1
//     characters have their own codes; any other character is carried on
//     the shared CodeOther
//   - State: One tick's raw down/up state for every code
//   - Modifier: Shift, Ctrl, Alt and Command
//   - Normalizer: Per-key debounce and auto-repeat over the code space
//   - Event: A normalized transition for one code on one tick
//
// # Debounce and Repeat
//
// Each tracked code owns a Channel recording how long the key has been held.
// A key going down yields Pushed once; while it stays down nothing is reported
// until the initial delay has elapsed, after which Repeat fires and the hold
// window restarts. Going up yields Released once.
//
//	n := key.NewNormalizer(key.DefaultConfig())
//	for _, ev := range n.Step(&snapshot.Keys, snapshot.Modifiers, elapsed) {
//	    field.HandleKey(ev)
//	}
package key
