// Package input holds the types shared by the input normalizers.
//
// Raw input arrives once per UI tick as a snapshot of boolean key and button
// state (see package sample). The normalizers in packages key and mouse turn
// those snapshots into at most one Transition per key or button per tick:
//
//   - Pushed: the key or button went down this tick
//   - Repeat: it is still held and an auto-repeat is due
//   - Released: it went up this tick
//   - None: nothing to report
//
// Widgets consume transitions, never raw state.
package input
