// Package csync provides thread-safe concurrent data structures.
//
// Slice is a generic, mutex-guarded slice. Every edit, including the
// bounds check that guards it, happens under a single lock, so an edit
// either applies completely or not at all and readers never observe a
// half-applied move.
//
// Example usage:
//
//	stops := csync.NewSlice[Stop]()
//	stops.Append(a, b, c)
//	if !stops.Move(0, 2) {
//		// index out of range, slice unchanged
//	}
//	// newStop only runs when index 1 is accepted
//	stop, ok := stops.InsertFunc(1, newStop)
package csync
