// SPDX-License-Identifier: EPL-2.0

// Package edit implements the destructive edits of the trimmer and the
// history that makes them undoable.
//
// # Range edits
//
// Cut keeps the [start, end) range of a buffer, given in seconds:
//
//	trimmed, err := edit.Cut(buf, 0.5, 1.5)
//
// Times are clamped to the buffer, so an out of range selection never fails;
// an empty selection yields a zero-length buffer. Remove clears the audio
// entirely. Neither touches its input.
//
// # History
//
// History is a persistent pair of undo and redo stacks:
//
//	var h edit.History
//	h = h.Snapshot(current).ClearRedo()
//	current, _ = edit.Cut(current, 0.5, 1.5)
//
//	prev, h, ok := h.Undo(current)
//
// Every call returns a new History, so values can be kept and compared
// without aliasing the stacks of later states.
package edit
