// SPDX-License-Identifier: EPL-2.0

package edit

import "github.com/ik5/audtrim/audio"

// stack is an immutable singly linked list. Pushing shares the tail with the
// previous stack, so older History values stay valid after newer ones are
// derived from them.
type stack struct {
	buf   *audio.Buffer
	next  *stack
	depth int
}

func (s *stack) push(b *audio.Buffer) *stack {
	return &stack{buf: b, next: s, depth: s.len() + 1}
}

func (s *stack) len() int {
	if s == nil {
		return 0
	}

	return s.depth
}

// History is an undo/redo ledger of buffer snapshots.
//
// It is a value: every method returns a new History and leaves the receiver
// unchanged. The zero value is an empty history. A nil snapshot is a valid
// entry and stands for "no audio", the state left by Remove.
type History struct {
	undo *stack
	redo *stack
}

// Snapshot records buf, the state before an edit, on the undo stack. The redo
// stack is kept; use ClearRedo when a new edit branches the history.
func (h History) Snapshot(buf *audio.Buffer) History {
	h.undo = h.undo.push(buf)
	return h
}

// ClearRedo drops every redoable state.
func (h History) ClearRedo() History {
	h.redo = nil
	return h
}

// Undo pops the most recent snapshot and moves current onto the redo stack.
// ok is false, and h is returned as is, when there is nothing to undo.
func (h History) Undo(current *audio.Buffer) (prev *audio.Buffer, next History, ok bool) {
	if h.undo == nil {
		return current, h, false
	}

	prev = h.undo.buf
	next = History{
		undo: h.undo.next,
		redo: h.redo.push(current),
	}

	return prev, next, true
}

// Redo is the inverse of Undo.
func (h History) Redo(current *audio.Buffer) (following *audio.Buffer, next History, ok bool) {
	if h.redo == nil {
		return current, h, false
	}

	following = h.redo.buf
	next = History{
		undo: h.undo.push(current),
		redo: h.redo.next,
	}

	return following, next, true
}

func (h History) CanUndo() bool  { return h.undo != nil }
func (h History) CanRedo() bool  { return h.redo != nil }
func (h History) UndoDepth() int { return h.undo.len() }
func (h History) RedoDepth() int { return h.redo.len() }

// Empty reports whether both stacks are empty.
func (h History) Empty() bool { return h.undo == nil && h.redo == nil }
