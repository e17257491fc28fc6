// SPDX-License-Identifier: EPL-2.0

package edit

import "errors"

var (
	// ErrEmptyBuffer is returned when an edit needs audio and there is none.
	ErrEmptyBuffer = errors.New("no audio loaded")

	// ErrNothingToUndo and ErrNothingToRedo report an empty history stack.
	// They are informational: the state is left as it was.
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)
