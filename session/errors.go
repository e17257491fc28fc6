// SPDX-License-Identifier: EPL-2.0

package session

import (
	"errors"

	"github.com/ik5/audtrim/edit"
)

var (
	// ErrDecode wraps every failure of the decode boundary.
	ErrDecode = errors.New("failed to decode audio")

	// ErrAlreadyLoaded is returned by Load when the session holds audio or
	// history. Close it first.
	ErrAlreadyLoaded = errors.New("session already loaded")

	// ErrSuperseded is reported by LoadAsync when a newer load or Close
	// happened before the decode finished. The result was discarded.
	ErrSuperseded = errors.New("load superseded")

	ErrEmptyBuffer   = edit.ErrEmptyBuffer
	ErrNothingToUndo = edit.ErrNothingToUndo
	ErrNothingToRedo = edit.ErrNothingToRedo
)

// IsHistoryUnderflow reports whether err only says there was nothing to undo
// or redo. Such errors are informational.
func IsHistoryUnderflow(err error) bool {
	return errors.Is(err, ErrNothingToUndo) || errors.Is(err, ErrNothingToRedo)
}
