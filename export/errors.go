// SPDX-License-Identifier: EPL-2.0

package export

import (
	"errors"

	"github.com/ik5/audtrim/edit"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrEmptyBuffer is edit.ErrEmptyBuffer, so callers can test either.
	ErrEmptyBuffer = edit.ErrEmptyBuffer

	ErrInvalidSampleRate = errors.New("invalid export sample rate")
)
