// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrInvalidBuffer is returned when a Buffer would be built from a
	// non-positive channel count or sample rate, a negative length, or
	// channels of different lengths.
	ErrInvalidBuffer = errors.New("invalid sample buffer")

	ErrNilSource = errors.New("nil audio source")
)
