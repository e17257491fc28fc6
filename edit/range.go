// SPDX-License-Identifier: EPL-2.0

package edit

import (
	"math"

	"github.com/ik5/audtrim/audio"
)

// Cut returns a new buffer holding only the audio in [start, end), in
// seconds. The input buffer is not modified.
//
// start and end are clamped to [0, duration] first. If end <= start after
// clamping, the result is a zero-length buffer with the same sample rate and
// channel count. The first frame kept is floor(start*rate) and the frame
// count is floor((end-start)*rate).
func Cut(buf *audio.Buffer, start, end float64) (*audio.Buffer, error) {
	if buf == nil {
		return nil, ErrEmptyBuffer
	}

	start = clampTime(start, buf.Duration())
	end = clampTime(end, buf.Duration())
	if end <= start {
		return buf.Slice(0, 0), nil
	}

	rate := float64(buf.SampleRate())
	from := int(math.Floor(start * rate))
	n := int(math.Floor((end - start) * rate))

	return buf.Slice(from, n), nil
}

// Remove discards the whole buffer and returns the "no audio" state.
//
// It does not splice out a range; the selection is ignored.
func Remove(*audio.Buffer) *audio.Buffer {
	return nil
}

func clampTime(t, duration float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}

	return min(t, duration)
}
