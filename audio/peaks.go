// SPDX-License-Identifier: EPL-2.0

package audio

// Peak is the sample range seen in one bin of a waveform overview.
type Peak struct {
	Min float32
	Max float32
}

// Peaks splits the buffer into bins equal slices of frames and returns the
// lowest and highest sample of each slice across all channels. It is the
// data a waveform view draws; an empty or nil buffer yields nil.
func Peaks(b *Buffer, bins int) []Peak {
	if b == nil || b.length == 0 || bins <= 0 {
		return nil
	}

	bins = min(bins, b.length)
	out := make([]Peak, bins)

	for i := range out {
		from := i * b.length / bins
		to := (i + 1) * b.length / bins

		p := Peak{Min: b.channels[0][from], Max: b.channels[0][from]}
		for _, data := range b.channels {
			for _, v := range data[from:to] {
				p.Min = min(p.Min, v)
				p.Max = max(p.Max, v)
			}
		}
		out[i] = p
	}

	return out
}
