// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
)

// Buffer holds fully decoded audio as one float32 slice per channel.
//
// A Buffer is immutable once built: accessors that expose channel data hand
// out copies, and every edit produces a new Buffer. This is what allows the
// same Buffer to be held as the current state and as an undo snapshot at the
// same time.
type Buffer struct {
	sampleRate int
	length     int
	channels   [][]float32
}

// NewBuffer creates a silent buffer with numChannels channels of length
// samples each.
//
// numChannels and sampleRate must be positive and length must not be
// negative, otherwise ErrInvalidBuffer is returned. A zero length is valid.
func NewBuffer(numChannels, sampleRate, length int) (*Buffer, error) {
	if err := validate(numChannels, sampleRate, length); err != nil {
		return nil, err
	}

	channels := make([][]float32, numChannels)
	for c := range channels {
		channels[c] = make([]float32, length)
	}

	return &Buffer{
		sampleRate: sampleRate,
		length:     length,
		channels:   channels,
	}, nil
}

// FromChannels builds a buffer from per-channel sample slices. The slices are
// copied, so the caller may keep writing to them without affecting the
// returned Buffer.
func FromChannels(sampleRate int, channels [][]float32) (*Buffer, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("%w: no channels", ErrInvalidBuffer)
	}

	length := len(channels[0])
	if err := validate(len(channels), sampleRate, length); err != nil {
		return nil, err
	}

	owned := make([][]float32, len(channels))
	for c, data := range channels {
		if len(data) != length {
			return nil, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrInvalidBuffer, c, len(data), length)
		}
		owned[c] = append([]float32(nil), data...)
		if owned[c] == nil {
			owned[c] = []float32{}
		}
	}

	return &Buffer{
		sampleRate: sampleRate,
		length:     length,
		channels:   owned,
	}, nil
}

// FromInterleaved splits interleaved samples (frame by frame, channel order)
// into a new buffer.
func FromInterleaved(numChannels, sampleRate int, samples []float32) (*Buffer, error) {
	if numChannels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidBuffer, numChannels)
	}
	if len(samples)%numChannels != 0 {
		return nil, fmt.Errorf("%w: %d samples is not a multiple of %d channels",
			ErrInvalidBuffer, len(samples), numChannels)
	}

	b, err := NewBuffer(numChannels, sampleRate, len(samples)/numChannels)
	if err != nil {
		return nil, err
	}

	for f := range b.length {
		base := f * numChannels
		for c := range numChannels {
			b.channels[c][f] = samples[base+c]
		}
	}

	return b, nil
}

func validate(numChannels, sampleRate, length int) error {
	switch {
	case numChannels <= 0:
		return fmt.Errorf("%w: %d channels", ErrInvalidBuffer, numChannels)
	case sampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidBuffer, sampleRate)
	case length < 0:
		return fmt.Errorf("%w: length %d", ErrInvalidBuffer, length)
	}

	return nil
}

func (b *Buffer) SampleRate() int  { return b.sampleRate }
func (b *Buffer) NumChannels() int { return len(b.channels) }

// Len is the number of samples in each channel (the frame count).
func (b *Buffer) Len() int { return b.length }

// Duration in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.length) / float64(b.sampleRate)
}

// Sample returns the value of frame i in channel ch.
// It panics if either index is out of range, like a slice access.
func (b *Buffer) Sample(ch, i int) float32 {
	return b.channels[ch][i]
}

// Channel returns a copy of the samples of channel ch.
func (b *Buffer) Channel(ch int) []float32 {
	return append(make([]float32, 0, b.length), b.channels[ch]...)
}

// Interleaved returns all samples frame by frame in channel order.
func (b *Buffer) Interleaved() []float32 {
	n := len(b.channels)
	out := make([]float32, b.length*n)
	for c, data := range b.channels {
		for f, v := range data {
			out[f*n+c] = v
		}
	}

	return out
}

// Slice returns a new buffer holding frames [from, from+n). The range is
// clamped to the buffer, so the result may be shorter than n, or empty.
func (b *Buffer) Slice(from, n int) *Buffer {
	from = min(max(from, 0), b.length)
	n = min(max(n, 0), b.length-from)

	channels := make([][]float32, len(b.channels))
	for c, data := range b.channels {
		channels[c] = append(make([]float32, 0, n), data[from:from+n]...)
	}

	return &Buffer{
		sampleRate: b.sampleRate,
		length:     n,
		channels:   channels,
	}
}

// Equal reports whether both buffers have the same sample rate, channel
// count and sample values. Two nil buffers are equal.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.sampleRate != other.sampleRate || b.length != other.length ||
		len(b.channels) != len(other.channels) {
		return false
	}

	for c := range b.channels {
		for i, v := range b.channels[c] {
			if other.channels[c][i] != v {
				return false
			}
		}
	}

	return true
}

func (b *Buffer) String() string {
	if b == nil {
		return "<no audio>"
	}

	return fmt.Sprintf("%dch %dHz %d frames (%.3fs)",
		len(b.channels), b.sampleRate, b.length, b.Duration())
}
