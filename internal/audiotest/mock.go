// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the package tests.
//
// It does not import the audio package so that internal tests of audio can
// use it too.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of a sample given its frame index and channel.
type Waveform func(frame, channel int) float32

// Sine is a waveform at frequency Hz for the given sample rate. Every
// channel gets a phase shifted copy so channels can be told apart.
func Sine(sampleRate int, frequency float64) Waveform {
	return func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2*math.Pi*frequency*t + float64(channel)*math.Pi/4))
	}
}

// Constant is a waveform that always returns value.
func Constant(value float32) Waveform {
	return func(int, int) float32 { return value }
}

// Ramp is a waveform whose value encodes its position, frame*0.0001 plus
// channel*0.00001, which makes slicing errors visible.
func Ramp() Waveform {
	return func(frame, channel int) float32 {
		return float32(frame%10000)*0.0001 + float32(channel)*0.00001
	}
}

// Channels renders frames samples of w for each channel.
func Channels(channels, frames int, w Waveform) [][]float32 {
	out := make([][]float32, channels)
	for c := range out {
		out[c] = make([]float32, frames)
		for f := range frames {
			out[c][f] = w(f, c)
		}
	}

	return out
}

// MockSource generates interleaved audio and implements audio.Source.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     Waveform
	closed       bool
	failAfter    int
	failErr      error
}

// NewMockSource creates a new mock audio source producing totalSamples
// frames of w.
func NewMockSource(sampleRate, channels, totalSamples int, w Waveform) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     w,
		failAfter:    -1,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, Constant(0))
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, Sine(sampleRate, frequency))
}

// NewConstantSource creates a mock source with a constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, Constant(value))
}

// FailAfter makes ReadSamples return err once frames frames were produced.
func (m *MockSource) FailAfter(frames int, err error) *MockSource {
	m.failAfter = frames
	m.failErr = err

	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, m.failErr
	}
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	if m.failAfter >= 0 {
		frames = min(frames, m.failAfter-m.generated)
	}

	for f := range frames {
		idx := m.generated + f
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(idx, c)
		}
	}

	m.generated += frames
	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}
