// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// bufferSource streams a Buffer as interleaved samples.
type bufferSource struct {
	buf   *Buffer
	frame int
}

// Source returns a Source that reads the buffer from the start. Every call
// returns an independent reader; the Buffer itself is never modified.
func (b *Buffer) Source() Source {
	return &bufferSource{buf: b}
}

func (s *bufferSource) SampleRate() int { return s.buf.sampleRate }
func (s *bufferSource) Channels() int   { return len(s.buf.channels) }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := len(s.buf.channels)
	if s.frame >= s.buf.length {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, s.buf.length-s.frame)
	for f := range frames {
		for c := range channels {
			dst[f*channels+c] = s.buf.channels[c][s.frame+f]
		}
	}
	s.frame += frames

	if s.frame >= s.buf.length {
		return frames * channels, io.EOF
	}

	return frames * channels, nil
}

// ReadAll drains src into a new Buffer. The source is not closed.
//
// Trailing samples that do not form a whole frame are dropped.
func ReadAll(src Source) (*Buffer, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidBuffer, channels)
	}

	chunk := max(src.BufSize(), 1024)
	chunk -= chunk % channels
	if chunk == 0 {
		chunk = channels
	}

	buf := make([]float32, chunk)
	var samples []float32

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	samples = samples[:len(samples)-len(samples)%channels]

	return FromInterleaved(channels, src.SampleRate(), samples)
}
