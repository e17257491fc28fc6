// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams with github.com/mewkiz/flac.
package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/utils"
	"github.com/mewkiz/flac"
)

var (
	ErrNotFlacFile         = errors.New("not a FLAC file")
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")
)

// blockReader yields one decoded FLAC frame at a time, as one slice of
// samples per channel.
type blockReader interface {
	next() ([][]int32, error)
	Close() error
}

type streamReader struct {
	stream *flac.Stream
}

func (r streamReader) next() ([][]int32, error) {
	frame, err := r.stream.ParseNext()
	if err != nil {
		return nil, err
	}

	block := make([][]int32, len(frame.Subframes))
	for ch, sub := range frame.Subframes {
		block[ch] = sub.Samples[:frame.BlockSize]
	}

	return block, nil
}

func (r streamReader) Close() error { return r.stream.Close() }

type source struct {
	dec        blockReader
	sampleRate int
	channels   int
	bitDepth   int

	block [][]int32
	pos   int // next frame within block
	eof   bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }

func (s *source) Close() error {
	if err := s.dec.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	want := len(dst) / s.channels
	written := 0

	for written < want {
		if s.block == nil || s.pos >= len(s.block[0]) {
			if s.eof {
				break
			}

			block, err := s.dec.next()
			if errors.Is(err, io.EOF) {
				s.eof = true
				break
			}
			if err != nil {
				return written * s.channels, fmt.Errorf("parsing flac frame: %w", err)
			}
			if len(block) != s.channels {
				return written * s.channels, fmt.Errorf("%w: frame has %d channels, stream has %d",
					audio.ErrInvalidBuffer, len(block), s.channels)
			}
			s.block, s.pos = block, 0
			continue
		}

		frames := min(want-written, len(s.block[0])-s.pos)
		for f := range frames {
			for c := range s.channels {
				dst[(written+f)*s.channels+c] = utils.IntToFloat32(int(s.block[c][s.pos+f]), s.bitDepth)
			}
		}
		written += frames
		s.pos += frames
	}

	if written == 0 && s.eof {
		return 0, io.EOF
	}

	return written * s.channels, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	src, err := newSource(streamReader{stream: stream},
		int(info.SampleRate), int(info.NChannels), int(info.BitsPerSample))
	if err != nil {
		_ = stream.Close()
		return nil, err
	}

	return src, nil
}

// newSource validates the stream parameters. Bit depths other than 8, 16,
// 24 and 32 are rejected.
func newSource(dec blockReader, sampleRate, channels, bitDepth int) (*source, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if channels <= 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d channels at %d Hz", audio.ErrInvalidBuffer, channels, sampleRate)
	}

	return &source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}, nil
}
