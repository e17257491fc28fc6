// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/utils"
)

// HeaderSize is the size of the canonical RIFF/WAVE header written before
// the samples.
const HeaderSize = 44

const (
	bitsPerSample = 16
	bytesPerFrame = bitsPerSample / 8
	writeChunk    = 8192 // samples per Write call
)

// header builds the 44-byte header of a 16-bit PCM file.
func header(sampleRate, channels, dataSize int) []byte {
	h := make([]byte, HeaderSize)

	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], uint32(36+dataSize))
	copy(h[8:12], "WAVE")

	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16)
	binary.LittleEndian.PutUint16(h[20:22], formatPCM)
	binary.LittleEndian.PutUint16(h[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(h[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(sampleRate*channels*bytesPerFrame))
	binary.LittleEndian.PutUint16(h[32:34], uint16(channels*bytesPerFrame))
	binary.LittleEndian.PutUint16(h[34:36], bitsPerSample)

	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], uint32(dataSize))

	return h
}

// WriteWAV16 writes interleaved 16-bit samples as a PCM WAV file.
// len(samples) must be a multiple of channels.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels <= 0 {
		return ErrInvalidChannelCount
	}
	if len(samples)%channels != 0 {
		return ErrSampleCountNotAligned
	}

	if _, err := w.Write(header(sampleRate, channels, len(samples)*bytesPerFrame)); err != nil {
		return fmt.Errorf("%w", err)
	}

	return writeSamples(w, len(samples), func(i int) int16 { return samples[i] })
}

// Encode writes buf as a 16-bit PCM WAV file: the 44-byte header followed by
// the frames interleaved in channel order. Samples are converted with
// utils.Float32ToInt16, so values outside [-1, 1] are clamped.
func Encode(w io.Writer, buf *audio.Buffer) error {
	if buf == nil {
		return ErrNilBuffer
	}

	channels := buf.NumChannels()
	n := buf.Len() * channels

	if _, err := w.Write(header(buf.SampleRate(), channels, n*bytesPerFrame)); err != nil {
		return fmt.Errorf("%w", err)
	}

	return writeSamples(w, n, func(i int) int16 {
		return utils.Float32ToInt16(buf.Sample(i%channels, i/channels))
	})
}

// writeSamples writes n little-endian int16 samples, sample(i) being the
// i-th in interleaved order, in chunks of writeChunk samples.
func writeSamples(w io.Writer, n int, sample func(i int) int16) error {
	if n == 0 {
		return nil
	}

	out := make([]byte, min(n, writeChunk)*bytesPerFrame)
	for from := 0; from < n; from += writeChunk {
		to := min(from+writeChunk, n)
		chunk := out[:(to-from)*bytesPerFrame]

		for i := from; i < to; i++ {
			binary.LittleEndian.PutUint16(chunk[(i-from)*bytesPerFrame:], uint16(sample(i)))
		}

		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// EncodeBytes is Encode into memory.
func EncodeBytes(buf *audio.Buffer) ([]byte, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}

	out := bytes.NewBuffer(make([]byte, 0, HeaderSize+buf.Len()*buf.NumChannels()*bytesPerFrame))
	if err := Encode(out, buf); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
