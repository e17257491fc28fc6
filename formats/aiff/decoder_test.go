// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audtrim/audio"
)

// mockAiffReader serves samples the way aiff.Decoder.PCMBuffer does.
type mockAiffReader struct {
	format  *goaudio.Format
	samples []int
	err     error
}

func (m *mockAiffReader) Format() *goaudio.Format { return m.format }

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.samples) == 0 {
		return 0, nil
	}

	n := copy(buf.Data, m.samples)
	m.samples = m.samples[n:]

	return n, nil
}

func newTestSource(bitDepth, channels int, samples ...int) *source {
	return &source{
		dec: &mockAiffReader{
			format:  &goaudio.Format{NumChannels: channels, SampleRate: 44100},
			samples: samples,
		},
		sampleRate: 44100,
		channels:   channels,
		bitDepth:   bitDepth,
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("This is not AIFF data")},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := (Decoder{}).Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}

func TestSource_BitDepthNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		sample   int
		want     float32
	}{
		{8, 64, 0.5},
		{8, -128, -1},
		{16, 16384, 0.5},
		{16, -32768, -1},
		{24, 4194304, 0.5},
		{32, -1073741824, -0.5},
	}

	for _, tt := range tests {
		src := newTestSource(tt.bitDepth, 1, tt.sample)
		dst := make([]float32, 4)

		n, err := src.ReadSamples(dst)
		if err != nil || n != 1 {
			t.Fatalf("%d-bit: ReadSamples() = %d, %v", tt.bitDepth, n, err)
		}
		if dst[0] != tt.want {
			t.Errorf("%d-bit: %d -> %v, want %v", tt.bitDepth, tt.sample, dst[0], tt.want)
		}
	}
}

func TestSource_ReadAll(t *testing.T) {
	t.Parallel()

	b, err := audio.ReadAll(newTestSource(16, 2, 0, 16384, -16384, 8192))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if b.Len() != 2 || b.NumChannels() != 2 {
		t.Fatalf("decoded %v, want 2 frames of stereo", b)
	}
	if b.Sample(1, 0) != 0.5 || b.Sample(0, 1) != -0.5 {
		t.Errorf("samples = %v", b.Interleaved())
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	src := newTestSource(16, 1)
	if n, err := src.ReadSamples(make([]float32, 8)); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() = %d, %v; want 0, EOF", n, err)
	}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src := newTestSource(16, 1)
	src.dec.(*mockAiffReader).err = io.ErrUnexpectedEOF

	if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestSource_BufSize(t *testing.T) {
	t.Parallel()

	src := newTestSource(16, 1, 1, 2, 3)
	if got := src.BufSize(); got != 4096 {
		t.Errorf("BufSize() before read = %d, want 4096", got)
	}

	_, _ = src.ReadSamples(make([]float32, 512))
	if got := src.BufSize(); got != 512 {
		t.Errorf("BufSize() after read = %d, want 512", got)
	}
}

func TestSupportedBitDepth(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{8, 16, 24, 32} {
		if !supportedBitDepth(bits) {
			t.Errorf("supportedBitDepth(%d) = false", bits)
		}
	}
	for _, bits := range []int{0, 4, 12, 64} {
		if supportedBitDepth(bits) {
			t.Errorf("supportedBitDepth(%d) = true", bits)
		}
	}
}
