// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"

	"github.com/ik5/audtrim/internal/audiotest"
)

func TestNewBuffer(t *testing.T) {
	t.Parallel()

	b, err := NewBuffer(2, 44100, 88200)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	if b.NumChannels() != 2 || b.SampleRate() != 44100 || b.Len() != 88200 {
		t.Errorf("NewBuffer() = %v, want 2ch 44100Hz 88200 frames", b)
	}

	if b.Duration() != 2.0 {
		t.Errorf("Duration() = %v, want 2.0", b.Duration())
	}

	for c := range 2 {
		if b.Sample(c, 1000) != 0 {
			t.Errorf("channel %d not silent", c)
		}
	}
}

func TestNewBuffer_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                       string
		channels, sampleRate, size int
	}{
		{"zero channels", 0, 44100, 10},
		{"negative channels", -1, 44100, 10},
		{"zero sample rate", 1, 0, 10},
		{"negative length", 1, 44100, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := NewBuffer(tt.channels, tt.sampleRate, tt.size)
			if !errors.Is(err, ErrInvalidBuffer) {
				t.Errorf("NewBuffer() error = %v, want ErrInvalidBuffer", err)
			}
			if b != nil {
				t.Error("NewBuffer() returned a buffer on error")
			}
		})
	}
}

func TestNewBuffer_ZeroLength(t *testing.T) {
	t.Parallel()

	b, err := NewBuffer(1, 8000, 0)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	if b.Len() != 0 || b.Duration() != 0 {
		t.Errorf("zero length buffer = %v", b)
	}
}

func TestFromChannels_Copies(t *testing.T) {
	t.Parallel()

	data := [][]float32{{0.1, 0.2, 0.3}, {-0.1, -0.2, -0.3}}

	b, err := FromChannels(8000, data)
	if err != nil {
		t.Fatalf("FromChannels() error = %v", err)
	}

	data[0][0] = 0.9
	if b.Sample(0, 0) != 0.1 {
		t.Error("FromChannels() shares memory with its input")
	}

	out := b.Channel(1)
	out[2] = 0.9
	if b.Sample(1, 2) != -0.3 {
		t.Error("Channel() exposes internal memory")
	}
}

func TestFromChannels_MismatchedLength(t *testing.T) {
	t.Parallel()

	_, err := FromChannels(8000, [][]float32{{1, 2, 3}, {1, 2}})
	if !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("FromChannels() error = %v, want ErrInvalidBuffer", err)
	}

	_, err = FromChannels(8000, nil)
	if !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("FromChannels(nil) error = %v, want ErrInvalidBuffer", err)
	}
}

func TestFromInterleaved(t *testing.T) {
	t.Parallel()

	b, err := FromInterleaved(2, 8000, []float32{1, -1, 2, -2, 3, -3})
	if err != nil {
		t.Fatalf("FromInterleaved() error = %v", err)
	}

	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}

	for i, want := range []float32{1, 2, 3} {
		if b.Sample(0, i) != want || b.Sample(1, i) != -want {
			t.Errorf("frame %d = (%v, %v), want (%v, %v)", i, b.Sample(0, i), b.Sample(1, i), want, -want)
		}
	}

	inter := b.Interleaved()
	for i, want := range []float32{1, -1, 2, -2, 3, -3} {
		if inter[i] != want {
			t.Errorf("Interleaved()[%d] = %v, want %v", i, inter[i], want)
		}
	}

	if _, err := FromInterleaved(2, 8000, []float32{1, 2, 3}); !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("FromInterleaved(odd) error = %v, want ErrInvalidBuffer", err)
	}
}

func TestBuffer_Slice(t *testing.T) {
	t.Parallel()

	b, _ := FromChannels(100, audiotest.Channels(2, 100, audiotest.Ramp()))

	tests := []struct {
		name     string
		from, n  int
		wantLen  int
		wantHead int
	}{
		{"middle", 10, 20, 20, 10},
		{"clamped tail", 90, 50, 10, 90},
		{"negative start", -5, 10, 10, 0},
		{"past end", 200, 10, 0, 0},
		{"empty", 10, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := b.Slice(tt.from, tt.n)
			if s.Len() != tt.wantLen {
				t.Fatalf("Slice(%d, %d).Len() = %d, want %d", tt.from, tt.n, s.Len(), tt.wantLen)
			}
			if s.NumChannels() != 2 || s.SampleRate() != 100 {
				t.Errorf("Slice() changed format: %v", s)
			}
			if s.Len() > 0 && s.Sample(1, 0) != b.Sample(1, tt.wantHead) {
				t.Errorf("Slice() first sample = %v, want %v", s.Sample(1, 0), b.Sample(1, tt.wantHead))
			}
		})
	}
}

func TestBuffer_Equal(t *testing.T) {
	t.Parallel()

	a, _ := FromChannels(100, audiotest.Channels(2, 50, audiotest.Ramp()))
	b, _ := FromChannels(100, audiotest.Channels(2, 50, audiotest.Ramp()))
	c, _ := FromChannels(200, audiotest.Channels(2, 50, audiotest.Ramp()))
	d := a.Slice(0, 49)

	var nilBuf *Buffer

	if !a.Equal(b) {
		t.Error("identical buffers not equal")
	}
	if a.Equal(c) || a.Equal(d) || a.Equal(nil) {
		t.Error("different buffers reported equal")
	}
	if !nilBuf.Equal(nil) {
		t.Error("nil buffers not equal")
	}
}

func TestBuffer_String(t *testing.T) {
	t.Parallel()

	b, _ := NewBuffer(2, 44100, 44100)
	if got, want := b.String(), "2ch 44100Hz 44100 frames (1.000s)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	var nilBuf *Buffer
	if got := nilBuf.String(); got != "<no audio>" {
		t.Errorf("nil String() = %q", got)
	}
}

func BenchmarkBuffer_Slice(b *testing.B) {
	buf, _ := FromChannels(44100, audiotest.Channels(2, 44100*10, audiotest.Ramp()))

	b.ReportAllocs()

	for b.Loop() {
		_ = buf.Slice(44100, 44100*5)
	}
}
