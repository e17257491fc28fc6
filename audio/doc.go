// SPDX-License-Identifier: EPL-2.0

// Package audio holds decoded audio and the streaming stages around it.
//
// # Buffers
//
// A Buffer is fully decoded audio, one float32 slice per channel. Buffers
// are immutable: edits build new ones, so a Buffer can be the current state
// and an undo snapshot at the same time.
//
//	buf, _ := audio.FromChannels(44100, [][]float32{left, right})
//	head := buf.Slice(0, 44100)
//
// # Sources
//
// A Source streams interleaved samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders return Sources, and ReadAll turns one into a Buffer. A Buffer
// streams back out through its Source method.
//
// # Pipeline
//
// Resampler changes the sample rate with cubic interpolation, low-pass
// filtering when it downsamples. MonoMixer averages all channels into one.
// Both are Sources and chain freely:
//
//	src := audio.NewMonoMixer(audio.NewResampler(buf.Source(), 16000))
//	out, err := audio.ReadAll(src)
//
// # Registry
//
// A Registry maps format names to Decoders. Keys are case-insensitive:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("WAV")
//
// # Waveforms
//
// Peaks reduces a Buffer to min/max pairs for drawing.
package audio
