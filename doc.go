// SPDX-License-Identifier: EPL-2.0

// Package audtrim trims audio files in memory.
//
// A file is decoded once into an immutable audio.Buffer. Edits produce new
// buffers, so every earlier state stays valid and undo is a pointer swap.
// The result is written as 16-bit PCM WAV.
//
// # Supported Formats
//
// Input formats are registered in DefaultRegistry:
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - AIFF (PCM 8/16/24/32-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - FLAC via formats/flac
//
// Output is WAV only; see the export package.
//
// # Quick Start
//
// Keep one second of a file:
//
//	in, _ := os.Open("take.mp3")
//	out, _ := os.Create("take.wav")
//	err := audtrim.Trim(in, "mp3", 1.0, 2.0, out)
//
// # Editing Sessions
//
// For interactive editing with undo and redo, use a session.Session:
//
//	buf, _ := audtrim.Open("take.flac")
//
//	s := session.New()
//	_ = s.Load(buf)
//	_ = s.ApplyCut(0.5, 1.5)
//	_ = s.Undo()
//	_ = s.Redo()
//
//	res, _ := s.Export(export.WAV)
//	_ = os.WriteFile(res.Filename, res.Data, 0o644)
//
// # Audio Processing Pipeline
//
// Buffers can be streamed through the audio package pipeline stages:
//
//	src := audio.NewMonoMixer(audio.NewResampler(buf.Source(), 16000))
//	mono, _ := audio.ReadAll(src)
//
// See the individual subpackages for more detailed documentation.
package audtrim
