// SPDX-License-Identifier: EPL-2.0

// Package wav reads PCM WAV files and writes 16-bit PCM WAV files.
//
// # Decoding
//
// Decoder wraps github.com/go-audio/wav and accepts PCM data at 8, 16, 24
// or 32 bits per sample with any channel count:
//
//	src, err := wav.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(src)
//
// Samples come out as float32 in [-1, 1). Inputs that do not seek are read
// into memory first, because go-audio needs an io.ReadSeeker.
//
// # Encoding
//
// Encode writes a Buffer as a canonical 44-byte header followed by
// interleaved little-endian int16 frames:
//
//	offset  size  field
//	0       4     "RIFF"
//	4       4     36 + data size
//	8       4     "WAVE"
//	12      4     "fmt "
//	16      4     16
//	20      2     1 (PCM)
//	22      2     channels
//	24      4     sample rate
//	28      4     sample rate * channels * 2
//	32      2     channels * 2
//	34      2     16
//	36      4     "data"
//	40      4     data size
//
// Float samples are clamped to [-1, 1], scaled by 32768 when negative and
// 32767 otherwise, and truncated. WriteWAV16 writes samples that are
// already int16.
//
// This is the only container the module encodes.
package wav
