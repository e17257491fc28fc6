// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrUnsupportedBitDepth   = errors.New("unsupported WAV bit depth")
	ErrNotPCM                = errors.New("only PCM WAV is supported")
	ErrInvalidChannelCount   = errors.New("invalid channel count")
	ErrSampleCountNotAligned = errors.New("sample count is not a multiple of the channel count")
	ErrNilBuffer             = errors.New("nil sample buffer")
)
