// SPDX-License-Identifier: EPL-2.0

// Package export turns an audio.Buffer into file bytes.
//
// The buffer can be downmixed and resampled on the way out; both steps reuse
// the streaming audio.MonoMixer and audio.Resampler. Only 16-bit PCM WAV is
// written.
package export

import (
	"fmt"

	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/formats/wav"
)

const defaultBaseName = "audio"

// Result is an encoded file ready to be written or downloaded.
type Result struct {
	Data     []byte
	Filename string
	MIMEType string
}

type options struct {
	sampleRate int
	mono       bool
	baseName   string
}

type Option func(*options)

// WithSampleRate resamples the output to hz. Zero keeps the buffer's rate.
func WithSampleRate(hz int) Option {
	return func(o *options) { o.sampleRate = hz }
}

// WithMono downmixes the output to one channel.
func WithMono() Option {
	return func(o *options) { o.mono = true }
}

// WithBaseName sets the suggested file name without extension.
func WithBaseName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.baseName = name
		}
	}
}

// Encode renders buf in format. The buffer is not modified.
func Encode(buf *audio.Buffer, format Format, opts ...Option) (Result, error) {
	if buf == nil {
		return Result{}, ErrEmptyBuffer
	}

	o := options{baseName: defaultBaseName}
	for _, opt := range opts {
		opt(&o)
	}

	if format != WAV {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if o.sampleRate < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidSampleRate, o.sampleRate)
	}

	out, err := transform(buf, o)
	if err != nil {
		return Result{}, err
	}

	data, err := wav.EncodeBytes(out)
	if err != nil {
		return Result{}, fmt.Errorf("encoding %s: %w", format, err)
	}

	return Result{
		Data:     data,
		Filename: o.baseName + "." + format.Ext(),
		MIMEType: format.MIMEType(),
	}, nil
}

// transform runs the optional downmix and resample stages.
func transform(buf *audio.Buffer, o options) (*audio.Buffer, error) {
	resample := o.sampleRate != 0 && o.sampleRate != buf.SampleRate()
	downmix := o.mono && buf.NumChannels() > 1
	if !resample && !downmix {
		return buf, nil
	}

	src := buf.Source()
	if downmix {
		src = audio.NewMonoMixer(src)
	}
	if resample {
		src = audio.NewResampler(src, o.sampleRate)
	}

	out, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("transforming audio: %w", err)
	}

	return out, nil
}
