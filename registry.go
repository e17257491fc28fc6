// SPDX-License-Identifier: EPL-2.0

package audtrim

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/edit"
	"github.com/ik5/audtrim/formats/aiff"
	"github.com/ik5/audtrim/formats/flac"
	"github.com/ik5/audtrim/formats/mp3"
	"github.com/ik5/audtrim/formats/vorbis"
	"github.com/ik5/audtrim/formats/wav"
)

var ErrUnknownFormat = errors.New("unknown audio format")

// DefaultRegistry returns a registry with every built-in decoder, keyed by
// format name and common file extensions.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()

	for format, dec := range map[string]audio.Decoder{
		"wav":  wav.Decoder{},
		"wave": wav.Decoder{},
		"aif":  aiff.Decoder{},
		"aiff": aiff.Decoder{},
		"mp3":  mp3.Decoder{},
		"ogg":  vorbis.Decoder{},
		"oga":  vorbis.Decoder{},
		"flac": flac.Decoder{},
	} {
		r.Register(format, dec)
	}

	return r
}

var defaultRegistry = DefaultRegistry()

// Decode reads a whole stream of the given format into a Buffer.
func Decode(r io.Reader, format string) (*audio.Buffer, error) {
	return decodeWith(defaultRegistry, r, format)
}

func decodeWith(reg *audio.Registry, r io.Reader, format string) (*audio.Buffer, error) {
	dec, ok := reg.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}

	return buf, nil
}

// FormatOf returns the registry key for a file name, taken from its
// extension.
func FormatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Open decodes the file at path. The format comes from the file extension.
func Open(path string) (*audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	return Decode(f, FormatOf(path))
}

// Trim decodes r, keeps [start, end) seconds and writes the result to w as
// 16-bit PCM WAV.
func Trim(r io.Reader, format string, start, end float64, w io.Writer) error {
	buf, err := Decode(r, format)
	if err != nil {
		return err
	}

	cut, err := edit.Cut(buf, start, end)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := wav.Encode(w, cut); err != nil {
		return fmt.Errorf("writing wav: %w", err)
	}

	return nil
}
