// SPDX-License-Identifier: EPL-2.0

package export

import (
	"fmt"
	"strings"
)

// Format names an export container.
type Format string

const (
	WAV Format = "wav"

	// MP3 is recognized so it can be rejected explicitly; there is no MP3
	// encoder.
	MP3 Format = "mp3"
)

// ParseFormat maps a name or file extension ("wav", ".WAV", "wave") to a
// Format.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "wav", "wave":
		return WAV, nil
	case "mp3":
		return MP3, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Ext is the file extension without the dot.
func (f Format) Ext() string { return string(f) }

func (f Format) MIMEType() string {
	switch f {
	case WAV:
		return "audio/wav"
	case MP3:
		return "audio/mpeg"
	}

	return "application/octet-stream"
}

func (f Format) String() string { return string(f) }
