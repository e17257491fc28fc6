// SPDX-License-Identifier: EPL-2.0

package session

import (
	"io"
	"log"

	"github.com/ik5/audtrim/audio"
)

// Observer receives session events. Either field may be nil.
//
// OnReady is called with the buffer to render after every load or edit; a
// nil buffer means there is nothing to render. OnTimeUpdate is called with
// the cursor position in seconds. Both run with the session lock held and
// must not call back into the Session.
type Observer struct {
	OnReady      func(*audio.Buffer)
	OnTimeUpdate func(seconds float64)
}

type Option func(*Session)

// WithLogger logs session events to l. By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(s *Session) { s.observer = o }
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
