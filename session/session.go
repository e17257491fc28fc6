// SPDX-License-Identifier: EPL-2.0

// Package session holds the state of one editing session: the current
// buffer, the undo/redo history, the selection and the cursor.
//
// A Session is safe for concurrent use. Edits run synchronously; decoding can
// run in the background with LoadAsync.
package session

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/edit"
	"github.com/ik5/audtrim/export"
)

type State int

const (
	// Empty holds no audio and no history.
	Empty State = iota
	// Loaded holds audio with an empty history.
	Loaded
	// Edited has at least one undoable or redoable edit.
	Edited
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Loaded:
		return "loaded"
	case Edited:
		return "edited"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// Selection is a time range in seconds with Start <= End.
type Selection struct {
	Start, End float64
}

func (s Selection) Duration() float64 { return s.End - s.Start }

type Session struct {
	mu sync.Mutex

	id       string
	log      *log.Logger
	observer Observer

	current   *audio.Buffer
	history   edit.History
	selection Selection
	position  float64

	// loaded is false only in the Empty state. current alone cannot tell,
	// since a removed buffer is nil too.
	loaded bool

	// generation is bumped by every successful Load, every LoadAsync start
	// and every Close; a LoadAsync result is only applied if the generation
	// did not move.
	generation uint64
}

func New(opts ...Option) *Session {
	s := &Session{
		id:  uuid.New().String(),
		log: discardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ID is a random identifier, useful to tell sessions apart in logs.
func (s *Session) ID() string { return s.id }

// Load installs buf as the current audio. The session must be Empty.
func (s *Session) Load(buf *audio.Buffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(buf); err != nil {
		return err
	}
	s.generation++

	return nil
}

func (s *Session) load(buf *audio.Buffer) error {
	if buf == nil {
		return ErrEmptyBuffer
	}
	if s.loaded {
		return ErrAlreadyLoaded
	}

	s.loaded = true
	s.current = buf
	s.history = edit.History{}
	s.log.Printf("session %s: loaded %v", s.id, buf)
	s.reset()

	return nil
}

// LoadFrom decodes r with dec and loads the result. Decode failures wrap
// ErrDecode and leave the session Empty. The source is closed.
func (s *Session) LoadFrom(ctx context.Context, r io.Reader, dec audio.Decoder) error {
	buf, err := decode(ctx, r, dec)
	if err != nil {
		s.log.Printf("session %s: %v", s.id, err)
		return err
	}

	return s.Load(buf)
}

func decode(ctx context.Context, r io.Reader, dec audio.Decoder) (*audio.Buffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return buf, nil
}

// LoadAsync runs fn on a new goroutine and loads its result. Only the most
// recent load wins: if another load or Close happens first, the result is
// dropped and ErrSuperseded is sent. Errors from fn wrap ErrDecode.
//
// The returned channel receives exactly one value and is then closed.
func (s *Session) LoadAsync(ctx context.Context, fn func(context.Context) (*audio.Buffer, error)) <-chan error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	done := make(chan error, 1)

	go func() {
		defer close(done)

		buf, err := fn(ctx)
		if err == nil {
			err = ctx.Err()
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		if gen != s.generation {
			s.log.Printf("session %s: dropping stale load %d", s.id, gen)
			done <- ErrSuperseded
			return
		}
		if err != nil {
			s.log.Printf("session %s: load failed: %v", s.id, err)
			done <- fmt.Errorf("%w: %w", ErrDecode, err)
			return
		}

		done <- s.load(buf)
	}()

	return done
}

// Close returns the session to Empty and invalidates pending loads.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.loaded = false
	s.current = nil
	s.history = edit.History{}
	s.reset()

	return nil
}

// ApplyCut keeps only [start, end) of the current audio.
func (s *Session) ApplyCut(start, end float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cut(start, end)
}

// ApplyCutSelection cuts to the current selection.
func (s *Session) ApplyCutSelection() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cut(s.selection.Start, s.selection.End)
}

func (s *Session) cut(start, end float64) error {
	if s.current == nil {
		return ErrEmptyBuffer
	}

	next, err := edit.Cut(s.current, start, end)
	if err != nil {
		return fmt.Errorf("cutting %.3f-%.3f: %w", start, end, err)
	}

	s.commit(next)
	s.log.Printf("session %s: cut %.3f-%.3f -> %v", s.id, start, end, next)

	return nil
}

// ApplyRemove discards the current audio. It can be undone.
func (s *Session) ApplyRemove() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrEmptyBuffer
	}

	s.commit(edit.Remove(s.current))
	s.log.Printf("session %s: removed audio", s.id)

	return nil
}

// commit records the current buffer for undo and replaces it with next.
func (s *Session) commit(next *audio.Buffer) {
	s.history = s.history.Snapshot(s.current).ClearRedo()
	s.current = next
	s.reset()
}

func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, h, ok := s.history.Undo(s.current)
	if !ok {
		return ErrNothingToUndo
	}

	s.current, s.history = prev, h
	s.reset()
	s.log.Printf("session %s: undo -> %v", s.id, prev)

	return nil
}

func (s *Session) Redo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, h, ok := s.history.Redo(s.current)
	if !ok {
		return ErrNothingToRedo
	}

	s.current, s.history = next, h
	s.reset()
	s.log.Printf("session %s: redo -> %v", s.id, next)

	return nil
}

// Export encodes the current audio.
func (s *Session) Export(format export.Format, opts ...export.Option) (export.Result, error) {
	s.mu.Lock()
	buf := s.current
	s.mu.Unlock()

	if buf == nil {
		return export.Result{}, ErrEmptyBuffer
	}

	res, err := export.Encode(buf, format, opts...)
	if err != nil {
		return export.Result{}, fmt.Errorf("exporting: %w", err)
	}
	s.log.Printf("session %s: exported %s (%d bytes)", s.id, res.Filename, len(res.Data))

	return res, nil
}

// SetSelection sets the selection, clamped to the audio and ordered, and
// moves the cursor to its start.
func (s *Session) SetSelection(start, end float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start, end = s.clamp(start), s.clamp(end)
	if end < start {
		start, end = end, start
	}

	s.selection = Selection{Start: start, End: end}
	s.seek(start)
}

// Seek moves the cursor, clamped to the audio.
func (s *Session) Seek(t float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seek(s.clamp(t))
}

func (s *Session) seek(t float64) {
	s.position = t
	if s.observer.OnTimeUpdate != nil {
		s.observer.OnTimeUpdate(t)
	}
}

func (s *Session) clamp(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}

	return min(t, s.duration())
}

func (s *Session) duration() float64 {
	if s.current == nil {
		return 0
	}

	return s.current.Duration()
}

// reset selects the whole current buffer, rewinds the cursor and tells the
// observer to render.
func (s *Session) reset() {
	s.selection = Selection{End: s.duration()}
	s.position = 0

	if s.observer.OnReady != nil {
		s.observer.OnReady(s.current)
	}
	if s.observer.OnTimeUpdate != nil {
		s.observer.OnTimeUpdate(0)
	}
}

// Current returns the current audio, or nil. The buffer is immutable and may
// be kept.
func (s *Session) Current() *audio.Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

func (s *Session) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selection
}

// Position is the cursor in seconds.
func (s *Session) Position() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.position
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case !s.loaded:
		return Empty
	case s.history.Empty():
		return Loaded
	default:
		return Edited
	}
}

func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.history.CanUndo()
}

func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.history.CanRedo()
}
