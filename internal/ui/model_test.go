// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/internal/audiotest"
	"github.com/ik5/audtrim/session"
)

func newTestModel(t *testing.T, outputPath string) model {
	t.Helper()

	buf, err := audio.FromChannels(1000, audiotest.Channels(2, 10000, audiotest.Sine(1000, 5)))
	if err != nil {
		t.Fatal(err)
	}

	s := session.New()
	if err := s.Load(buf); err != nil {
		t.Fatal(err)
	}

	return newModel(Options{Session: s, OutputPath: outputPath, Step: 1})
}

func press(t *testing.T, m model, keys ...tea.KeyMsg) model {
	t.Helper()

	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(model)
	}

	return m
}

var (
	keyLeft       = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight      = tea.KeyMsg{Type: tea.KeyRight}
	keyShiftLeft  = tea.KeyMsg{Type: tea.KeyShiftLeft}
	keyShiftRight = tea.KeyMsg{Type: tea.KeyShiftRight}
	keySpace      = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModel(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "")
	if m.step != 1 || m.width != defaultWidth {
		t.Errorf("step = %v, width = %d", m.step, m.width)
	}
	if !strings.Contains(m.status, "10000 frames") {
		t.Errorf("status = %q", m.status)
	}

	if got := newModel(Options{Session: session.New()}).step; got != defaultStep {
		t.Errorf("default step = %v, want %v", got, defaultStep)
	}
}

func TestSelectionKeys(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "")

	m = press(t, m, keyRight, keyRight, keyShiftLeft)
	if sel := m.sess.Selection(); sel != (session.Selection{Start: 2, End: 9}) {
		t.Errorf("Selection() = %+v, want {2 9}", sel)
	}

	m = press(t, m, keyLeft, keyLeft, keyLeft, keyShiftRight, keyShiftRight)
	if sel := m.sess.Selection(); sel != (session.Selection{Start: 0, End: 10}) {
		t.Errorf("Selection() = %+v, want clamped {0 10}", sel)
	}
}

func TestSelectionEdgesDoNotCross(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "")

	// Selection {0 10}; pull the end down to 2 and push the start past it.
	m = press(t, m, keyShiftLeft, keyShiftLeft, keyShiftLeft, keyShiftLeft,
		keyShiftLeft, keyShiftLeft, keyShiftLeft, keyShiftLeft, keyRight, keyRight, keyRight)
	if sel := m.sess.Selection(); sel != (session.Selection{Start: 2, End: 2}) {
		t.Fatalf("Selection() = %+v, want {2 2}", sel)
	}

	// The start keys still move the start edge.
	m = press(t, m, keyLeft)
	if sel := m.sess.Selection(); sel != (session.Selection{Start: 1, End: 2}) {
		t.Errorf("after left Selection() = %+v, want {1 2}", sel)
	}

	// The end keys cannot pull the end below the start.
	m = press(t, m, keyShiftLeft, keyShiftLeft)
	if sel := m.sess.Selection(); sel != (session.Selection{Start: 1, End: 1}) {
		t.Errorf("after shift+left Selection() = %+v, want {1 1}", sel)
	}

	m = press(t, m, keyShiftRight)
	if sel := m.sess.Selection(); sel != (session.Selection{Start: 1, End: 2}) {
		t.Errorf("after shift+right Selection() = %+v, want {1 2}", sel)
	}
}

func TestEditKeys(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "")

	m = press(t, m, keyRight, keyShiftLeft, keySpace)
	if got := m.sess.Current().Len(); got != 8000 {
		t.Fatalf("after cut Len() = %d, want 8000", got)
	}
	if m.status != "cut to 00:01.0-00:09.0" {
		t.Errorf("status = %q", m.status)
	}

	m = press(t, m, runeKey('u'))
	if got := m.sess.Current().Len(); got != 10000 {
		t.Errorf("after undo Len() = %d, want 10000", got)
	}

	m = press(t, m, runeKey('r'))
	if got := m.sess.Current().Len(); got != 8000 {
		t.Errorf("after redo Len() = %d, want 8000", got)
	}

	m = press(t, m, runeKey('r'))
	if m.err != nil || m.status != "nothing to redo" {
		t.Errorf("status = %q, err = %v", m.status, m.err)
	}

	m = press(t, m, runeKey('x'))
	if m.sess.Current() != nil {
		t.Error("remove kept the audio")
	}
	if !strings.Contains(m.View(), "(no audio)") {
		t.Error("View() does not show the empty state")
	}

	m = press(t, m, runeKey('x'))
	if m.err == nil {
		t.Error("second remove did not report an error")
	}
	if !strings.Contains(m.View(), "error: no audio loaded") {
		t.Errorf("View() = %q", m.View())
	}
}

func TestQuit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "")
	for _, k := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%v returned no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v did not quit", k)
		}
	}
}

func TestSave(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	m := newTestModel(t, path)

	_, cmd := m.Update(runeKey('s'))
	if cmd == nil {
		t.Fatal("save returned no command")
	}

	msg := cmd()
	next, _ := m.Update(msg)
	m = next.(model)

	if m.err != nil {
		t.Fatalf("save error = %v", m.err)
	}
	if m.status != "saved "+path+" (40044 bytes)" {
		t.Errorf("status = %q", m.status)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("RIFF")) || len(data) != 40044 {
		t.Errorf("saved %d bytes", len(data))
	}
}

func TestSave_Error(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, filepath.Join(t.TempDir(), "missing", "out.wav"))

	_, cmd := m.Update(runeKey('s'))
	next, _ := m.Update(cmd())
	if next.(model).err == nil {
		t.Error("save to a missing directory did not fail")
	}
}

func TestWindowSize(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 84, Height: 20})
	if got := next.(model).width; got != 80 {
		t.Errorf("width = %d, want 80", got)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 2})
	if got := next.(model).width; got != 10 {
		t.Errorf("width = %d, want 10", got)
	}
}

func TestView(t *testing.T) {
	t.Parallel()

	view := newTestModel(t, "").View()

	for _, want := range []string{"audtrim", "loaded", "selection 00:00.0-00:10.0", "space cut"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "00:00.0"},
		{-5, "00:00.0"},
		{1.25, "00:01.2"},
		{65.5, "01:05.5"},
		{3600, "60:00.0"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.in); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLevel(t *testing.T) {
	t.Parallel()

	for amp, want := range map[float32]int{0: 0, 0.5: 4, 1: 8, 2: 8, -1: 0} {
		if got := level(amp); got != want {
			t.Errorf("level(%v) = %d, want %d", amp, got, want)
		}
	}
}
