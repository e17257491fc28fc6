// SPDX-License-Identifier: EPL-2.0

// Package ui is the interactive terminal editor.
package ui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/export"
	"github.com/ik5/audtrim/session"
)

const (
	defaultStep  = 0.1 // seconds per arrow key press
	defaultWidth = 60
)

var levels = []rune(" ▁▂▃▄▅▆▇█")

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	waveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	selectedWaveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("10"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Options configures the editor.
type Options struct {
	Session    *session.Session
	OutputPath string
	Export     []export.Option

	// Step is how far an arrow key moves a selection edge, in seconds.
	Step float64
}

// savedMsg reports the result of a save command.
type savedMsg struct {
	path  string
	bytes int
	err   error
}

type model struct {
	sess       *session.Session
	outputPath string
	exportOpts []export.Option
	step       float64

	width  int
	status string
	err    error
}

func newModel(opts Options) model {
	step := opts.Step
	if step <= 0 {
		step = defaultStep
	}

	return model{
		sess:       opts.Session,
		outputPath: opts.OutputPath,
		exportOpts: opts.Export,
		step:       step,
		width:      defaultWidth,
		status:     opts.Session.Current().String(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = max(msg.Width-4, 10)
	case savedMsg:
		m.setResult(fmt.Sprintf("saved %s (%d bytes)", msg.path, msg.bytes), msg.err)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel := m.sess.Selection()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left":
		m.sess.SetSelection(sel.Start-m.step, sel.End)
	case "right":
		m.sess.SetSelection(min(sel.Start+m.step, sel.End), sel.End)
	case "shift+left":
		m.sess.SetSelection(sel.Start, max(sel.End-m.step, sel.Start))
	case "shift+right":
		m.sess.SetSelection(sel.Start, sel.End+m.step)
	case " ", "space":
		m.setResult("cut to "+formatRange(sel), m.sess.ApplyCutSelection())
	case "x":
		m.setResult("removed audio", m.sess.ApplyRemove())
	case "u":
		m.setResult("undo", m.sess.Undo())
	case "r":
		m.setResult("redo", m.sess.Redo())
	case "s":
		return m, m.save()
	}

	return m, nil
}

func (m *model) setResult(ok string, err error) {
	m.err = nil

	switch {
	case err == nil:
		m.status = ok
	case session.IsHistoryUnderflow(err):
		m.status = err.Error()
	default:
		m.err = err
	}
}

// save exports the current audio and writes it to the output path.
func (m model) save() tea.Cmd {
	sess, path, opts := m.sess, m.outputPath, m.exportOpts

	return func() tea.Msg {
		res, err := sess.Export(export.WAV, opts...)
		if err != nil {
			return savedMsg{path: path, err: err}
		}
		if path == "" {
			path = res.Filename
		}

		if err := os.WriteFile(path, res.Data, 0o644); err != nil {
			return savedMsg{path: path, err: fmt.Errorf("writing %s: %w", path, err)}
		}

		return savedMsg{path: path, bytes: len(res.Data)}
	}
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("audtrim") + "  " + m.sess.State().String() + "\n\n")
	b.WriteString(m.renderWaveform() + "\n")

	sel := m.sess.Selection()
	fmt.Fprintf(&b, "selection %s  cursor %s  length %s\n\n",
		formatRange(sel), FormatTime(m.sess.Position()), FormatTime(sel.Duration()))

	if m.err != nil {
		b.WriteString(errorStyle.Render("error: "+m.err.Error()) + "\n")
	} else {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}

	b.WriteString(helpStyle.Render("←/→ start  shift+←/→ end  space cut  x remove  u undo  r redo  s save  q quit"))

	return b.String()
}

// renderWaveform draws one column per peak bin and highlights the columns
// inside the selection.
func (m model) renderWaveform() string {
	buf := m.sess.Current()
	peaks := audio.Peaks(buf, m.width)
	if len(peaks) == 0 {
		return waveStyle.Render("(no audio)")
	}

	sel := m.sess.Selection()
	duration := buf.Duration()

	var b strings.Builder
	for i, p := range peaks {
		amp := max(-p.Min, p.Max)
		r := string(levels[level(amp)])

		t := (float64(i) + 0.5) * duration / float64(len(peaks))
		if t >= sel.Start && t <= sel.End {
			b.WriteString(selectedWaveStyle.Render(r))
		} else {
			b.WriteString(waveStyle.Render(r))
		}
	}

	return b.String()
}

// level maps an amplitude in [0, 1] to an index into levels.
func level(amp float32) int {
	top := len(levels) - 1
	i := int(amp * float32(top))

	return min(max(i, 0), top)
}

// FormatTime formats seconds as mm:ss.d. Negative values print as zero.
func FormatTime(seconds float64) string {
	tenths := int(max(seconds, 0) * 10)

	return fmt.Sprintf("%02d:%02d.%d", tenths/600, tenths/10%60, tenths%10)
}

func formatRange(s session.Selection) string {
	return FormatTime(s.Start) + "-" + FormatTime(s.End)
}

// Run opens the editor on opts.Session and blocks until the user quits.
func Run(opts Options) error {
	if opts.Session == nil {
		return errors.New("ui: nil session")
	}

	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
