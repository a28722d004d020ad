package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vividmap/recolor/internal/clipboard"
	"github.com/vividmap/recolor/internal/palette"
	"github.com/vividmap/recolor/internal/session"
)

// maxVisibleResults limits how many past conversions stay on screen.
const maxVisibleResults = 8

// resultLine is one processed input shown in the session view.
type resultLine struct {
	muted string
	vivid string // Empty on a miss
}

// SessionModel is the Bubble Tea model for a remote recolor session.
// It applies the same normalize → resolve → report → copy semantics as
// the plain terminal loop; the clipboard writer is expected to reach
// the remote user's terminal (OSC 52 over the SSH stream).
type SessionModel struct {
	input    textinput.Model
	resolver palette.Resolver
	clip     clipboard.Writer
	history  session.Recorder
	logger   *log.Logger
	theme    Theme
	username string
	results  []resultLine
	width    int
	height   int
	quitting bool
}

// NewSessionModel creates a session model for one remote user.
// history and logger may be nil.
func NewSessionModel(resolver palette.Resolver, clip clipboard.Writer, history session.Recorder, logger *log.Logger, username string) SessionModel {
	ti := textinput.New()
	ti.Prompt = session.Prompt
	ti.CharLimit = 64
	ti.Focus()

	return SessionModel{
		input:    ti,
		resolver: resolver,
		clip:     clip,
		history:  history,
		logger:   logger,
		theme:    DefaultTheme(),
		username: username,
	}
}

// Init initializes the session model.
func (m SessionModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit processes the current input line with the loop semantics:
// empty terminates, a hit is reported and copied, a miss is reported.
func (m SessionModel) submit() (tea.Model, tea.Cmd) {
	raw := m.input.Value()
	m.input.Reset()

	// Termination is decided before the '#' strip, same as the
	// terminal loop: a lone "#" is a lookup (and a miss), not an exit.
	if strings.TrimSpace(raw) == "" {
		m.quitting = true
		return m, tea.Quit
	}

	code := palette.Normalize(raw)

	vivid, ok := m.resolver.Resolve(code)
	if !ok {
		m.push(resultLine{muted: code})
		return m, nil
	}

	m.push(resultLine{muted: code, vivid: vivid})

	// Copy before the next prompt renders, same ordering as the
	// terminal loop. A failed copy is reported, not fatal.
	if err := m.clip.WriteText(vivid); err != nil && m.logger != nil {
		m.logger.Warn("clipboard write failed", "user", m.username, "error", err)
	}

	if m.history != nil {
		if err := m.history.Record(code, vivid); err != nil && m.logger != nil {
			m.logger.Warn("could not record conversion", "user", m.username, "error", err)
		}
	}

	return m, nil
}

// push appends a result line, keeping the visible window bounded.
func (m *SessionModel) push(line resultLine) {
	m.results = append(m.results, line)
	if len(m.results) > maxVisibleResults {
		m.results = m.results[len(m.results)-maxVisibleResults:]
	}
}

// IsQuitting reports whether the session has ended.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// View renders the session.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.theme.Title.Render("recolor"))
	b.WriteString("\n\n")

	for _, r := range m.results {
		if r.vivid == "" {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				m.theme.HistoryDim.Render(r.muted),
				m.theme.Miss.Render(session.MissNotice)))
			continue
		}
		b.WriteString(fmt.Sprintf("  %s %s → %s %s  %s\n",
			Swatch(r.muted),
			m.theme.HistoryDim.Render(r.muted),
			Swatch(r.vivid),
			m.theme.Result.Render(r.vivid),
			m.theme.Notice.Render("copied")))
	}
	if len(m.results) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render("enter: convert • empty line/esc: quit"))

	return b.String()
}
