package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vividmap/recolor/internal/palette"
	"github.com/vividmap/recolor/internal/session"
)

type recordingClipboard struct {
	writes []string
	err    error
}

func (r *recordingClipboard) WriteText(text string) error {
	if r.err != nil {
		return r.err
	}
	r.writes = append(r.writes, text)
	return nil
}

// typeAndEnter feeds a string into the model one rune at a time and
// presses enter.
func typeAndEnter(m SessionModel, text string) SessionModel {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(SessionModel)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(SessionModel)
}

func TestSessionModelResolve(t *testing.T) {
	clip := &recordingClipboard{}
	m := NewSessionModel(palette.Default(), clip, nil, nil, "tester")

	m = typeAndEnter(m, "513b3b")

	results := m.results
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].vivid != "963333ff" {
		t.Errorf("result vivid = %q, expected 963333ff", results[0].vivid)
	}
	if len(clip.writes) != 1 || clip.writes[0] != "963333ff" {
		t.Errorf("clipboard writes = %v, expected [963333ff]", clip.writes)
	}
	if !strings.Contains(m.View(), "963333ff") {
		t.Error("View() does not show the resolved code")
	}
}

func TestSessionModelNormalizesInput(t *testing.T) {
	clip := &recordingClipboard{}
	m := NewSessionModel(palette.Default(), clip, nil, nil, "tester")

	m = typeAndEnter(m, "#513B3B")

	results := m.results
	if len(results) != 1 || results[0].muted != "513b3b" {
		t.Fatalf("expected normalized muted code, got %v", results)
	}
	if len(clip.writes) != 1 || clip.writes[0] != "963333ff" {
		t.Errorf("clipboard writes = %v, expected [963333ff]", clip.writes)
	}
}

func TestSessionModelMiss(t *testing.T) {
	clip := &recordingClipboard{}
	m := NewSessionModel(palette.Default(), clip, nil, nil, "tester")

	m = typeAndEnter(m, "abcdef")

	results := m.results
	if len(results) != 1 || results[0].vivid != "" {
		t.Fatalf("expected a miss result, got %v", results)
	}
	if len(clip.writes) != 0 {
		t.Errorf("clipboard writes = %v, expected none on a miss", clip.writes)
	}
	if !strings.Contains(m.View(), session.MissNotice) {
		t.Error("View() does not show the miss notice")
	}
}

func TestSessionModelEmptyLineQuits(t *testing.T) {
	m := NewSessionModel(palette.Default(), &recordingClipboard{}, nil, nil, "tester")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)

	if !m.IsQuitting() {
		t.Error("empty line should end the session")
	}
	if cmd == nil {
		t.Error("expected a quit command")
	}
	if m.View() != "" {
		t.Errorf("View() after quitting = %q, expected empty", m.View())
	}
}

func TestSessionModelLoneHashIsMiss(t *testing.T) {
	// '#' trims to a non-empty string: it is looked up (and misses)
	// instead of ending the session like an empty line.
	clip := &recordingClipboard{}
	m := NewSessionModel(palette.Default(), clip, nil, nil, "tester")

	m = typeAndEnter(m, "#")

	if m.IsQuitting() {
		t.Fatal("a lone '#' must not end the session")
	}
	if len(m.results) != 1 || m.results[0].vivid != "" {
		t.Errorf("expected a miss result, got %v", m.results)
	}
	if len(clip.writes) != 0 {
		t.Errorf("clipboard writes = %v, expected none on a miss", clip.writes)
	}
}

func TestSessionModelClipboardFailureKeepsSession(t *testing.T) {
	clip := &recordingClipboard{err: errors.New("stream closed")}
	m := NewSessionModel(palette.Default(), clip, nil, nil, "tester")

	m = typeAndEnter(m, "513b3b")

	if m.IsQuitting() {
		t.Error("clipboard failure must not end the session")
	}
	results := m.results
	if len(results) != 1 || results[0].vivid != "963333ff" {
		t.Errorf("result should still be reported, got %v", results)
	}
}

func TestSessionModelBoundsVisibleResults(t *testing.T) {
	m := NewSessionModel(palette.Default(), &recordingClipboard{}, nil, nil, "tester")

	for i := 0; i < maxVisibleResults+5; i++ {
		m = typeAndEnter(m, "513b3b")
	}

	if len(m.results) != maxVisibleResults {
		t.Errorf("visible results = %d, expected %d", len(m.results), maxVisibleResults)
	}
}
