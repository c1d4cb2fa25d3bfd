// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.
package prompt

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/secureedit/core/secretstore"
	"github.com/toeirei/secureedit/core/secureedit"
	"github.com/toeirei/secureedit/internal/i18n"
)

func newModel(t *testing.T, opts Options) *Model {
	t.Helper()
	i18n.Init("en")
	opts.Edit = secureedit.Options{MaskGlyph: '*', Memory: secretstore.ModePlain}
	m, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(m.Close)
	m.Init()
	return m
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typed(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func TestPrompt_SingleField(t *testing.T) {
	m := newModel(t, Options{})
	if cmd := send(m, typed("s3cr€t"), enter); cmd == nil {
		t.Fatalf("enter must quit the program")
	}
	got, err := m.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	defer got.Zero()
	if string(got) != "s3cr€t" {
		t.Fatalf("unexpected secret of %d bytes", len(got))
	}
	if m.View() != "" {
		t.Fatalf("finished prompt must render nothing")
	}
}

func TestPrompt_ConfirmMismatchThenMatch(t *testing.T) {
	m := newModel(t, Options{Confirm: true})

	send(m, typed("one"), enter, typed("two"), enter)
	if m.done {
		t.Fatalf("mismatch must not finish the prompt")
	}
	if m.err != i18n.T("prompt.mismatch") {
		t.Fatalf("expected mismatch error, got %q", m.err)
	}
	if m.active != 1 || m.fields[1].edit.TextLength() != 0 {
		t.Fatalf("confirmation must be cleared and focused")
	}

	send(m, typed("one"), enter)
	if !m.done {
		t.Fatalf("matching confirmation must finish the prompt")
	}
	got, err := m.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	defer got.Zero()
	if string(got) != "one" {
		t.Fatalf("unexpected secret")
	}
}

func TestPrompt_RevealToggle(t *testing.T) {
	m := newModel(t, Options{Confirm: true})
	send(m, typed("abc"))
	send(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.Hidden() {
		t.Fatalf("ctrl+r must reveal")
	}
	if m.fields[0].input.Text() != "abc" {
		t.Fatalf("revealed display = %q", m.fields[0].input.Text())
	}
	send(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.fields[0].input.Text() != "***" {
		t.Fatalf("masked display = %q", m.fields[0].input.Text())
	}
}

func TestPrompt_StartRevealed(t *testing.T) {
	m := newModel(t, Options{Reveal: true})
	send(m, typed("plain"))
	if m.fields[0].input.Text() != "plain" {
		t.Fatalf("display = %q", m.fields[0].input.Text())
	}
}

func TestPrompt_LengthFollowsChanges(t *testing.T) {
	m := newModel(t, Options{})
	send(m, typed("abcd"), tea.KeyMsg{Type: tea.KeyBackspace})
	if m.fields[0].length != 3 {
		t.Fatalf("length = %d, want 3", m.fields[0].length)
	}
}

func TestPrompt_Cancel(t *testing.T) {
	m := newModel(t, Options{})
	send(m, typed("abc"), tea.KeyMsg{Type: tea.KeyEsc})
	if _, err := m.Result(); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestPrompt_TabSwitchesField(t *testing.T) {
	m := newModel(t, Options{Confirm: true})
	send(m, tea.KeyMsg{Type: tea.KeyTab}, typed("x"))
	if m.active != 1 || m.fields[1].edit.TextLength() != 1 || m.fields[0].edit.TextLength() != 0 {
		t.Fatalf("tab must move input to the confirmation field")
	}
}
