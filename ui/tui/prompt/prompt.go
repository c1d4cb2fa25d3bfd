// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

// Package prompt is a bubbletea model asking for a secret, optionally twice.
// Each field is a secureinput.Input driven by its own secureedit.Edit.
package prompt

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/secureedit/core/secureedit"
	"github.com/toeirei/secureedit/core/security"
	"github.com/toeirei/secureedit/internal/i18n"
	"github.com/toeirei/secureedit/ui/tui/secureinput"
)

// ErrAborted is returned by Result when the user cancelled the prompt.
var ErrAborted = errors.New("prompt aborted")

type Options struct {
	// Title replaces the default heading when set.
	Title string
	// Confirm asks for the secret a second time.
	Confirm bool
	// Reveal starts with the secret visible.
	Reveal bool
	Edit   secureedit.Options
}

type field struct {
	label  string
	input  *secureinput.Input
	edit   *secureedit.Edit
	length int
}

type Model struct {
	KeyMap KeyMap

	title   string
	fields  []*field
	active  int
	hidden  bool
	err     string
	done    bool
	aborted bool
	width   int
	help    help.Model

	titleStyle lipgloss.Style
	labelStyle lipgloss.Style
	focusStyle lipgloss.Style
	errStyle   lipgloss.Style
	dimStyle   lipgloss.Style
}

// New builds the prompt and attaches an edit buffer to each field.
func New(opts Options) (*Model, error) {
	m := &Model{
		KeyMap: DefaultKeyMap(),
		title:  opts.Title,
		hidden: !opts.Reveal,
		help:   help.New(),

		titleStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		labelStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		focusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		errStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		dimStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
	if m.title == "" {
		m.title = i18n.T("prompt.title")
	}

	labels := []string{i18n.T("prompt.password")}
	if opts.Confirm {
		labels = append(labels, i18n.T("prompt.confirm"))
	}
	for _, label := range labels {
		f := &field{label: label, edit: secureedit.New(opts.Edit)}
		f.input = secureinput.New(f.edit.MaskGlyph())
		f.input.SetPlaceholder(i18n.T("prompt.placeholder"))
		onChange := func(secureedit.Control) { f.length = f.edit.TextLength() }
		if err := f.edit.Attach(f.input, onChange, m.hidden); err != nil {
			m.Close()
			return nil, err
		}
		m.fields = append(m.fields, f)
	}
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return m.fields[0].input.Focus()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		for _, f := range m.fields {
			f.input.SetWidth(max(msg.Width-4, 1))
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Cancel):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, m.KeyMap.Reveal):
			m.toggleReveal()
			return m, nil
		case key.Matches(msg, m.KeyMap.Next):
			return m, m.focus((m.active + 1) % len(m.fields))
		case key.Matches(msg, m.KeyMap.Submit):
			return m, m.submit()
		}
	}
	return m, m.fields[m.active].input.Update(msg)
}

func (m *Model) View() string {
	if m.done || m.aborted {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.titleStyle.Render(m.title))
	b.WriteString("\n\n")
	for i, f := range m.fields {
		label := m.labelStyle.Render(f.label)
		if i == m.active {
			label = m.focusStyle.Render(f.label)
		}
		b.WriteString(label)
		b.WriteString(" ")
		b.WriteString(m.dimStyle.Render("(" + i18n.T("prompt.length", f.length) + ")"))
		b.WriteString("\n")
		b.WriteString(f.input.View())
		b.WriteString("\n")
	}
	if m.err != "" {
		b.WriteString(m.errStyle.Render(m.err))
		b.WriteString("\n")
	}
	state := i18n.T("prompt.masked")
	if !m.hidden {
		state = i18n.T("prompt.visible")
	}
	b.WriteString(m.dimStyle.Render(state))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.KeyMap))
	return b.String()
}

// Result returns the entered secret. The caller owns it and must Zero it.
func (m *Model) Result() (security.Secret, error) {
	if m.aborted || !m.done {
		return nil, ErrAborted
	}
	return m.fields[0].edit.ToUTF8(), nil
}

// Hidden reports whether the fields are masked.
func (m *Model) Hidden() bool { return m.hidden }

// Close detaches every field and scrubs the secrets.
func (m *Model) Close() {
	for _, f := range m.fields {
		f.edit.Close()
	}
}

func (m *Model) toggleReveal() {
	m.hidden = !m.hidden
	for _, f := range m.fields {
		f.edit.EnableProtection(m.hidden)
	}
	if m.hidden {
		m.KeyMap.Reveal.SetHelp("ctrl+r", i18n.T("prompt.reveal"))
	} else {
		m.KeyMap.Reveal.SetHelp("ctrl+r", i18n.T("prompt.hide"))
	}
}

func (m *Model) focus(i int) tea.Cmd {
	m.fields[m.active].input.Blur()
	m.active = i
	return m.fields[i].input.Focus()
}

func (m *Model) submit() tea.Cmd {
	if m.active < len(m.fields)-1 {
		return m.focus(m.active + 1)
	}
	if len(m.fields) > 1 && !m.fields[0].edit.ContentsEqualTo(m.fields[1].edit) {
		m.err = i18n.T("prompt.mismatch")
		_ = m.fields[1].edit.SetPassword([]byte{})
		return m.focus(1)
	}
	m.err = ""
	m.done = true
	return tea.Quit
}
