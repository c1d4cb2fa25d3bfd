// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

// Package secureinput adapts a bubbles text input into a host control for
// secureedit. The text input only ever holds what the edit buffer renders
// (mask glyphs or, when revealed, the literal secret).
package secureinput

import (
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/secureedit/core/secureedit"
	"github.com/toeirei/secureedit/internal/logging"
)

// clipboardMsg carries text read from the system clipboard.
type clipboardMsg string

type KeyMap struct {
	Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// Input is a single-line terminal text box implementing secureedit.Control.
// Terminals have no selection, so the selection length is always zero and
// Select only moves the caret to the end of the requested range.
type Input struct {
	KeyMap KeyMap

	model    textinput.Model
	nextID   int
	handlers map[secureedit.EventKind]map[int]secureedit.Handler
}

// New returns an empty input. mask is used by the text input when it
// renders its own mask.
func New(mask rune) *Input {
	m := textinput.New()
	m.EchoCharacter = mask
	// clipboard access goes through Paste so it is reconciled like any edit
	m.KeyMap.Paste.SetEnabled(false)
	return &Input{
		KeyMap:   DefaultKeyMap(),
		model:    m,
		handlers: map[secureedit.EventKind]map[int]secureedit.Handler{},
	}
}

func (in *Input) Text() string { return in.model.Value() }

func (in *Input) SetText(s string) {
	in.model.SetValue(s)
	in.emit(secureedit.Event{Kind: secureedit.EventTextChanged})
}

func (in *Input) Selection() (int, int) { return in.model.Position(), 0 }

func (in *Input) Select(start, length int) { in.model.SetCursor(start + length) }

func (in *Input) UseSystemMask() bool { return in.model.EchoMode == textinput.EchoPassword }

func (in *Input) SetUseSystemMask(on bool) {
	if on {
		in.model.EchoMode = textinput.EchoPassword
	} else {
		in.model.EchoMode = textinput.EchoNormal
	}
}

func (in *Input) TextLength() int { return utf8.RuneCountInString(in.model.Value()) }

// ClearUndo is a no-op: the bubbles text input keeps no undo history.
func (in *Input) ClearUndo() {}

func (in *Input) Paste(s string) {
	value := []rune(in.model.Value())
	pos := min(in.model.Position(), len(value))
	ins := []rune(s)

	next := make([]rune, 0, len(value)+len(ins))
	next = append(next, value[:pos]...)
	next = append(next, ins...)
	next = append(next, value[pos:]...)

	in.model.SetValue(string(next))
	in.model.SetCursor(pos + len(ins))
	in.emit(secureedit.Event{Kind: secureedit.EventTextChanged})
}

func (in *Input) Subscribe(kind secureedit.EventKind, h secureedit.Handler) func() {
	id := in.nextID
	in.nextID++
	if in.handlers[kind] == nil {
		in.handlers[kind] = map[int]secureedit.Handler{}
	}
	in.handlers[kind][id] = h
	return func() { delete(in.handlers[kind], id) }
}

// Focus focuses the text input and emits got-focus.
func (in *Input) Focus() tea.Cmd {
	cmd := in.model.Focus()
	in.emit(secureedit.Event{Kind: secureedit.EventGotFocus})
	return cmd
}

func (in *Input) Blur() { in.model.Blur() }

func (in *Input) Focused() bool { return in.model.Focused() }

// SetPlaceholder sets the text shown while the input is empty.
func (in *Input) SetPlaceholder(s string) { in.model.Placeholder = s }

// SetWidth limits the visible width of the input.
func (in *Input) SetWidth(w int) { in.model.Width = w }

// Update forwards msg to the text input and emits text-changed when the
// value changed. Bracketed pastes are how terminals deliver dropped text,
// so they go through the drag handlers when any are registered.
func (in *Input) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case clipboardMsg:
		in.Paste(string(msg))
		return nil
	case tea.KeyMsg:
		if msg.Paste && in.drop(string(msg.Runes)) {
			return nil
		}
		if key.Matches(msg, in.KeyMap.Paste) {
			return readClipboard
		}
	}

	before := in.model.Value()
	var cmd tea.Cmd
	in.model, cmd = in.model.Update(msg)
	if in.model.Value() != before {
		in.emit(secureedit.Event{Kind: secureedit.EventTextChanged})
	}
	return cmd
}

func (in *Input) View() string { return in.model.View() }

// drop offers text as a drag and drop operation. It reports whether drag
// handlers took care of it.
func (in *Input) drop(text string) bool {
	if len(in.handlers[secureedit.EventDragDrop]) == 0 {
		return false
	}
	data := &secureedit.DragData{HasText: true, Text: text}
	in.emit(secureedit.Event{Kind: secureedit.EventDragEnter, Drag: data})
	if data.Effect == secureedit.EffectNone {
		return true
	}
	in.emit(secureedit.Event{Kind: secureedit.EventDragOver, Drag: data})
	if data.Effect == secureedit.EffectNone {
		return true
	}
	in.emit(secureedit.Event{Kind: secureedit.EventDragDrop, Drag: data})
	return true
}

func (in *Input) emit(ev secureedit.Event) {
	for _, h := range in.handlers[ev.Kind] {
		h(ev)
	}
}

func readClipboard() tea.Msg {
	s, err := clipboard.ReadAll()
	if err != nil {
		logging.Debugf("secureinput: clipboard unavailable: %v", err)
		return nil
	}
	return clipboardMsg(s)
}

var _ secureedit.Control = (*Input)(nil)
