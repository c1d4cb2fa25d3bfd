// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

// Package testutil contains an in-memory host control used by tests to drive
// edit buffers the way a real text box would.
package testutil

import (
	"github.com/toeirei/secureedit/core/secureedit"
)

// FakeControl is a single-line text box. Edits made through its user-level
// methods (Type, Backspace, Delete, Replace) update the text, move the caret
// and emit text-changed, just like a toolkit widget.
type FakeControl struct {
	text       []rune
	selStart   int
	selLen     int
	systemMask bool

	// UndoClears counts ClearUndo calls.
	UndoClears int
	// SetTextCalls counts SetText calls.
	SetTextCalls int

	nextID   int
	handlers map[secureedit.EventKind]map[int]secureedit.Handler
}

// NewFakeControl returns an empty control.
func NewFakeControl() *FakeControl {
	return &FakeControl{handlers: map[secureedit.EventKind]map[int]secureedit.Handler{}}
}

func (f *FakeControl) Text() string { return string(f.text) }

func (f *FakeControl) SetText(s string) {
	f.SetTextCalls++
	f.text = []rune(s)
	f.selStart, f.selLen = len(f.text), 0
	f.emit(secureedit.Event{Kind: secureedit.EventTextChanged})
}

func (f *FakeControl) Selection() (int, int) { return f.selStart, f.selLen }

func (f *FakeControl) Select(start, length int) {
	start = min(max(0, start), len(f.text))
	length = min(max(0, length), len(f.text)-start)
	f.selStart, f.selLen = start, length
}

func (f *FakeControl) UseSystemMask() bool     { return f.systemMask }
func (f *FakeControl) SetUseSystemMask(b bool) { f.systemMask = b }
func (f *FakeControl) TextLength() int         { return len(f.text) }
func (f *FakeControl) ClearUndo()              { f.UndoClears++ }

func (f *FakeControl) Paste(s string) { f.Type(s) }

func (f *FakeControl) Subscribe(kind secureedit.EventKind, h secureedit.Handler) func() {
	id := f.nextID
	f.nextID++
	if f.handlers[kind] == nil {
		f.handlers[kind] = map[int]secureedit.Handler{}
	}
	f.handlers[kind][id] = h
	return func() { delete(f.handlers[kind], id) }
}

// Subscribers returns the number of live registrations for kind.
func (f *FakeControl) Subscribers(kind secureedit.EventKind) int { return len(f.handlers[kind]) }

// Type replaces the selection with s and leaves the caret after it.
func (f *FakeControl) Type(s string) {
	ins := []rune(s)
	next := make([]rune, 0, len(f.text)+len(ins))
	next = append(next, f.text[:f.selStart]...)
	next = append(next, ins...)
	next = append(next, f.text[f.selStart+f.selLen:]...)
	f.text = next
	f.selStart, f.selLen = f.selStart+len(ins), 0
	f.emit(secureedit.Event{Kind: secureedit.EventTextChanged})
}

// Backspace deletes the selection, or the rune before the caret.
func (f *FakeControl) Backspace() {
	if f.selLen == 0 {
		if f.selStart == 0 {
			return
		}
		f.selStart--
		f.selLen = 1
	}
	f.Type("")
}

// Delete deletes the selection, or the rune after the caret.
func (f *FakeControl) Delete() {
	if f.selLen == 0 {
		if f.selStart == len(f.text) {
			return
		}
		f.selLen = 1
	}
	f.Type("")
}

// Replace sets the whole text as a host would after an opaque edit (for
// example an IME commit) and reports the caret at caret.
func (f *FakeControl) Replace(text string, caret int) {
	f.text = []rune(text)
	f.selStart, f.selLen = min(max(0, caret), len(f.text)), 0
	f.emit(secureedit.Event{Kind: secureedit.EventTextChanged})
}

// Focus emits got-focus.
func (f *FakeControl) Focus() { f.emit(secureedit.Event{Kind: secureedit.EventGotFocus}) }

// Drag runs a full drag-enter, drag-over, drag-drop sequence and returns the
// effect answered to the drop. The drop is only delivered when enter was
// approved.
func (f *FakeControl) Drag(text string, hasText bool) secureedit.DropEffect {
	data := &secureedit.DragData{HasText: hasText, Text: text}
	f.emit(secureedit.Event{Kind: secureedit.EventDragEnter, Drag: data})
	if data.Effect == secureedit.EffectNone {
		return secureedit.EffectNone
	}
	f.emit(secureedit.Event{Kind: secureedit.EventDragOver, Drag: data})
	data.Effect = secureedit.EffectNone
	f.emit(secureedit.Event{Kind: secureedit.EventDragDrop, Drag: data})
	return data.Effect
}

func (f *FakeControl) emit(ev secureedit.Event) {
	for _, h := range f.handlers[ev.Kind] {
		h(ev)
	}
}

var _ secureedit.Control = (*FakeControl)(nil)
