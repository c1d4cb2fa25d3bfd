// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

package secureedit

// EventKind identifies a notification emitted by a host control.
type EventKind int

const (
	EventTextChanged EventKind = iota
	EventGotFocus
	EventDragEnter
	EventDragOver
	EventDragDrop
)

func (k EventKind) String() string {
	switch k {
	case EventTextChanged:
		return "text-changed"
	case EventGotFocus:
		return "got-focus"
	case EventDragEnter:
		return "drag-enter"
	case EventDragOver:
		return "drag-over"
	case EventDragDrop:
		return "drag-drop"
	default:
		return "unknown"
	}
}

// DropEffect is the answer a handler gives to a drag operation.
type DropEffect int

const (
	EffectNone DropEffect = iota
	EffectCopy
)

// DragData is the payload of drag events. Handlers set Effect to approve
// (EffectCopy) or reject (EffectNone) the operation.
type DragData struct {
	HasText bool
	Text    string
	Effect  DropEffect
}

// Event is delivered to handlers registered with Control.Subscribe. Drag is
// only set for the drag kinds.
type Event struct {
	Kind EventKind
	Drag *DragData
}

// Handler receives control notifications.
type Handler func(Event)

// ChangeFunc is invoked after the secret or its display changed.
type ChangeFunc func(source Control)

// Control is the host text input an Edit drives. Positions and lengths are
// counted in runes.
type Control interface {
	Text() string
	SetText(s string)
	// Selection returns the caret position and the selection length.
	Selection() (start, length int)
	Select(start, length int)
	// UseSystemMask reports whether the control renders its own mask.
	UseSystemMask() bool
	SetUseSystemMask(on bool)
	TextLength() int
	ClearUndo()
	// Paste inserts s at the caret, replacing the selection, and emits
	// EventTextChanged.
	Paste(s string)
	// Subscribe registers h for events of the given kind. The returned
	// function removes the registration and is safe to call more than once.
	Subscribe(kind EventKind, h Handler) (cancel func())
}
