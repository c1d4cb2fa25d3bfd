// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

package secureedit

// handleGotFocus selects the whole text the first time the control gains
// focus after Attach, so typing replaces a preset password.
func (e *Edit) handleGotFocus(Event) {
	if e.control == nil {
		assertf("focus delivered to a detached edit")
		return
	}
	if !e.firstFocus {
		return
	}
	e.firstFocus = false
	if n := e.control.TextLength(); n > 0 {
		e.control.Select(0, n)
	}
}

// handleDragCheck accepts drag-enter and drag-over for text payloads only.
func (e *Edit) handleDragCheck(ev Event) {
	if ev.Drag == nil {
		return
	}
	if ev.Drag.HasText {
		ev.Drag.Effect = EffectCopy
	} else {
		ev.Drag.Effect = EffectNone
	}
}

// handleDragDrop pastes dropped text through the control so that the
// regular text-changed path reconciles it.
func (e *Edit) handleDragDrop(ev Event) {
	if ev.Drag == nil {
		return
	}
	if e.control == nil {
		assertf("drop delivered to a detached edit")
		return
	}
	if !ev.Drag.HasText {
		ev.Drag.Effect = EffectNone
		return
	}
	ev.Drag.Effect = EffectCopy
	e.control.Paste(ev.Drag.Text)
}
