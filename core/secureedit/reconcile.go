// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

package secureedit

import (
	"strings"

	"github.com/toeirei/secureedit/core/codec"
)

// edit is a single replace operation on the secret: remove runes starting
// at at, then insert insert at the same position.
type edit struct {
	at     int
	remove int
	insert []rune
}

// planEdit infers the edit that turned a masked display of oldLen glyphs
// into text. caret is the caret position the control reported afterwards.
//
// Runes other than glyph are new input. Their span fixes how many glyphs
// survived on either side, and everything of the old secret between those
// survivors was replaced. Without any literal rune the edit was a deletion
// at the caret, or, if the text grew, the glyph itself was typed.
func planEdit(text string, glyph rune, oldLen, caret int) edit {
	left, right, n := -1, 0, 0
	var run []rune
	for _, r := range text {
		if r != glyph {
			if left < 0 {
				left = n
			}
			right = n
			run = append(run, r)
		}
		n++
	}

	if left < 0 {
		caret = clamp(caret, 0, n)
		if n > oldLen {
			grow := n - oldLen
			at := clamp(caret-grow, 0, oldLen)
			return edit{at: at, insert: []rune(strings.Repeat(string(glyph), grow))}
		}
		remove := oldLen - n
		return edit{at: clamp(caret, 0, oldLen-remove), remove: remove}
	}

	keepLeft, keepRight := left, n-right-1
	at := clamp(keepLeft, 0, oldLen)
	remove := clamp(oldLen-keepLeft-keepRight, 0, oldLen-at)
	return edit{at: at, remove: remove, insert: run}
}

// apply performs ed one rune at a time and scrubs the inserted runes.
func (e *Edit) apply(ed edit) {
	for i := 0; i < ed.remove; i++ {
		e.secret.RemoveAt(ed.at)
	}
	for i, r := range ed.insert {
		e.secret.InsertAt(ed.at+i, r)
	}
	codec.WipeRunes(ed.insert)
}

// handleTextChanged reconciles the secret with the text the control shows.
func (e *Edit) handleTextChanged(Event) {
	if e.suppress {
		return
	}
	if e.control == nil {
		assertf("text change delivered to a detached edit")
		return
	}

	start, length := e.control.Selection()
	text := e.control.Text()

	if !e.hidden {
		runes := []rune(text)
		e.secret.Reset(runes)
		codec.WipeRunes(runes)
	} else {
		e.apply(planEdit(text, e.glyph, e.secret.Len(), start))
	}

	e.render(start, length)
}

// render rebuilds the control text from the secret, restores the clamped
// selection, drops the control's undo history and notifies onChange.
func (e *Edit) render(selStart, selLen int) {
	c := e.control
	n := e.secret.Len()

	var text string
	if e.hidden {
		text = strings.Repeat(string(e.glyph), n)
	} else {
		m := e.secret.Materialize()
		text = string(m.Runes)
		m.Wipe()
	}

	e.withSuppressed(func() {
		if c.UseSystemMask() != e.hidden {
			c.SetUseSystemMask(e.hidden)
		}
		c.SetText(text)
		start := clamp(selStart, 0, n)
		c.Select(start, clamp(selLen, 0, n-start))
		c.ClearUndo()
	})

	if e.onChange != nil {
		e.onChange(c)
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(lo, v), hi)
}
