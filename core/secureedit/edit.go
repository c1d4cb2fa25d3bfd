// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

package secureedit

import (
	"fmt"

	"github.com/toeirei/secureedit/core/codec"
	"github.com/toeirei/secureedit/core/secretstore"
	"github.com/toeirei/secureedit/core/security"
)

// DefaultMaskGlyph is shown in place of every secret rune.
const DefaultMaskGlyph = '●'

// Options configure an Edit. They are fixed at construction except for
// SecureDesktop, which may be changed while detached.
type Options struct {
	// MaskGlyph replaces each rune on screen. Zero selects DefaultMaskGlyph.
	MaskGlyph rune
	// SecureDesktop disables drag and drop integration entirely.
	SecureDesktop bool
	// Memory selects the secret representation.
	Memory secretstore.Mode
}

// DefaultOptions returns the options used by New when nothing is customised.
func DefaultOptions() Options {
	return Options{MaskGlyph: DefaultMaskGlyph, Memory: secretstore.ModeAuto}
}

// Edit is a masked edit buffer bound to at most one host control.
type Edit struct {
	glyph         rune
	secureDesktop bool
	secret        secretstore.Store

	control    Control
	onChange   ChangeFunc
	cancels    []func()
	hidden     bool
	firstFocus bool

	// suppress is set while the Edit writes to the control so the
	// resulting text-changed notification is not reconciled again.
	suppress bool
}

// New creates a detached Edit with an empty secret.
func New(opts Options) *Edit {
	if opts.MaskGlyph == 0 {
		opts.MaskGlyph = DefaultMaskGlyph
	}
	return &Edit{
		glyph:         opts.MaskGlyph,
		secureDesktop: opts.SecureDesktop,
		secret:        secretstore.New(opts.Memory),
		hidden:        true,
	}
}

// Attach binds e to c. The secret is reset to empty, the control is
// cleared, hidden becomes the protection state and onChange is invoked once.
// An Edit that is already attached is detached first.
func (e *Edit) Attach(c Control, onChange ChangeFunc, hidden bool) error {
	if c == nil {
		return ErrNilControl
	}
	if e.control != nil {
		e.Detach()
	}

	e.control = c
	e.onChange = onChange
	e.firstFocus = true
	e.secret.Clear()
	e.withSuppressed(func() { c.SetText("") })

	// force the full render in EnableProtection
	e.hidden = !hidden
	e.EnableProtection(hidden)

	e.cancels = append(e.cancels,
		c.Subscribe(EventTextChanged, e.handleTextChanged),
		c.Subscribe(EventGotFocus, e.handleGotFocus),
	)
	if !e.secureDesktop {
		e.cancels = append(e.cancels,
			c.Subscribe(EventDragEnter, e.handleDragCheck),
			c.Subscribe(EventDragOver, e.handleDragCheck),
			c.Subscribe(EventDragDrop, e.handleDragDrop),
		)
	}
	return nil
}

// Detach removes every subscription and releases the control. The secret is
// kept so it can still be read; call Close to scrub it. Detach is idempotent.
func (e *Edit) Detach() {
	for _, cancel := range e.cancels {
		if cancel != nil {
			cancel()
		}
	}
	e.cancels = nil
	e.control = nil
	e.onChange = nil
}

// Close detaches and scrubs the secret. The Edit can be attached again
// afterwards.
func (e *Edit) Close() {
	e.Detach()
	e.secret.Destroy()
}

// Attached reports whether e is bound to a control.
func (e *Edit) Attached() bool { return e.control != nil }

// Hidden reports whether the display is masked.
func (e *Edit) Hidden() bool { return e.hidden }

// MaskGlyph returns the rune shown for each secret rune.
func (e *Edit) MaskGlyph() rune { return e.glyph }

// StoreKind reports which secret representation e uses.
func (e *Edit) StoreKind() secretstore.Kind { return e.secret.Kind() }

// SetSecureDesktop toggles drag and drop integration. It only takes effect
// for the next Attach and must not be called while attached.
func (e *Edit) SetSecureDesktop(on bool) {
	if e.control != nil {
		assertf("SetSecureDesktop called while attached")
		return
	}
	e.secureDesktop = on
}

// EnableProtection switches between masked and literal display. The secret
// is untouched; the control is fully re-rendered keeping the selection as far
// as it still fits.
func (e *Edit) EnableProtection(hidden bool) {
	if e.control == nil {
		assertf("EnableProtection called without an attached control")
		return
	}
	if hidden == e.hidden {
		return
	}
	e.hidden = hidden
	start, length := e.control.Selection()
	e.render(start, length)
}

// SetPassword replaces the secret with the UTF-8 text in utf8. utf8 is not
// modified; the decoded runes are wiped once they are in the store. When
// attached, the control is re-rendered with the caret at the start.
func (e *Edit) SetPassword(utf8 []byte) error {
	if utf8 == nil {
		return ErrNilPassword
	}
	runes, err := codec.DecodeRunes(utf8)
	if err != nil {
		e.secret.Clear()
	} else {
		e.secret.Reset(runes)
		codec.WipeRunes(runes)
	}
	if e.control != nil {
		e.render(0, 0)
	}
	if err != nil {
		return fmt.Errorf("set password: %w", err)
	}
	return nil
}

// ToUTF8 returns the secret encoded as UTF-8. The caller owns the result and
// must Zero it.
func (e *Edit) ToUTF8() security.Secret {
	m := e.secret.Materialize()
	defer m.Wipe()
	return security.Secret(codec.EncodeUTF8(m.Runes))
}

// ToUTF16LE returns the secret encoded as UTF-16 little endian. The caller
// owns the result and must Zero it.
func (e *Edit) ToUTF16LE() (security.Secret, error) {
	m := e.secret.Materialize()
	defer m.Wipe()
	b, err := codec.EncodeUTF16LE(m.Runes)
	if err != nil {
		return nil, fmt.Errorf("encode utf-16: %w", err)
	}
	return security.Secret(b), nil
}

// ContentsEqualTo reports whether other holds the same secret. A nil other
// is never equal.
func (e *Edit) ContentsEqualTo(other *Edit) bool {
	if other == nil {
		return false
	}
	a := e.ToUTF8()
	defer a.Zero()
	b := other.ToUTF8()
	defer b.Zero()
	return security.Equal(a, b)
}

// TextLength returns the number of runes in the secret.
func (e *Edit) TextLength() int { return e.secret.Len() }

func (e *Edit) withSuppressed(fn func()) {
	prev := e.suppress
	e.suppress = true
	defer func() { e.suppress = prev }()
	fn()
}
