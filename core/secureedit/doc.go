// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package secureedit implements a masked edit buffer for password entry.
//
// An Edit owns the authoritative secret and binds to a host text control
// that only ever shows mask glyphs (or, with protection disabled, the
// literal text). Host controls report nothing but the complete visible text
// after each change, so the Edit reconstructs the edit from the mask layout
// and the caret position, applies it to the secret one rune at a time and
// re-renders the control.
//
// # Lifetime
//
// Edits are single-threaded and expect to be driven from the UI event loop.
// The owner attaches an Edit to a control, detaches it when the control goes
// away and calls Close to scrub the secret:
//
//	e := secureedit.New(secureedit.DefaultOptions())
//	defer e.Close()
//	if err := e.Attach(ctrl, nil, true); err != nil {
//		return err
//	}
//	defer e.Detach()
//
// # Contract violations
//
// Operations that need a control while none is attached are programming
// errors. Builds tagged debug panic with ErrContractViolation; release
// builds log a warning and ignore the call so the host UI stays alive.
package secureedit
