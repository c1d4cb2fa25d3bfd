// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

package secretstore

import (
	"fmt"
	"strings"
	"sync"

	"github.com/toeirei/secureedit/core/codec"
	"github.com/toeirei/secureedit/internal/logging"
)

// Kind identifies the backing representation of a Store.
type Kind int

const (
	KindPlain Kind = iota
	KindProtected
)

func (k Kind) String() string {
	switch k {
	case KindProtected:
		return "protected"
	default:
		return "plain"
	}
}

// Mode selects which representation New should try to build.
type Mode int

const (
	// ModeAuto uses the protected representation when available.
	ModeAuto Mode = iota
	// ModeProtected requests the protected representation. It still falls
	// back to Plain when the platform cannot provide it.
	ModeProtected
	// ModePlain always uses the plain representation.
	ModePlain
)

func (m Mode) String() string {
	switch m {
	case ModeProtected:
		return "protected"
	case ModePlain:
		return "plain"
	default:
		return "auto"
	}
}

// ParseMode maps a configuration string onto a Mode. The empty string is auto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "protected", "memguard":
		return ModeProtected, nil
	case "plain":
		return ModePlain, nil
	default:
		return ModeAuto, fmt.Errorf("unknown memory mode %q (want auto, protected or plain)", s)
	}
}

// Store is an ordered, editable sequence of runes.
//
// Mutations work one rune at a time. Indices outside the valid range are
// clamped rather than rejected.
type Store interface {
	Append(r rune)
	InsertAt(i int, r rune)
	RemoveAt(i int)
	Len() int
	// Clear removes every rune, scrubbing the previous contents.
	Clear()
	// Reset replaces the secret with runes, written one unit at a time. runes
	// is copied; wiping it stays with the caller.
	Reset(runes []rune)
	// Materialize returns a plaintext copy of the secret. The caller must
	// call Wipe on it as soon as it is no longer needed.
	Materialize() *Materialized
	Kind() Kind
	// Destroy scrubs the secret and releases protected memory. The Store is
	// empty afterwards but remains usable.
	Destroy()
}

// Materialized is a short-lived plaintext view of a secret.
type Materialized struct {
	Runes []rune
}

// Wipe zeroes the plaintext runes.
func (m *Materialized) Wipe() {
	if m == nil {
		return
	}
	codec.WipeRunes(m.Runes)
	m.Runes = nil
}

var (
	probeOnce   sync.Once
	probeResult bool

	// probe reports whether protected memory can be allocated. Tests swap it.
	probe = protectedAvailable
)

// ProtectedAvailable reports whether the protected representation can be
// used on this platform. The check runs once per process.
func ProtectedAvailable() bool {
	probeOnce.Do(func() {
		probeResult = probe()
		if !probeResult {
			logging.Debugf("secretstore: protected memory unavailable, using plain representation")
		}
	})
	return probeResult
}

// New returns a Store in the requested mode.
func New(mode Mode) Store {
	if mode == ModePlain {
		return NewPlain()
	}
	if ProtectedAvailable() {
		return NewProtected()
	}
	if mode == ModeProtected {
		logging.Warnf("secretstore: protected memory requested but unavailable, using plain representation")
	}
	return NewPlain()
}

func clamp(v, lo, hi int) int {
	return min(max(lo, v), hi)
}
