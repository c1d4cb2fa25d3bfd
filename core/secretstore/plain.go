// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

package secretstore

import "github.com/toeirei/secureedit/core/codec"

// Plain keeps the secret in ordinary memory. Slots that are vacated or
// reallocated are zeroed.
type Plain struct {
	runes []rune
}

// NewPlain returns an empty plain store.
func NewPlain() *Plain { return &Plain{} }

func (p *Plain) Kind() Kind { return KindPlain }

func (p *Plain) Len() int { return len(p.runes) }

func (p *Plain) Append(r rune) { p.InsertAt(len(p.runes), r) }

func (p *Plain) InsertAt(i int, r rune) {
	i = clamp(i, 0, len(p.runes))
	p.grow()
	p.runes = p.runes[:len(p.runes)+1]
	copy(p.runes[i+1:], p.runes[i:])
	p.runes[i] = r
}

func (p *Plain) RemoveAt(i int) {
	if len(p.runes) == 0 {
		return
	}
	i = clamp(i, 0, len(p.runes)-1)
	copy(p.runes[i:], p.runes[i+1:])
	p.runes[len(p.runes)-1] = 0
	p.runes = p.runes[:len(p.runes)-1]
}

func (p *Plain) Clear() {
	codec.WipeRunes(p.runes)
	p.runes = p.runes[:0]
}

func (p *Plain) Reset(runes []rune) {
	p.Clear()
	for _, r := range runes {
		p.Append(r)
	}
}

func (p *Plain) Materialize() *Materialized {
	out := make([]rune, len(p.runes))
	copy(out, p.runes)
	return &Materialized{Runes: out}
}

func (p *Plain) Destroy() {
	codec.WipeRunes(p.runes[:cap(p.runes)])
	p.runes = nil
}

// grow makes room for one more rune. The old backing array is scrubbed
// instead of being left to the garbage collector.
func (p *Plain) grow() {
	if len(p.runes) < cap(p.runes) {
		return
	}
	next := make([]rune, len(p.runes), max(16, 2*cap(p.runes)))
	copy(next, p.runes)
	codec.WipeRunes(p.runes)
	p.runes = next
}

var _ Store = (*Plain)(nil)
