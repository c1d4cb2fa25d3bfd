// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

package secretstore

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type factory struct {
	name string
	make func(t *testing.T) Store
}

func factories() []factory {
	return []factory{
		{"plain", func(t *testing.T) Store { return NewPlain() }},
		{"protected", func(t *testing.T) Store {
			if !ProtectedAvailable() {
				t.Skip("protected memory not available on this host")
			}
			return NewProtected()
		}},
	}
}

func contents(t *testing.T, s Store) string {
	t.Helper()
	m := s.Materialize()
	defer m.Wipe()
	if len(m.Runes) != s.Len() {
		t.Fatalf("materialized %d runes, Len()=%d", len(m.Runes), s.Len())
	}
	return string(m.Runes)
}

func TestStore_Mutations(t *testing.T) {
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			s := f.make(t)
			defer s.Destroy()

			for _, r := range "hllo" {
				s.Append(r)
			}
			s.InsertAt(1, 'e')
			if got := contents(t, s); got != "hello" {
				t.Fatalf("after insert got %q", got)
			}

			s.RemoveAt(0)
			s.RemoveAt(s.Len() - 1)
			if got := contents(t, s); got != "ell" {
				t.Fatalf("after remove got %q", got)
			}

			s.InsertAt(s.Len(), '€')
			s.InsertAt(0, '𝄞')
			if got := contents(t, s); got != "𝄞ell€" {
				t.Fatalf("multibyte got %q", got)
			}

			s.Clear()
			if s.Len() != 0 || contents(t, s) != "" {
				t.Fatalf("expected empty store after Clear")
			}
			s.Append('x')
			if got := contents(t, s); got != "x" {
				t.Fatalf("store unusable after Clear: %q", got)
			}
		})
	}
}

func TestStore_Reset(t *testing.T) {
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			s := f.make(t)
			defer s.Destroy()

			s.Append('z')
			in := []rune("pä€𝄞")
			s.Reset(in)
			if got := contents(t, s); got != "pä€𝄞" {
				t.Fatalf("after Reset got %q", got)
			}
			if string(in) != "pä€𝄞" {
				t.Fatalf("Reset modified its argument: %q", string(in))
			}

			s.InsertAt(0, '>')
			if got := contents(t, s); got != ">pä€𝄞" {
				t.Fatalf("store unusable after Reset: %q", got)
			}

			s.Reset(nil)
			if s.Len() != 0 || contents(t, s) != "" {
				t.Fatalf("expected empty store after Reset(nil)")
			}
		})
	}
}

func TestStore_OutOfRangeSaturates(t *testing.T) {
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			s := f.make(t)
			defer s.Destroy()

			s.RemoveAt(0) // empty: no-op
			s.InsertAt(-5, 'b')
			s.InsertAt(99, 'c')
			s.InsertAt(-1, 'a')
			if got := contents(t, s); got != "abc" {
				t.Fatalf("got %q", got)
			}
			s.RemoveAt(99)
			s.RemoveAt(-3)
			if got := contents(t, s); got != "b" {
				t.Fatalf("got %q", got)
			}
		})
	}
}

func TestStore_ManyUnits(t *testing.T) {
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			s := f.make(t)
			defer s.Destroy()

			var want []rune
			for i := 0; i < 100; i++ {
				r := rune('a' + i%26)
				s.Append(r)
				want = append(want, r)
			}
			m := s.Materialize()
			defer m.Wipe()
			if diff := cmp.Diff(want, m.Runes); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMaterialized_Wipe(t *testing.T) {
	s := NewPlain()
	for _, r := range "abc" {
		s.Append(r)
	}
	m := s.Materialize()
	backing := m.Runes
	m.Wipe()
	for i, r := range backing {
		if r != 0 {
			t.Fatalf("rune %d not zeroed", i)
		}
	}
	if m.Runes != nil {
		t.Fatalf("expected Runes to be released")
	}
	var nilM *Materialized
	nilM.Wipe() // must not panic
}

func TestPlain_GrowScrubsOldArray(t *testing.T) {
	p := NewPlain()
	for i := 0; i < 16; i++ {
		p.Append('s')
	}
	old := p.runes[:cap(p.runes)]
	p.Append('t')
	for i, r := range old {
		if r != 0 {
			t.Fatalf("old backing array slot %d not scrubbed", i)
		}
	}
}

func TestPlain_RemoveScrubsVacatedSlot(t *testing.T) {
	p := NewPlain()
	for _, r := range "xyz" {
		p.Append(r)
	}
	backing := p.runes[:cap(p.runes)]
	p.RemoveAt(0)
	if backing[2] != 0 {
		t.Fatalf("vacated slot still holds %q", backing[2])
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"":          ModeAuto,
		"auto":      ModeAuto,
		"Protected": ModeProtected,
		"memguard":  ModeProtected,
		" plain ":   ModePlain,
	}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseMode(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseMode("vault"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestNew_PlainModeNeverProtected(t *testing.T) {
	s := New(ModePlain)
	if s.Kind() != KindPlain {
		t.Fatalf("expected plain store, got %v", s.Kind())
	}
}

func TestNew_FallsBackWhenProbeFails(t *testing.T) {
	s := newWithProbe(t, func() bool { return false }, ModeProtected)
	if s.Kind() != KindPlain {
		t.Fatalf("expected fallback to plain, got %v", s.Kind())
	}
}

func TestNew_UsesProtectedWhenProbeSucceeds(t *testing.T) {
	s := newWithProbe(t, func() bool { return true }, ModeAuto)
	if s.Kind() != KindProtected {
		t.Fatalf("expected protected store, got %v", s.Kind())
	}
}

// newWithProbe resets the once-only capability check around a fake probe.
func newWithProbe(t *testing.T, fake func() bool, mode Mode) Store {
	t.Helper()
	prevProbe, prevResult := probe, probeResult
	probe = fake
	probeOnce = sync.Once{}
	t.Cleanup(func() {
		probe = prevProbe
		probeResult = prevResult
		probeOnce = sync.Once{}
	})
	return New(mode)
}
