// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeRunes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []rune
	}{
		{"empty", "", []rune{}},
		{"ascii", "abc", []rune{'a', 'b', 'c'}},
		{"multibyte", "pä€𝄞", []rune{'p', 'ä', '€', '𝄞'}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := []byte(tc.in)
			got, err := DecodeRunes(in)
			if err != nil {
				t.Fatalf("DecodeRunes: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("runes mismatch (-want +got):\n%s", diff)
			}
			if cap(got) != len(got) {
				t.Fatalf("expected exact capacity, len=%d cap=%d", len(got), cap(got))
			}
			if string(in) != tc.in {
				t.Fatalf("input modified: %q", in)
			}
		})
	}
}

func TestDecodeRunes_Invalid(t *testing.T) {
	in := []byte{'a', 0xff, 'b'}
	got, err := DecodeRunes(in)
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no runes on error, got %q", got)
	}
	if !bytes.Equal(in, []byte{'a', 0xff, 'b'}) {
		t.Fatalf("input modified after error: %v", in)
	}
}

func TestEncodeUTF8_ExactCapacity(t *testing.T) {
	runes := []rune("a€𝄞")
	out := EncodeUTF8(runes)
	if string(out) != "a€𝄞" {
		t.Fatalf("unexpected encoding %q", out)
	}
	if cap(out) != len(out) {
		t.Fatalf("expected exact capacity, len=%d cap=%d", len(out), cap(out))
	}
}

func TestEncodeUTF16LE(t *testing.T) {
	out, err := EncodeUTF16LE([]rune("a𝄞"))
	if err != nil {
		t.Fatalf("EncodeUTF16LE: %v", err)
	}
	want := []byte{0x61, 0x00, 0x34, 0xd8, 0x1e, 0xdd}
	if !bytes.Equal(out, want) {
		t.Fatalf("got % x, want % x", out, want)
	}
}

func TestWipeRunes(t *testing.T) {
	r := []rune("secret")
	WipeRunes(r)
	for i, v := range r {
		if v != 0 {
			t.Fatalf("rune %d not zeroed", i)
		}
	}
}
