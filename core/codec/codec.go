// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

package codec

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidUTF8 is returned when a byte sequence is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("codec: invalid UTF-8 sequence")

// DecodeRunes decodes b into a freshly allocated rune slice of exact size.
// b is left untouched; the caller owns the result and must wipe it with
// WipeRunes. On invalid input the partial result is wiped and
// ErrInvalidUTF8 is returned.
func DecodeRunes(b []byte) ([]rune, error) {
	out := make([]rune, 0, utf8.RuneCount(b))
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			WipeRunes(out)
			return nil, ErrInvalidUTF8
		}
		out = append(out, r)
		i += size
	}
	return out, nil
}

// EncodedLen reports the length in bytes of the UTF-8 encoding of runes.
func EncodedLen(runes []rune) int {
	n := 0
	for _, r := range runes {
		n += utf8.RuneLen(r)
	}
	return n
}

// EncodeUTF8 returns the UTF-8 encoding of runes in a freshly allocated
// slice sized exactly, so no grown-and-abandoned copies are left behind.
func EncodeUTF8(runes []rune) []byte {
	out := make([]byte, 0, EncodedLen(runes))
	for _, r := range runes {
		out = utf8.AppendRune(out, r)
	}
	return out
}

// EncodeUTF16LE returns runes encoded as UTF-16 little endian without a BOM.
func EncodeUTF16LE(runes []rune) ([]byte, error) {
	tmp := EncodeUTF8(runes)
	defer Wipe(tmp)

	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	return enc.Bytes(tmp)
}

// Wipe overwrites b with zeros.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// WipeRunes overwrites r with zeros.
func WipeRunes(r []rune) {
	for i := range r {
		r[i] = 0
	}
}
