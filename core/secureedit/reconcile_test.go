// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

package secureedit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPlanEdit(t *testing.T) {
	const g = '*'
	cases := []struct {
		name   string
		text   string
		oldLen int
		caret  int
		want   edit
	}{
		{"nothing changed", "***", 3, 3, edit{at: 3, remove: 0}},
		{"backspace middle", "**", 3, 1, edit{at: 1, remove: 1}},
		{"delete selection", "***", 6, 1, edit{at: 1, remove: 3}},
		{"delete all", "", 4, 0, edit{at: 0, remove: 4}},
		{"caret past end saturates", "*", 3, 9, edit{at: 1, remove: 2}},
		{"type at end", "***x", 3, 4, edit{at: 3, remove: 0, insert: []rune("x")}},
		{"type at start", "x***", 3, 1, edit{at: 0, remove: 0, insert: []rune("x")}},
		{"replace selection", "*x**", 6, 2, edit{at: 1, remove: 3, insert: []rune("x")}},
		{"paste run", "*pa€**", 3, 4, edit{at: 1, remove: 0, insert: []rune("pa€")}},
		{"replace everything", "new", 5, 3, edit{at: 0, remove: 5, insert: []rune("new")}},
		{"typed glyph", "****", 3, 2, edit{at: 1, insert: []rune("*")}},
		{"typed glyphs at start", "*****", 3, 2, edit{at: 0, insert: []rune("**")}},
		// Interleaved glyphs inside a composition are absorbed into the
		// replaced span; the survivor count on the left cannot exceed oldLen.
		{"interleaved run", "*x*y", 3, 4, edit{at: 1, remove: 2, insert: []rune("xy")}},
		{"run beyond old length", "***x", 2, 4, edit{at: 2, remove: 0, insert: []rune("x")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := planEdit(tc.text, g, tc.oldLen, tc.caret)
			if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(edit{})); diff != "" {
				t.Fatalf("planEdit(%q, old=%d, caret=%d) mismatch (-want +got):\n%s", tc.text, tc.oldLen, tc.caret, diff)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ v, lo, hi, want int }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{3, 5, 2, 5},
	}
	for _, tc := range cases {
		if got := clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Fatalf("clamp(%d, %d, %d) = %d, want %d", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}
