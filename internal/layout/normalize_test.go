// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "plain prose untouched",
			in:   "First paragraph.\n\nSecond paragraph.",
			want: "First paragraph.\n\nSecond paragraph.",
		},
		{
			name: "asterisk marker",
			in:   "* a point",
			want: "a point",
		},
		{
			name: "dash marker",
			in:   "- a point",
			want: "a point",
		},
		{
			name: "bullet marker",
			in:   "• a point",
			want: "a point",
		},
		{
			name: "middle dot marker",
			in:   "· a point",
			want: "a point",
		},
		{
			name: "indented marker",
			in:   "   - indented point",
			want: "indented point",
		},
		{
			name: "stacked markers",
			in:   "• - * stacked",
			want: "stacked",
		},
		{
			name: "blank lines preserved",
			in:   "- one\n\n- two",
			want: "one\n\ntwo",
		},
		{
			name: "marker inside line kept",
			in:   "a - b stays",
			want: "a - b stays",
		},
		{
			name: "indentation without marker kept",
			in:   "  plain indented line",
			want: "  plain indented line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Plain paragraph with no markers.",
		"* bullet\n- dash\n• dot",
		"mixed\n\n· marked\nplain",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}
