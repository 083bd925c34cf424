// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"strings"
	"unicode/utf8"
)

// markerCutset is the set of list markers stripped from line starts, plus
// the whitespace that may be interleaved with them.
const markerCutset = "*-•· \t"

// markers is the set of characters that identify a list-marker line.
const markers = "*-•·"

// Normalize strips leading bullet and list markers from each line of
// generated prose. Generators are instructed to return plain paragraphs,
// but stray "*", "-", "•", or "·" markers still appear; a line whose
// left-trimmed content begins with one loses every leading marker character
// and any following whitespace. Other lines pass through untouched, so
// blank lines survive as the paragraph-break signal and normalizing
// already-clean text is a no-op.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		first, _ := utf8.DecodeRuneInString(trimmed)
		if trimmed == "" || !strings.ContainsRune(markers, first) {
			continue
		}
		lines[i] = strings.TrimLeft(trimmed, markerCutset)
	}
	return strings.Join(lines, "\n")
}
