// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import "strings"

// Wrap splits a paragraph into lines no wider than maxWidth, measured with
// metric under font. Packing is greedy: words accumulate onto the current
// line until adding the next one would overflow, then the line is flushed
// and the word starts a new one. Words are never split or hyphenated; a
// single word wider than maxWidth is emitted alone on its own line. Every
// input word appears in exactly one output line, in original order.
//
// A paragraph that trims to nothing yields zero lines.
func Wrap(paragraph string, metric FontMetric, font Font, maxWidth float64) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var current []string

	for _, word := range words {
		candidate := strings.Join(append(current, word), " ")
		if metric.Width(candidate, font) <= maxWidth {
			current = append(current, word)
			continue
		}
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
			current = []string{word}
		} else {
			// The word alone exceeds maxWidth. Place it anyway.
			lines = append(lines, word)
		}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}
