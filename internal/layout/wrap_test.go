// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"strings"
	"testing"
)

// charMetric measures one unit per byte, ignoring font. Deterministic stand-in
// for real font tables.
type charMetric struct{}

func (charMetric) Width(s string, _ Font) float64 {
	return float64(len(s))
}

func TestWrapSingleWordFits(t *testing.T) {
	lines := Wrap("hello", charMetric{}, BodyFont, 20)
	if len(lines) != 1 || lines[0] != "hello" {
		t.Fatalf("Wrap single word = %v, want [hello]", lines)
	}
}

func TestWrapEmptyParagraph(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n "} {
		if lines := Wrap(in, charMetric{}, BodyFont, 20); lines != nil {
			t.Errorf("Wrap(%q) = %v, want nil", in, lines)
		}
	}
}

func TestWrapPreservesWords(t *testing.T) {
	para := "the quick brown fox jumps over the lazy dog and keeps on running far away"
	lines := Wrap(para, charMetric{}, BodyFont, 18)

	var got []string
	for _, l := range lines {
		got = append(got, strings.Fields(l)...)
	}
	want := strings.Fields(para)
	if len(got) != len(want) {
		t.Fatalf("word count = %d, want %d (lines: %v)", len(got), len(want), lines)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWrapWidthFit(t *testing.T) {
	const maxWidth = 18.0
	para := "some words of assorted lengths packed greedily onto narrow lines"
	m := charMetric{}

	for _, l := range Wrap(para, m, BodyFont, maxWidth) {
		// A line may exceed maxWidth only when it is a single over-long word.
		if m.Width(l, BodyFont) > maxWidth && strings.Contains(l, " ") {
			t.Errorf("multi-word line %q exceeds max width", l)
		}
	}
}

func TestWrapOverlongWord(t *testing.T) {
	lines := Wrap("Supercalifragilisticexpialidocious", charMetric{}, BodyFont, 10)
	if len(lines) != 1 || lines[0] != "Supercalifragilisticexpialidocious" {
		t.Fatalf("overlong word = %v, want the word alone on one line", lines)
	}
}

func TestWrapOverlongWordBetweenFittingWords(t *testing.T) {
	lines := Wrap("tiny Supercalifragilisticexpialidocious word", charMetric{}, BodyFont, 10)
	want := []string{"tiny", "Supercalifragilisticexpialidocious", "word"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapTwoLineSentence(t *testing.T) {
	para := "Artificial intelligence is transforming how we write, research, and learn."
	lines := Wrap(para, charMetric{}, BodyFont, 50)

	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2 (lines: %v)", len(lines), lines)
	}
	var got []string
	for _, l := range lines {
		got = append(got, strings.Fields(l)...)
	}
	want := strings.Fields(para)
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("words after wrap = %v, want %v", got, want)
	}
}
